package dynarray

import (
	"go.uber.org/zap"

	"github.com/on-the-ground/adapt_ive_go/dynarray/trace"
)

// Config carries the pluggable collaborators of a dynamic array. The zero
// value is usable: nil fields are replaced by the defaults from
// DefaultConfig, so callers only set what they want to override.
type Config[T any] struct {
	// Allocator provides the backing buffers. Defaults to HeapAllocator.
	Allocator Allocator[T]

	// Logger receives lifecycle and latch events. Defaults to a nop logger.
	Logger *zap.Logger

	// Recorder receives capacity trace events. Defaults to trace.Nop.
	Recorder trace.Recorder
}

// DefaultConfig returns the configuration New uses: heap allocation, no
// logging, no tracing.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{
		Allocator: HeapAllocator[T]{},
		Logger:    zap.NewNop(),
		Recorder:  trace.Nop{},
	}
}

func (c Config[T]) normalized() Config[T] {
	if c.Allocator == nil {
		c.Allocator = HeapAllocator[T]{}
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Recorder == nil {
		c.Recorder = trace.Nop{}
	}
	return c
}
