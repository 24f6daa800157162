package dynarray

import (
	"errors"
	"fmt"
)

// ErrorKind is the sticky per-array error flag. Once an operation latches a
// non-Ok kind, every later mutating or element-reading call on that array is
// a silent no-op; the flag is never cleared, so recovery means discarding
// the instance and constructing a new one.
type ErrorKind uint8

const (
	// ErrorOk means no operation has failed on this array.
	ErrorOk ErrorKind = iota

	// ErrorOutOfMemory means an allocation failed while initializing,
	// growing, or shrinking the buffer.
	ErrorOutOfMemory

	// ErrorOutOfBounds means an index fell outside the valid range for the
	// requested operation, or a removal was attempted on an empty array.
	ErrorOutOfBounds
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorOk:
		return "ok"
	case ErrorOutOfMemory:
		return "out_of_memory"
	case ErrorOutOfBounds:
		return "out_of_bounds"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Err maps the kind to its sentinel error. ErrorOk maps to nil, so the
// result plugs directly into the usual `if err != nil` flow.
func (k ErrorKind) Err() error {
	switch k {
	case ErrorOutOfMemory:
		return ErrOutOfMemory
	case ErrorOutOfBounds:
		return ErrOutOfBounds
	default:
		return nil
	}
}

var (
	// ErrOutOfMemory is the error form of ErrorOutOfMemory. Allocator
	// implementations should return it (or wrap it) when they refuse an
	// allocation.
	ErrOutOfMemory = errors.New("dynarray: out of memory")

	// ErrOutOfBounds is the error form of ErrorOutOfBounds.
	ErrOutOfBounds = errors.New("dynarray: index out of bounds")

	// ErrInvalidCapacity is returned by the constructors when the initial
	// capacity is zero. The capacity floor must be at least one slot.
	ErrInvalidCapacity = errors.New("dynarray: initial capacity must be at least 1")
)
