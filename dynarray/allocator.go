package dynarray

import (
	"fmt"
	"math"
)

// Allocator hands out zeroed backing buffers. The array asks it for a fresh
// buffer on construction and on every capacity change, then copies the live
// elements over itself. Returning an error (conventionally wrapping
// ErrOutOfMemory) makes the array latch ErrorOutOfMemory instead of
// panicking, which keeps allocation failure an observable, testable outcome.
type Allocator[T any] interface {
	// Alloc returns a zeroed slice holding at least n elements.
	Alloc(n uint64) ([]T, error)
}

var _ Allocator[int] = HeapAllocator[int]{}

// HeapAllocator is the default Allocator. It allocates on the Go heap and
// only refuses requests that cannot be expressed as a slice length.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Alloc(n uint64) ([]T, error) {
	if n > math.MaxInt {
		return nil, fmt.Errorf("%w: %d slots exceed the addressable slice length", ErrOutOfMemory, n)
	}
	return make([]T, n), nil
}

var _ Allocator[int] = &BoundedAllocator[int]{}

// BoundedAllocator enforces a fixed slot budget per request. Buffers up to
// the budget come from the heap; anything larger is refused with
// ErrOutOfMemory. It gives capacity-failure paths a deterministic trigger
// without stressing the runtime.
type BoundedAllocator[T any] struct {
	maxSlots uint64
}

// NewBoundedAllocator returns an allocator that refuses any single request
// larger than maxSlots elements.
func NewBoundedAllocator[T any](maxSlots uint64) *BoundedAllocator[T] {
	return &BoundedAllocator[T]{maxSlots: maxSlots}
}

func (al *BoundedAllocator[T]) Alloc(n uint64) ([]T, error) {
	if n > al.maxSlots {
		return nil, fmt.Errorf("%w: %d slots requested, budget is %d", ErrOutOfMemory, n, al.maxSlots)
	}
	return make([]T, n), nil
}

// allocate requests n slots and normalizes the result to exactly n. An
// allocator that returns a short buffer counts as an allocation failure.
func allocate[T any](alloc Allocator[T], n uint64) ([]T, error) {
	buf, err := alloc.Alloc(n)
	if err != nil {
		return nil, err
	}
	if uint64(len(buf)) < n {
		return nil, fmt.Errorf("%w: allocator returned %d of %d slots", ErrOutOfMemory, len(buf), n)
	}
	return buf[:n], nil
}
