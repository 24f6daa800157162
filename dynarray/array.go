package dynarray

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/adapt_ive_go/dynarray/internal/capmath"
	"github.com/on-the-ground/adapt_ive_go/dynarray/trace"
)

const (
	opAppend     = "append"
	opInsertAt   = "insert_at"
	opSetAt      = "set_at"
	opGetAt      = "get_at"
	opRemoveLast = "remove_last"
	opRemoveAt   = "remove_at"
	opReset      = "reset"
)

// DynamicArray is a contiguous, growable sequence of T with amortized O(1)
// append and a sticky error flag instead of error returns on the hot path.
//
// Capacity moves on a ladder anchored at the construction-time capacity:
// it doubles when an insertion finds the buffer full and halves when a
// removal leaves the array exactly half full, never dropping below the
// anchor. Element slots beyond the current size stay zeroed so removed
// values do not pin heap objects.
//
// Operations never return errors. When one fails it latches an ErrorKind
// on the array and every later mutating or element-reading call becomes a
// silent no-op; poll ErrorState (or Err) to observe the flag. Size and the
// other metadata accessors keep working regardless.
//
// A DynamicArray is not safe for concurrent use. The zero value is not
// usable; construct instances with New or NewWithConfig.
type DynamicArray[T any] struct {
	buf         []T
	size        uint64
	capacity    uint64
	minCapacity uint64
	errKind     ErrorKind

	alloc  Allocator[T]
	logger *zap.Logger
	emit   *trace.Emitter
	id     string
}

// New returns an empty array whose capacity starts, and stays at least, at
// initCapacity slots. It uses DefaultConfig; initCapacity zero yields
// ErrInvalidCapacity and a failed initial allocation yields an error
// wrapping ErrOutOfMemory.
func New[T any](initCapacity uint64) (*DynamicArray[T], error) {
	return NewWithConfig(initCapacity, DefaultConfig[T]())
}

// NewWithConfig is New with explicit collaborators. Nil config fields fall
// back to the defaults.
func NewWithConfig[T any](initCapacity uint64, cfg Config[T]) (*DynamicArray[T], error) {
	if initCapacity == 0 {
		return nil, ErrInvalidCapacity
	}
	cfg = cfg.normalized()

	buf, err := allocate(cfg.Allocator, initCapacity)
	if err != nil {
		return nil, fmt.Errorf("dynarray: allocating %d initial slots: %w", initCapacity, err)
	}

	id := uuid.New().String()
	a := &DynamicArray[T]{
		buf:         buf,
		capacity:    initCapacity,
		minCapacity: initCapacity,
		alloc:       cfg.Allocator,
		logger:      cfg.Logger,
		emit:        trace.NewEmitter(id, cfg.Recorder),
		id:          id,
	}

	a.logger.Debug("dynamic array initialized",
		zap.String("arrayId", a.id),
		zap.Uint64("capacity", a.capacity),
	)
	a.emit.Init(a.capacity)
	return a, nil
}

// Append writes value after the last element, doubling the capacity first
// if the buffer is full. On allocation failure it latches ErrorOutOfMemory
// and the value is not stored.
func (a *DynamicArray[T]) Append(value T) {
	if a.errKind != ErrorOk {
		return
	}
	a.panicIfReleased()
	if a.size == a.capacity && !a.grow(opAppend) {
		return
	}
	a.buf[a.size] = value
	a.size++
}

// InsertAt writes value at index after shifting the elements at
// index..size-1 one slot right. Valid indexes are 0..size inclusive;
// index == size appends. An out-of-range index latches ErrorOutOfBounds
// before any growth happens, and a failed growth latches ErrorOutOfMemory;
// either way the contents are untouched.
func (a *DynamicArray[T]) InsertAt(index uint64, value T) {
	if a.errKind != ErrorOk {
		return
	}
	a.panicIfReleased()
	if index > a.size {
		a.latch(ErrorOutOfBounds, opInsertAt)
		return
	}
	if a.size == a.capacity && !a.grow(opInsertAt) {
		return
	}
	copy(a.buf[index+1:a.size+1], a.buf[index:a.size])
	a.buf[index] = value
	a.size++
}

// SetAt overwrites the element at index. Valid indexes are 0..size-1; an
// out-of-range index latches ErrorOutOfBounds. SetAt never changes the size
// or the capacity.
func (a *DynamicArray[T]) SetAt(index uint64, value T) {
	if a.errKind != ErrorOk {
		return
	}
	a.panicIfReleased()
	if index >= a.size {
		a.latch(ErrorOutOfBounds, opSetAt)
		return
	}
	a.buf[index] = value
}

// GetAt returns a copy of the element at index. Valid indexes are
// 0..size-1; an out-of-range index latches ErrorOutOfBounds and returns the
// zero value, as does any call while an error is already latched.
func (a *DynamicArray[T]) GetAt(index uint64) T {
	var zero T
	if a.errKind != ErrorOk {
		return zero
	}
	a.panicIfReleased()
	if index >= a.size {
		a.latch(ErrorOutOfBounds, opGetAt)
		return zero
	}
	return a.buf[index]
}

// RemoveLast discards the last element. On an empty array it latches
// ErrorOutOfBounds. When the removal leaves the array exactly half full
// and the capacity is above its floor, the buffer is halved; if that
// halving allocation fails the removal still stands with the old buffer
// and ErrorOutOfMemory latched.
func (a *DynamicArray[T]) RemoveLast() {
	if a.errKind != ErrorOk {
		return
	}
	a.panicIfReleased()
	if a.size == 0 {
		a.latch(ErrorOutOfBounds, opRemoveLast)
		return
	}
	a.size--
	var zero T
	a.buf[a.size] = zero
	a.maybeShrink(opRemoveLast)
}

// RemoveAt discards the element at index after shifting the elements at
// index+1..size-1 one slot left. Valid indexes are 0..size-1; an
// out-of-range index latches ErrorOutOfBounds. Shrinking follows the
// RemoveLast contract.
func (a *DynamicArray[T]) RemoveAt(index uint64) {
	if a.errKind != ErrorOk {
		return
	}
	a.panicIfReleased()
	if index >= a.size {
		a.latch(ErrorOutOfBounds, opRemoveAt)
		return
	}
	copy(a.buf[index:a.size-1], a.buf[index+1:a.size])
	a.size--
	var zero T
	a.buf[a.size] = zero
	a.maybeShrink(opRemoveAt)
}

// Reset discards every element and returns the capacity to its floor. Like
// the other mutators it is a no-op while an error is latched; a failed
// reallocation latches ErrorOutOfMemory and keeps the previous contents.
func (a *DynamicArray[T]) Reset() {
	if a.errKind != ErrorOk {
		return
	}
	a.panicIfReleased()

	oldCap := a.capacity
	if a.capacity == a.minCapacity {
		clear(a.buf)
		a.size = 0
		a.emit.Reset(oldCap, a.capacity)
		return
	}

	buf, err := allocate(a.alloc, a.minCapacity)
	if err != nil {
		a.latch(ErrorOutOfMemory, opReset)
		return
	}
	a.buf = buf
	a.capacity = a.minCapacity
	a.size = 0
	a.emit.Reset(oldCap, a.capacity)
}

// Release drops the backing buffer. Calling it again is a no-op; calling
// any element operation afterwards panics. Size, capacity, and the error
// flag are left as they were, so the metadata accessors keep reporting the
// state from just before the release.
func (a *DynamicArray[T]) Release() {
	if a.buf == nil {
		return
	}
	a.buf = nil

	a.logger.Debug("dynamic array released",
		zap.String("arrayId", a.id),
		zap.Uint64("capacity", a.capacity),
		zap.Uint64("size", a.size),
	)
	a.emit.Release(a.capacity, a.size)
}

// Size returns the number of live elements. It stays available while an
// error is latched and after Release.
func (a *DynamicArray[T]) Size() uint64 {
	return a.size
}

// Cap returns the current slot capacity of the backing buffer.
func (a *DynamicArray[T]) Cap() uint64 {
	return a.capacity
}

// MinCap returns the capacity floor fixed at construction.
func (a *DynamicArray[T]) MinCap() uint64 {
	return a.minCapacity
}

// ErrorState returns the sticky error flag.
func (a *DynamicArray[T]) ErrorState() ErrorKind {
	return a.errKind
}

// Err returns the latched flag as an error, nil while the array is healthy.
// The result matches the package sentinels under errors.Is.
func (a *DynamicArray[T]) Err() error {
	return a.errKind.Err()
}

// ID returns the correlation id minted at construction. Trace events carry
// it, so logs and recorders can be joined per instance.
func (a *DynamicArray[T]) ID() string {
	return a.id
}

func (a *DynamicArray[T]) grow(op string) bool {
	newCap, ok := capmath.Double(a.capacity)
	if !ok {
		a.latch(ErrorOutOfMemory, op)
		return false
	}
	newBuf, err := allocate(a.alloc, newCap)
	if err != nil {
		a.latch(ErrorOutOfMemory, op)
		return false
	}
	copy(newBuf, a.buf[:a.size])
	oldCap := a.capacity
	a.buf = newBuf
	a.capacity = newCap
	a.emit.Grow(op, oldCap, newCap, a.size)
	return true
}

func (a *DynamicArray[T]) maybeShrink(op string) {
	if !capmath.ShouldShrink(a.size, a.capacity, a.minCapacity) {
		return
	}
	newCap := capmath.Halve(a.capacity)
	newBuf, err := allocate(a.alloc, newCap)
	if err != nil {
		a.latch(ErrorOutOfMemory, op)
		return
	}
	copy(newBuf, a.buf[:a.size])
	oldCap := a.capacity
	a.buf = newBuf
	a.capacity = newCap
	a.emit.Shrink(op, oldCap, newCap, a.size)
}

func (a *DynamicArray[T]) latch(kind ErrorKind, op string) {
	a.errKind = kind
	a.logger.Warn("dynamic array error latched",
		zap.String("arrayId", a.id),
		zap.String("op", op),
		zap.String("error", kind.String()),
		zap.Uint64("size", a.size),
		zap.Uint64("capacity", a.capacity),
	)
	a.emit.Latch(op, kind.String(), a.capacity, a.size)
}

func (a *DynamicArray[T]) panicIfReleased() {
	if a.buf == nil {
		panic("dynarray: use of released or uninitialized array")
	}
}
