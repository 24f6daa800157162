package dynarray

import "iter"

// All returns an index/value iterator over the live elements, front to
// back. The latch check runs when iteration starts, so a sequence obtained
// earlier yields nothing once an error is latched. Like the other element
// reads, iterating a released array panics. The array must not be mutated
// while iterating.
func (a *DynamicArray[T]) All() iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		if a.errKind != ErrorOk {
			return
		}
		a.panicIfReleased()
		for i := uint64(0); i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Values returns a value-only iterator over the live elements, front to
// back, under the same rules as All.
func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a.errKind != ErrorOk {
			return
		}
		a.panicIfReleased()
		for i := uint64(0); i < a.size; i++ {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// Snapshot copies the live elements into a fresh slice. The result is
// independent of the array, so it stays valid across later mutations. An
// empty or latched array yields nil; a released array panics like the
// other element reads.
func (a *DynamicArray[T]) Snapshot() []T {
	if a.errKind != ErrorOk {
		return nil
	}
	a.panicIfReleased()
	if a.size == 0 {
		return nil
	}
	out := make([]T, a.size)
	copy(out, a.buf[:a.size])
	return out
}
