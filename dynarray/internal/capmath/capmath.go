// Package capmath holds the capacity ladder arithmetic for dynamic arrays:
// capacities are powers of two times a fixed floor, reached only by
// doubling on growth and halving on shrink.
package capmath

// Double returns twice capacity and whether the result is representable.
// A capacity that overflows uint64 can never be allocated, so callers
// treat a false return like a failed allocation.
func Double(capacity uint64) (uint64, bool) {
	doubled := capacity << 1
	if doubled < capacity {
		return 0, false
	}
	return doubled, true
}

// Halve returns half of capacity, rounded down.
func Halve(capacity uint64) uint64 {
	return capacity >> 1
}

// ShouldShrink reports whether a buffer of capacity slots holding size
// elements must drop to half capacity, given the floor. The trigger is
// exact: the size has just become capacity/2 and the capacity is still
// above the floor.
func ShouldShrink(size, capacity, floor uint64) bool {
	return size == capacity/2 && capacity != floor
}

// Aligned reports whether capacity sits on the ladder over floor, i.e.
// capacity == floor << k for some k >= 0.
func Aligned(capacity, floor uint64) bool {
	if floor == 0 || capacity < floor {
		return false
	}
	for c := floor; c != 0; c <<= 1 {
		if c == capacity {
			return true
		}
		if c > capacity {
			return false
		}
	}
	return false
}
