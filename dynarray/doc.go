// Package dynarray provides a generic dynamic array with power-of-two
// capacity management and a sticky error flag.
//
// A DynamicArray[T] stores its elements contiguously and exposes the usual
// positional operations: append, insert, overwrite, read, and remove. The
// element type is an opaque payload copied by value; the array never
// inspects it.
//
// # Capacity ladder
//
// Capacity starts at the value passed to New and that value stays the floor
// for the array's whole lifetime:
//   - a full buffer doubles before an append or insert lands,
//   - a removal that leaves the array exactly half full halves the buffer,
//   - the capacity never drops below the floor, and Reset snaps back to it.
//
// Repeated doubling and halving from the same floor visits the same rungs,
// so capacity stays on the ladder floor, 2*floor, 4*floor, and so on. Slots
// past the current size are kept zeroed so removed elements do not pin heap
// objects.
//
// # Error latch
//
// Element operations return no errors. A failed operation latches an
// ErrorKind on the array instead:
//   - ErrorOutOfBounds for an invalid index or a removal from an empty array,
//   - ErrorOutOfMemory when the Allocator refuses a buffer.
//
// Once latched, every later mutating or element-reading call is a silent
// no-op. The flag never clears; poll ErrorState (or Err for an errors.Is
// friendly form) between batches and discard the instance on failure. Size
// and the other metadata accessors keep working regardless of the flag.
//
// Release frees the backing buffer. Element operations on a released array
// panic, while Release itself is idempotent and the metadata accessors
// remain safe.
//
// # Observability
//
// Construction mints a correlation id for each array. Capacity transitions
// and latches flow to the trace.Recorder from the Config, and a zap.Logger
// receives lifecycle and latch entries carrying the same id. Both default
// to no-ops.
//
// DynamicArray is not safe for concurrent use.
//
// Example:
//
//	arr, err := dynarray.New[int](4)
//	if err != nil {
//	    return err
//	}
//	defer arr.Release()
//
//	for i := 0; i < 10; i++ {
//	    arr.Append(i * i)
//	}
//	if err := arr.Err(); err != nil {
//	    return err
//	}
//	fmt.Println(arr.Size(), arr.GetAt(3))
package dynarray
