package dynarray_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/adapt_ive_go/dynarray"
)

func BenchmarkDynamicArray_Append(b *testing.B) {
	for _, size := range []int{64, 1024, 65536} {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				arr, err := dynarray.New[int](1)
				if err != nil {
					b.Fatal(err)
				}
				for j := 0; j < size; j++ {
					arr.Append(j)
				}
				arr.Release()
			}
		})
	}
}

func BenchmarkDynamicArray_AppendVsBuiltin(b *testing.B) {
	const n = 4096

	b.Run("dynarray", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			arr, err := dynarray.New[int](1)
			if err != nil {
				b.Fatal(err)
			}
			for j := 0; j < n; j++ {
				arr.Append(j)
			}
			arr.Release()
		}
	})

	b.Run("builtin-append", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

func BenchmarkDynamicArray_AppendRemoveChurn(b *testing.B) {
	arr, err := dynarray.New[int](8)
	if err != nil {
		b.Fatal(err)
	}
	defer arr.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Ride the 8 -> 16 -> 8 rung both ways.
		for j := 0; j < 9; j++ {
			arr.Append(j)
		}
		for j := 0; j < 9; j++ {
			arr.RemoveLast()
		}
	}
}

func BenchmarkDynamicArray_GetAt(b *testing.B) {
	const n = 1024
	arr, err := dynarray.New[int](n)
	if err != nil {
		b.Fatal(err)
	}
	defer arr.Release()
	for j := 0; j < n; j++ {
		arr.Append(j)
	}

	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += arr.GetAt(uint64(i % n))
	}
	_ = sink
}
