package capmath_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/adapt_ive_go/dynarray/internal/capmath"
	"github.com/stretchr/testify/assert"
)

func TestDouble(t *testing.T) {
	tests := []struct {
		name     string
		capacity uint64
		want     uint64
		ok       bool
	}{
		{"one", 1, 2, true},
		{"typical", 1024, 2048, true},
		{"largest safe", 1 << 62, 1 << 63, true},
		{"msb set", 1 << 63, 0, false},
		{"max", math.MaxUint64, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := capmath.Double(tt.capacity)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestHalve(t *testing.T) {
	assert.Equal(t, uint64(4), capmath.Halve(8))
	assert.Equal(t, uint64(1), capmath.Halve(2))
	assert.Equal(t, uint64(0), capmath.Halve(1))
	assert.Equal(t, uint64(1<<62), capmath.Halve(1<<63))
}

func TestShouldShrink(t *testing.T) {
	tests := []struct {
		name                  string
		size, capacity, floor uint64
		want                  bool
	}{
		{"at threshold above floor", 4, 8, 1, true},
		{"above threshold", 5, 8, 1, false},
		{"below threshold", 3, 8, 1, false},
		{"at threshold but at floor", 2, 4, 4, false},
		{"empty at floor one", 0, 1, 1, false},
		{"empty above floor", 0, 2, 1, false},
		{"one of two above floor", 1, 2, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capmath.ShouldShrink(tt.size, tt.capacity, tt.floor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		name            string
		capacity, floor uint64
		want            bool
	}{
		{"equal", 4, 4, true},
		{"one step", 8, 4, true},
		{"many steps", 1 << 20, 1, true},
		{"below floor", 2, 4, false},
		{"off ladder", 12, 4, false},
		{"non power multiple of odd floor", 9, 3, false},
		{"doubled odd floor", 6, 3, true},
		{"zero floor", 8, 0, false},
		{"top of range", 1 << 63, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capmath.Aligned(tt.capacity, tt.floor))
		})
	}
}
