package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddInt64(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
		ok   bool
	}{
		{name: "small", a: 100, b: 50, want: 150, ok: true},
		{name: "negative", a: -5, b: -7, want: -12, ok: true},
		{name: "max", a: math.MaxInt64 - 1, b: 1, want: math.MaxInt64, ok: true},
		{name: "overflow", a: math.MaxInt64, b: 1},
		{name: "underflow", a: math.MinInt64, b: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AddInt64(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
		ok   bool
	}{
		{name: "zero", a: 0, b: math.MaxInt64, want: 0, ok: true},
		{name: "small", a: 20, b: 3, want: 60, ok: true},
		{name: "wrapping to a small positive", a: 20, b: 4611686018427387905},
		{name: "just fits", a: 2, b: math.MaxInt64 / 2, want: math.MaxInt64 - 1, ok: true},
		{name: "min by minus one", a: math.MinInt64, b: -1},
		{name: "minus one by min", a: -1, b: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MulInt64(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
