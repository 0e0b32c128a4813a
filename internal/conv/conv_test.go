package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		in   int
		want uint32
	}{
		{0, 0},
		{42, 42},
		{math.MaxUint32, math.MaxUint32},
	}
	for _, tt := range tests {
		if got := IntToUint32(tt.in); got != tt.want {
			t.Errorf("IntToUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntToUint32Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IntToUint32(-1) should panic")
		}
	}()
	IntToUint32(-1)
}

func TestFitsUint32(t *testing.T) {
	tests := []struct {
		in   int
		want bool
	}{
		{0, true},
		{math.MaxUint32, true},
		{-1, false},
	}
	for _, tt := range tests {
		if got := FitsUint32(tt.in); got != tt.want {
			t.Errorf("FitsUint32(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
