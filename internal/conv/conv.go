// Package conv provides checked integer conversions for atom and pattern
// identifiers.
//
// Identifiers are dense indexes into slices and are stored as uint32 to keep
// the reverse index compact. Overflow indicates a corpus larger than the index
// can address, so the conversions panic rather than wrap.
package conv

import "math"

// IntToUint32 converts an index to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: identifier out of uint32 range")
	}
	return uint32(n)
}

// FitsUint32 reports whether n can be converted by IntToUint32.
func FitsUint32(n int) bool {
	return n >= 0 && uint64(n) <= math.MaxUint32
}
