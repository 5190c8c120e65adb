package gf2

import (
	"fmt"
	"strings"
)

// MaxBits is the widest bit string representable by a BitString.
const MaxBits = 32

// A BitString is a read-only view of the coefficients of a polynomial packed
// MSB-first into an integer. 0b1011 with length 4 is x^3 + x + 1.
type BitString struct {
	bits   uint32
	length uint32
}

// NewBitString returns a view of the low length bits of bits. Bits above
// length are discarded.
func NewBitString(bits, length uint32) BitString {
	if length > MaxBits {
		panic(fmt.Sprintf("gf2: invalid bit string length: %d", length))
	}

	if length < MaxBits {
		bits &= 1<<length - 1
	}

	return BitString{bits, length}
}

// At returns the coefficient at index i, index 0 is the highest degree.
// Indices at or beyond the length are implicit zeros.
func (b BitString) At(i uint32) uint8 {
	if i >= b.length {
		return 0
	}

	return uint8(b.bits>>(b.length-1-i)) & 1
}

// DegreeAt returns the exponent of the term at index i.
func (b BitString) DegreeAt(i uint32) uint32 {
	return b.length - 1 - i
}

// Substring returns the first count bits.
func (b BitString) Substring(count uint32) BitString {
	return b.Slice(0, count)
}

// Slice returns count bits starting at index start.
func (b BitString) Slice(start, count uint32) BitString {
	if uint64(start)+uint64(count) > uint64(b.length) {
		panic(fmt.Sprintf("gf2: invalid substring [%d:%d] of length %d", start, uint64(start)+uint64(count), b.length))
	}

	// Discard the bits following the slice, NewBitString drops the ones
	// preceding it.
	return NewBitString(b.bits>>(b.length-start-count), count)
}

func (b BitString) Len() uint32 {
	return b.length
}

func (b BitString) Bits() uint32 {
	return b.bits
}

// Format writes width coefficients MSB-first, a width of 0 writes Len().
func (b BitString) Format(width uint32) string {
	if width == 0 {
		width = b.length
	}

	var sb strings.Builder
	sb.Grow(int(width))
	for idx := uint32(0); idx < width; idx++ {
		sb.WriteByte('0' + b.At(idx))
	}

	return sb.String()
}

func (b BitString) String() string {
	return b.Format(0)
}
