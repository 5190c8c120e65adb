package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitStringAt(t *testing.T) {
	b := NewBitString(0b1011, 4)

	expected := []uint8{1, 0, 1, 1, 0, 0}
	for idx, bit := range expected {
		if got := b.At(uint32(idx)); got != bit {
			t.Fatalf("At(%d): expected %d got %d\n", idx, bit, got)
		}
	}

	assert.Equal(t, uint32(3), b.DegreeAt(0))
	assert.Equal(t, uint32(0), b.DegreeAt(3))
}

func TestBitStringMask(t *testing.T) {
	b := NewBitString(0xFF, 4)
	assert.Equal(t, uint32(0x0F), b.Bits())
	assert.Equal(t, "1111", b.String())

	full := NewBitString(0xFFFFFFFF, 32)
	assert.Equal(t, uint32(0xFFFFFFFF), full.Bits())
	assert.Equal(t, uint8(1), full.At(31))
}

func TestBitStringSubstring(t *testing.T) {
	msg := NewBitString(0b11010011101100, 14)

	head := msg.Substring(3)
	assert.Equal(t, "110", head.String())
	assert.Equal(t, uint32(3), head.Len())

	mid := msg.Slice(4, 6)
	assert.Equal(t, "001110", mid.String())
	assert.Equal(t, uint32(0b001110), mid.Bits())

	assert.Equal(t, msg, msg.Substring(14))
	assert.Equal(t, uint32(0), msg.Slice(14, 0).Len())
}

func TestBitStringSubstringPanics(t *testing.T) {
	msg := NewBitString(0b1011, 4)

	assert.Panics(t, func() { msg.Substring(5) })
	assert.Panics(t, func() { msg.Slice(3, 2) })
	assert.Panics(t, func() { msg.Slice(0xFFFFFFFF, 2) })
	assert.Panics(t, func() { NewBitString(0, 33) })
}

func TestBitStringFormat(t *testing.T) {
	b := NewBitString(0b1011, 4)
	assert.Equal(t, "1011", b.Format(0))
	assert.Equal(t, "101100", b.Format(6))
	assert.Equal(t, "10", b.Format(2))
}
