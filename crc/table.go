package crc

import "math/bits"

// Slices is the number of bytes folded per iteration of Update.
const Slices = 8

// A Table holds the slicing-by-8 partial remainders of a generator.
// Table[k][b] is the contribution of byte b positioned k bytes ahead of the
// low end of the register. The contents must not be modified.
type Table [Slices][256]uint32

// Reflect32 reverses the bit order of v, converting between the normal
// (MSB-first) and reflected (LSB-first) form of a generator.
func Reflect32(v uint32) uint32 {
	return bits.Reverse32(v)
}

// NewTable returns the table for the normal form generator poly, the x^32
// term is implicit. The register is reflected so results match zlib-family
// CRC-32 implementations.
func NewTable(poly uint32) *Table {
	table := new(Table)
	rpoly := Reflect32(poly)

	for tIdx := range table[0] {
		crc := uint32(tIdx)
		for bIdx := 0; bIdx < 8; bIdx++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ rpoly
			} else {
				crc = crc >> 1
			}
		}
		table[0][tIdx] = crc
	}

	// Each further slice pushes the previous one through eight more zero bits.
	for tIdx := range table[0] {
		crc := table[0][tIdx]
		for k := 1; k < Slices; k++ {
			crc = table[0][crc&0xFF] ^ crc>>8
			table[k][tIdx] = crc
		}
	}

	return table
}
