// Package crc implements table driven CRC-32 using slicing-by-8.
package crc

import (
	"encoding/binary"
	"fmt"
)

type CRC struct {
	Name string
	Poly uint32
	Init uint32

	tbl *Table
}

// NewCRC returns a CRC for the normal form generator poly. Tables are shared
// with every other CRC using the same generator.
func NewCRC(name string, poly, init uint32) (crc CRC) {
	crc.Name = name
	crc.Poly = poly
	crc.Init = init
	crc.tbl = MakeTable(crc.Poly)

	return
}

func (crc CRC) String() string {
	return fmt.Sprintf("{Name:%s Poly:0x%08X Init:0x%08X}", crc.Name, crc.Poly, crc.Init)
}

func (crc CRC) Table() *Table {
	return crc.tbl
}

func (crc CRC) Checksum(data []byte) uint32 {
	return Update(crc.Init, crc.tbl, data)
}

// New returns a streaming digest starting from Init.
func (crc CRC) New() *Digest {
	return &Digest{crc: crc.Init, init: crc.Init, tbl: crc.tbl}
}

// Update returns the CRC of data continuing from crc, the CRC of any
// preceding bytes. An empty buffer returns crc unchanged.
func Update(crc uint32, table *Table, data []byte) uint32 {
	if table == nil {
		panic("crc: nil table")
	}

	crc = ^crc
	for len(data) >= Slices {
		crc ^= binary.LittleEndian.Uint32(data)
		crc = table[0][data[7]] ^ table[1][data[6]] ^
			table[2][data[5]] ^ table[3][data[4]] ^
			table[4][crc>>24] ^ table[5][crc>>16&0xFF] ^
			table[6][crc>>8&0xFF] ^ table[7][crc&0xFF]
		data = data[Slices:]
	}

	// Fold trailing bytes one at a time.
	for _, v := range data {
		crc = table[0][byte(crc)^v] ^ crc>>8
	}

	return ^crc
}

// Checksum returns the CRC of data.
func Checksum(data []byte, table *Table) uint32 {
	return Update(0, table, data)
}

// ChecksumIEEE returns the CRC-32/ISO-HDLC of data.
func ChecksumIEEE(data []byte) uint32 {
	return Update(0, MakeTable(IEEE), data)
}
