package crc

import "hash"

// Size of a CRC-32 in bytes.
const Size = 4

// Digest computes a CRC incrementally, it implements hash.Hash32.
type Digest struct {
	crc  uint32
	init uint32
	tbl  *Table
}

var _ hash.Hash32 = (*Digest)(nil)

// New returns a digest using table starting from zero.
func New(table *Table) *Digest {
	return &Digest{tbl: table}
}

// NewIEEE returns a digest for the IEEE generator.
func NewIEEE() *Digest {
	return New(MakeTable(IEEE))
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return 1 }

func (d *Digest) Reset() { d.crc = d.init }

func (d *Digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, d.tbl, p)
	return len(p), nil
}

func (d *Digest) Sum32() uint32 { return d.crc }

// Sum appends the CRC in big-endian order.
func (d *Digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
