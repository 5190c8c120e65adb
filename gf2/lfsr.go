package gf2

import "fmt"

// An LFSR computes Remainder with the register packed into a machine word.
type LFSR struct {
	Gen    uint64
	Degree uint32
}

// NewLFSR returns a shift register for g, which must have degree 1 through
// 63.
func NewLFSR(g Polynomial) LFSR {
	if g.IsZero() || g.Degree() == 0 || g.Degree() > 63 {
		panic(fmt.Sprintf("gf2: invalid lfsr generator: %s", g))
	}

	return LFSR{g.Uint64(), g.Degree()}
}

func (lfsr LFSR) String() string {
	return fmt.Sprintf("{Gen:%X Degree:%d}", lfsr.Gen, lfsr.Degree)
}

// Encode returns the remainder of msg·x^Degree divided by the generator.
func (lfsr LFSR) Encode(msg BitString) (checksum uint64) {
	total := msg.Len() + lfsr.Degree
	for idx := uint32(0); idx < total; idx++ {
		// Rotate register and shift in bit.
		checksum = checksum<<1 | uint64(msg.At(idx))

		// If the top bit is set, subtract the generator.
		if checksum>>lfsr.Degree != 0 {
			checksum ^= lfsr.Gen
		}
	}

	return checksum
}
