package crc

import (
	"github.com/bemasher/crcpoly/gf2"
)

// Generator returns x^32 plus the normal form generator poly.
func Generator(poly uint32) gf2.Polynomial {
	return gf2.FromBitString(gf2.NewBitString(poly, 32)).AddTerm(gf2.X(32))
}

// Reference computes the same value as Update by polynomial division over
// GF(2), one message bit at a time. It is slow and meant for verifying
// tables and for showing each reduction step. If trace is not nil it is
// called once per message bit.
//
// Bytes are consumed least significant bit first and the register is held
// in normal form, so the reflected register used by Update is reversed on
// the way in and out.
func Reference(crc, poly uint32, data []byte, trace func(gf2.Step)) uint32 {
	gen := Generator(poly)
	top := gf2.X(31)
	shift := gf2.X(1)

	reg := gf2.FromBitString(gf2.NewBitString(Reflect32(^crc), 32))
	for byteIdx, v := range data {
		for bitIdx := uint(0); bitIdx < 8; bitIdx++ {
			// Scale reduces v>>bitIdx mod 2, leaving the bit being consumed.
			bit := v >> bitIdx
			reg = reg.AddTerm(gf2.Scale(int(bit), top)).MulTerm(shift)

			step := gf2.Step{
				Index:   uint32(byteIdx)<<3 | uint32(bitIdx),
				Bit:     bit & 1,
				Shifted: reg,
			}

			if reg.Coefficient(32) != 0 {
				reg = reg.Sub(gen)
				step.Reduced = true
			}
			step.Remainder = reg

			if trace != nil {
				trace(step)
			}
		}
	}

	return ^Reflect32(uint32(reg.Uint64()))
}

// ReferenceUpdate is Reference without a trace.
func ReferenceUpdate(crc, poly uint32, data []byte) uint32 {
	return Reference(crc, poly, data, nil)
}
