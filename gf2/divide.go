package gf2

import "golang.org/x/xerrors"

// DivMod returns the quotient and remainder of p divided by g using long
// division, the remainder has degree less than g.
func (p Polynomial) DivMod(g Polynomial) (q, r Polynomial, err error) {
	if g.IsZero() {
		return Zero(), Zero(), xerrors.Errorf("divide %s by zero polynomial: %w", p, ErrDivisionByZero)
	}

	lead := X(g.Degree())
	r = New(p.terms...)
	for r.HasTerms() && r.Degree() >= g.Degree() {
		// Cancel the leading term of the remainder.
		t, err := X(r.Degree()).Div(lead)
		if err != nil {
			return Zero(), Zero(), err
		}

		q = q.AddTerm(t)
		r = r.Sub(g.MulTerm(t))
	}

	return q, r, nil
}

// Mod returns the remainder of p divided by g.
func (p Polynomial) Mod(g Polynomial) (Polynomial, error) {
	_, r, err := p.DivMod(g)
	return r, err
}

// A Step records one bit of a shift register division.
type Step struct {
	Index uint32 // Bit index within the augmented message.
	Bit   uint8  // Message bit shifted in.

	Shifted   Polynomial // Register after shifting the bit in.
	Reduced   bool       // Whether the generator was subtracted.
	Remainder Polynomial // Register after reduction.
}

// Remainder divides msg·x^n by g where n is the degree of g, shifting the
// message in one bit at a time the way a CRC shift register does. If trace
// is not nil it is called once per bit. The result equals the Mod of the
// augmented message by g.
func Remainder(msg BitString, g Polynomial, trace func(Step)) (Polynomial, error) {
	if g.IsZero() {
		return Zero(), xerrors.Errorf("remainder of %s: %w", msg, ErrDivisionByZero)
	}

	n := g.Degree()
	total := msg.Len() + n

	var r Polynomial
	for idx := uint32(0); idx < total; idx++ {
		// Bits beyond the message are the augmenting zeros.
		bit := msg.At(idx)

		var step Step
		step.Index = idx
		step.Bit = bit

		r = r.MulTerm(X(1)).AddTerm(Scale(int(bit), X(0)))
		step.Shifted = r

		if r.HasTerms() && r.Degree() == n {
			r = r.Sub(g)
			step.Reduced = true
		}
		step.Remainder = r

		if trace != nil {
			trace(step)
		}
	}

	return r, nil
}
