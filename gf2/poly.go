package gf2

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// A Polynomial is an element of GF(2)[x]. The zero value is the zero
// polynomial.
type Polynomial struct {
	terms []Term
}

// Zero returns the additive identity.
func Zero() Polynomial {
	return Polynomial{}
}

// New returns the sum of the given terms.
func New(terms ...Term) Polynomial {
	return Polynomial{canonical(append([]Term(nil), terms...))}
}

// FromBitString returns the polynomial with one term per set bit of b.
func FromBitString(b BitString) Polynomial {
	var p Polynomial
	for idx := uint32(0); idx < b.Len(); idx++ {
		if b.At(idx) != 0 {
			p.terms = append(p.terms, X(b.DegreeAt(idx)))
		}
	}

	return p
}

// FromUint64 returns the polynomial whose coefficient of x^e is bit e of v.
func FromUint64(v uint64) Polynomial {
	var p Polynomial
	for e := 63; e >= 0; e-- {
		if v>>uint(e)&1 != 0 {
			p.terms = append(p.terms, X(uint32(e)))
		}
	}

	return p
}

// canonical sorts terms by descending exponent, sums terms sharing an
// exponent and drops zero coefficients. terms is reused as the result.
func canonical(terms []Term) []Term {
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].exponent > terms[j].exponent
	})

	out := terms[:0]
	for _, t := range terms {
		if n := len(out); n > 0 && out[n-1].exponent == t.exponent {
			out[n-1].coefficient ^= t.coefficient
			continue
		}
		out = append(out, t)
	}

	nonzero := out[:0]
	for _, t := range out {
		if !t.IsZero() {
			nonzero = append(nonzero, t)
		}
	}

	if len(nonzero) == 0 {
		return nil
	}

	return nonzero
}

// Terms returns a copy of the terms of p, highest degree first.
func (p Polynomial) Terms() []Term {
	return append([]Term(nil), p.terms...)
}

// Degree returns the highest exponent of p. The zero polynomial and the
// constant 1 both have degree 0, use IsZero to tell them apart.
func (p Polynomial) Degree() uint32 {
	if len(p.terms) == 0 {
		return 0
	}

	return p.terms[0].exponent
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// HasTerms reports whether p has at least one term.
func (p Polynomial) HasTerms() bool {
	return len(p.terms) != 0
}

// Len returns the number of non-zero terms.
func (p Polynomial) Len() int {
	return len(p.terms)
}

// Coefficient returns the coefficient of x^e.
func (p Polynomial) Coefficient(e uint32) uint8 {
	idx := sort.Search(len(p.terms), func(i int) bool {
		return p.terms[i].exponent <= e
	})
	if idx < len(p.terms) && p.terms[idx].exponent == e {
		return p.terms[idx].coefficient
	}

	return 0
}

// Equal reports whether p and q are the same polynomial.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}

	for idx := range p.terms {
		if p.terms[idx] != q.terms[idx] {
			return false
		}
	}

	return true
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	if q.IsZero() {
		return New(p.terms...)
	}

	result := p.Terms()
	for _, qt := range q.terms {
		found := false
		for idx, pt := range result {
			if pt.exponent == qt.exponent {
				sum := pt.Add(qt)
				if sum.IsZero() {
					result[idx] = Term{pt.exponent, 0}
				} else {
					result[idx] = sum.terms[0]
				}
				found = true
				break
			}
		}

		if !found && !qt.IsZero() {
			result = append(result, qt)
		}
	}

	return Polynomial{canonical(result)}
}

// Sub returns p - q, identical to p + q over GF(2).
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q)
}

// Mul returns p·q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}

	result := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, pt := range p.terms {
		for _, qt := range q.terms {
			result = append(result, pt.Mul(qt))
		}
	}

	return Polynomial{canonical(result)}
}

// Div distributes term division of every term of p over every term of q
// and sums the quotients. This is not long division: it is only meaningful
// when the caller has already aligned degrees, typically dividing by a
// single term. Use DivMod for quotient and remainder. Dividing by the zero
// polynomial returns p.
func (p Polynomial) Div(q Polynomial) (Polynomial, error) {
	if q.IsZero() {
		return New(p.terms...), nil
	}

	result := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, pt := range p.terms {
		for _, qt := range q.terms {
			t, err := pt.Div(qt)
			if err != nil {
				return Polynomial{}, err
			}
			result = append(result, t)
		}
	}

	return Polynomial{canonical(result)}, nil
}

func (p Polynomial) AddTerm(t Term) Polynomial {
	if t.IsZero() {
		return New(p.terms...)
	}

	return p.Add(New(t))
}

func (p Polynomial) SubTerm(t Term) Polynomial {
	return p.AddTerm(t)
}

func (p Polynomial) MulTerm(t Term) Polynomial {
	return p.Mul(New(t))
}

func (p Polynomial) DivTerm(t Term) (Polynomial, error) {
	if t.IsZero() {
		return Polynomial{}, xerrors.Errorf("divide by %s: %w", t, ErrDivisionByZero)
	}

	return p.Div(New(t))
}

// Uint64 packs the coefficients of p into an integer, bit e holding the
// coefficient of x^e. Panics if the degree of p exceeds 63.
func (p Polynomial) Uint64() (v uint64) {
	if p.Degree() > 63 {
		panic(fmt.Sprintf("gf2: degree %d exceeds 63", p.Degree()))
	}

	for _, t := range p.terms {
		v |= 1 << t.exponent
	}

	return v
}

// String renders p as "1x^3 + 1x^1 + 1x^0", the zero polynomial is "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	parts := make([]string, len(p.terms))
	for idx, t := range p.terms {
		parts[idx] = t.String()
	}

	return strings.Join(parts, " + ")
}

// Format writes one character per degree from width down to 0, '1' where p
// has a term of that degree. A width of 0 starts from Degree().
func (p Polynomial) Format(width uint32) string {
	if width == 0 {
		width = p.Degree()
	}

	var sb strings.Builder
	sb.Grow(int(width) + 1)
	for e := int64(width); e >= 0; e-- {
		sb.WriteByte('0' + p.Coefficient(uint32(e)))
	}

	return sb.String()
}
