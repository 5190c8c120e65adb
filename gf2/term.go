// Package gf2 implements polynomial arithmetic over GF(2), the field with
// elements 0 and 1 where addition is xor and multiplication is and.
//
// Polynomials are kept in canonical form: terms strictly descending by
// exponent, no two terms sharing an exponent and no zero coefficients. Every
// operation returns a new value, nothing is modified in place.
package gf2

import (
	"strconv"

	"golang.org/x/xerrors"
)

var (
	// ErrDivisionByZero is returned when dividing by a zero term or the zero
	// polynomial.
	ErrDivisionByZero = xerrors.New("gf2: division by zero")

	// ErrNegativeExponent is returned when a term division would produce an
	// exponent below zero.
	ErrNegativeExponent = xerrors.New("gf2: negative exponent")
)

// A Term is the monomial c·x^e with c in {0, 1}. The zero value is 0·x^0.
type Term struct {
	exponent    uint32
	coefficient uint8
}

// NewTerm returns c·x^e with c reduced mod 2.
func NewTerm(c int, e uint32) Term {
	return Term{e, mod2(c)}
}

// X returns the term 1·x^e.
func X(e uint32) Term {
	return Term{e, 1}
}

func (t Term) Exponent() uint32 {
	return t.exponent
}

func (t Term) Coefficient() uint8 {
	return t.coefficient
}

// mod2 reduces any integer to 0 or 1, negative values included.
func mod2(c int) uint8 {
	return uint8(c & 1)
}

// Scale returns c·t, c is taken mod 2 before multiplying.
func Scale(c int, t Term) Term {
	return Term{t.exponent, t.coefficient & mod2(c)}
}

// IsZero reports whether the coefficient of t is zero.
func (t Term) IsZero() bool {
	return t.coefficient == 0
}

// Add returns t + u. Terms with different exponents form a two term
// polynomial, otherwise coefficients are summed mod 2.
func (t Term) Add(u Term) Polynomial {
	if t.exponent != u.exponent {
		return New(t, u)
	}

	return New(Term{t.exponent, (t.coefficient + u.coefficient) & 1})
}

// Sub returns t - u which over GF(2) is identical to t + u.
func (t Term) Sub(u Term) Polynomial {
	return t.Add(u)
}

// Mul returns t·u.
func (t Term) Mul(u Term) Term {
	return Term{t.exponent + u.exponent, t.coefficient & u.coefficient}
}

// Div returns t/u. Division by a zero coefficient and quotients with a
// negative exponent are errors, the exponent never wraps.
func (t Term) Div(u Term) (Term, error) {
	if u.IsZero() {
		return Term{}, xerrors.Errorf("divide %s by %s: %w", t, u, ErrDivisionByZero)
	}
	if t.exponent < u.exponent {
		return Term{}, xerrors.Errorf("divide %s by %s: %w", t, u, ErrNegativeExponent)
	}

	return Term{t.exponent - u.exponent, t.coefficient & u.coefficient}, nil
}

func (t Term) String() string {
	return strconv.Itoa(int(t.coefficient)) + "x^" + strconv.FormatUint(uint64(t.exponent), 10)
}
