package gf2

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Computation example from the CRC article on wikipedia: x^3 + x + 1 over
// 11010011101100 leaves a remainder of x^2.
var (
	crc3    = FromBitString(NewBitString(0b1011, 4))
	message = NewBitString(0b11010011101100, 14)
)

func TestRemainder(t *testing.T) {
	var steps []Step
	r, err := Remainder(message, crc3, func(s Step) {
		steps = append(steps, s)
	})
	require.NoError(t, err)

	assert.Equal(t, "100", r.Format(2))
	assert.Len(t, steps, int(message.Len()+crc3.Degree()))

	for _, s := range steps {
		if s.Remainder.HasTerms() && s.Remainder.Degree() >= crc3.Degree() {
			t.Fatalf("step %d: remainder %s not reduced\n", s.Index, s.Remainder)
		}
		if s.Reduced != (s.Shifted.Coefficient(crc3.Degree()) == 1) {
			t.Fatalf("step %d: reduced without aligned degree\n", s.Index)
		}
	}
}

func TestRemainderMatchesMod(t *testing.T) {
	augmented := FromBitString(message).MulTerm(X(crc3.Degree()))
	r, err := augmented.Mod(crc3)
	require.NoError(t, err)

	expected, err := Remainder(message, crc3, nil)
	require.NoError(t, err)
	assert.True(t, r.Equal(expected), "%s != %s", r, expected)
}

// RandMessage is a random bit string and a random generator of degree 1
// through 8 with a constant term.
type RandMessage struct {
	Message   BitString
	Generator Polynomial
}

func (RandMessage) Generate(rand *rand.Rand, size int) reflect.Value {
	length := uint32(rand.Intn(MaxBits + 1))
	degree := uint32(rand.Intn(8) + 1)
	gen := uint64(rand.Int63n(1<<degree)) | 1<<degree | 1

	return reflect.ValueOf(RandMessage{
		NewBitString(rand.Uint32(), length),
		FromUint64(gen),
	})
}

func TestRemainderIdentity(t *testing.T) {
	err := quick.Check(func(m RandMessage) bool {
		r, err := Remainder(m.Message, m.Generator, nil)
		if err != nil {
			return false
		}

		augmented := FromBitString(m.Message).MulTerm(X(m.Generator.Degree()))
		mod, err := augmented.Mod(m.Generator)
		if err != nil || !mod.Equal(r) {
			return false
		}

		// Appending the remainder makes the codeword divisible.
		codeword, err := augmented.Add(r).Mod(m.Generator)
		return err == nil && codeword.IsZero()
	}, nil)
	if err != nil {
		t.Fatal("Error testing identity:", err)
	}
}

func TestDivMod(t *testing.T) {
	err := quick.Check(func(a, b RandPoly) bool {
		if b.IsZero() {
			return true
		}

		q, r, err := a.DivMod(b.Polynomial)
		if err != nil {
			return false
		}
		if r.HasTerms() && r.Degree() >= b.Degree() {
			return false
		}

		return q.Mul(b.Polynomial).Add(r).Equal(a.Polynomial)
	}, nil)
	if err != nil {
		t.Fatal("Error testing division:", err)
	}

	_, _, err = New(X(3)).DivMod(Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Remainder(message, Zero(), nil)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivModConstant(t *testing.T) {
	p := New(X(5), X(2), X(0))
	q, r, err := p.DivMod(New(X(0)))
	require.NoError(t, err)
	assert.True(t, q.Equal(p))
	assert.True(t, r.IsZero())
}
