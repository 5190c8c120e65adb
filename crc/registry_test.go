package crc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	poly, err := Lookup("IEEE")
	require.NoError(t, err)
	assert.Equal(t, uint32(IEEE), poly)

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownGenerator)

	assert.Equal(t, []string{"castagnoli", "ieee", "koopman"}, Names()[:3])
}

func TestParseGenerator(t *testing.T) {
	for s, expected := range map[string]uint32{
		"castagnoli": Castagnoli,
		"0x04C11DB7": IEEE,
		"0x1021":     0x1021,
	} {
		poly, err := ParseGenerator(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, poly, s)
	}

	_, err := ParseGenerator("0x1FFFFFFFF")
	assert.ErrorIs(t, err, ErrUnknownGenerator)
	_, err = ParseGenerator("bogus")
	assert.ErrorIs(t, err, ErrUnknownGenerator)
}

func TestRegisterDuplicate(t *testing.T) {
	Register("test-register", 0x1021)
	assert.Panics(t, func() { Register("TEST-REGISTER", 0x8005) })
}

func TestMakeTableOnce(t *testing.T) {
	const poly = 0x20044009

	var wg sync.WaitGroup
	results := make([]*Table, 32)
	for idx := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = MakeTable(poly)
		}(idx)
	}
	wg.Wait()

	for _, table := range results {
		assert.Same(t, results[0], table)
	}
	assert.Equal(t, *NewTable(poly), *results[0])
}
