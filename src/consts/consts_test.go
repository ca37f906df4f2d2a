package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsForAllKeySizes(t *testing.T) {
	cases := []struct {
		keyLen int
		nk     int
		nr     int
	}{
		{16, 4, 10},
		{24, 6, 12},
		{32, 8, 14},
	}

	for _, c := range cases {
		p, err := ParamsFor(c.keyLen)
		require.NoError(t, err)
		assert.Equal(t, c.nk, p.Nk)
		assert.Equal(t, c.nr, p.Nr)
		assert.Equal(t, c.nr+1, p.RoundKeys)
		assert.Equal(t, BLOCK_SIZE*(c.nr+1), p.ExpKeySize)
	}
}

func TestParamsForRejectsOddLengths(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 20, 33, 64} {
		_, err := ParamsFor(n)
		assert.Error(t, err)
	}
}
