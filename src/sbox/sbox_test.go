package sbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSboxKnownEntries(t *testing.T) {
	// FIPS-197 figure 7: S(0x00) = 0x63, S(0x53) = 0xed.
	assert.Equal(t, byte(0x63), Sbox[0x00])
	assert.Equal(t, byte(0xed), Sbox[0x53])
}

func TestInvSboxInvertsSbox(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), InvSbox[Sbox[i]])
	}
}

func TestSboxIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range Sbox {
		assert.False(t, seen[v])
		seen[v] = true
	}
}
