package galois

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaddIsXor(t *testing.T) {
	assert.Equal(t, byte(0x00), Gadd(0x53, 0x53))
	assert.Equal(t, byte(0xCA^0x53), Gadd(0xCA, 0x53))
}

func TestGmulKnownVectors(t *testing.T) {
	// FIPS-197 example multiplications ({57} . {83} = {c1}, {57} . {13} = {fe}).
	assert.Equal(t, byte(0xc1), Gmul(0x57, 0x83))
	assert.Equal(t, byte(0xfe), Gmul(0x57, 0x13))
}

func TestGmulCommutative(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			assert.Equal(t, Gmul(byte(a), byte(b)), Gmul(byte(b), byte(a)))
		}
	}
}

func TestGmulIdentity(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(a), Gmul(byte(a), 1))
	}
}

func TestLookupTablesMatchGmul(t *testing.T) {
	for a := 0; a < 256; a++ {
		v := byte(a)
		assert.Equal(t, Gmul(v, 0x02), Mul02(v))
		assert.Equal(t, Gmul(v, 0x03), Mul03(v))
		assert.Equal(t, Gmul(v, 0x09), Mul09(v))
		assert.Equal(t, Gmul(v, 0x0b), Mul0b(v))
		assert.Equal(t, Gmul(v, 0x0d), Mul0d(v))
		assert.Equal(t, Gmul(v, 0x0e), Mul0e(v))
	}
}

func TestRoundConstants(t *testing.T) {
	rcon := RoundConstants(14)
	assert.Equal(t, byte(0x01), rcon[1])
	assert.Equal(t, byte(0x02), rcon[2])
	assert.Equal(t, byte(0x36), rcon[10])
	assert.Equal(t, byte(0x4d), rcon[14])
}
