package aesgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ECB's defining (and usually undesirable) property: identical plaintext
// blocks produce identical ciphertext blocks, since there's no chaining.
func TestECBRepeatsCiphertextForRepeatedBlocks(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	cfg := NewConfig(k, NewECBMode())

	block := make([]byte, 16)
	plaintext := append(append([]byte{}, block...), block...)

	ciphertext, err := EncryptBytes(plaintext, cfg)
	require.NoError(t, err)

	assert.Equal(t, ciphertext[:16], ciphertext[16:32])
}

func TestECBWrongModeRejected(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	cfg := NewConfig(k, NewCBCMode([16]byte{}))

	_, err = encryptECB(nil, nil, cfg)
	assert.ErrorIs(t, err, ErrWrongMode)
}

func TestECBDecryptRejectsBadPadding(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	cfg := NewConfig(k, NewECBMode())

	// Flipping every bit of the final (padding) ciphertext block makes it
	// decrypt to effectively random bytes, which will essentially never end
	// in a valid 0x80 marker.
	ciphertext, err := EncryptBytes(bytes16(0x01), cfg)
	require.NoError(t, err)

	tampered := append([]byte{}, ciphertext...)
	for i := range tampered[len(tampered)-16:] {
		tampered[len(tampered)-16+i] ^= 0xFF
	}

	_, err = DecryptBytes(tampered, cfg)
	assert.Error(t, err)
}

func bytes16(b byte) []byte {
	out := make([]byte, 16)
	for i := range out {
		out[i] = b
	}
	return out
}
