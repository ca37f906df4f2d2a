package aesgo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NIST GCM test case 1: AES-128, empty plaintext and AAD.
func TestGCMEncryptEmptyInputKnownTag(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	iv := make([]byte, 12)

	ciphertext, tag, err := SealBytes(nil, k, iv, nil)
	require.NoError(t, err)

	assert.Empty(t, ciphertext)
	assert.Equal(t, mustDecode(t, "58e2fccefa7e3061367f1d57a4e7455a"), tag[:])
}

func TestGCMRoundTripAllKeySizesWithAAD(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for _, keySize := range []int{16, 24, 32} {
		secret := make([]byte, keySize)
		rng.Read(secret)
		k, err := NewKey(secret)
		require.NoError(t, err)

		iv := make([]byte, 12)
		rng.Read(iv)

		for _, length := range []int{0, 1, 15, 16, 100} {
			plaintext := make([]byte, length)
			rng.Read(plaintext)
			aad := make([]byte, 8)
			rng.Read(aad)

			ciphertext, tag, err := SealBytes(plaintext, k, iv, aad)
			require.NoError(t, err)

			decrypted, err := OpenBytes(ciphertext, k, iv, aad, tag)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		}
	}
}

func TestGCMNonStandardIVLength(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	iv := []byte("a much longer nonce than 96 bits")

	plaintext := []byte("arbitrary message")
	ciphertext, tag, err := SealBytes(plaintext, k, iv, nil)
	require.NoError(t, err)

	decrypted, err := OpenBytes(ciphertext, k, iv, nil, tag)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestGCMDetectsFlippedCiphertextBit(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	iv := make([]byte, 12)

	ciphertext, tag, err := SealBytes([]byte("authenticate me"), k, iv, []byte("aad"))
	require.NoError(t, err)

	ciphertext[0] ^= 0x01
	_, err = OpenBytes(ciphertext, k, iv, []byte("aad"), tag)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestGCMDetectsFlippedAADBit(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	iv := make([]byte, 12)
	aad := []byte("aad")

	ciphertext, tag, err := SealBytes([]byte("authenticate me"), k, iv, aad)
	require.NoError(t, err)

	aad[0] ^= 0x01
	_, err = OpenBytes(ciphertext, k, iv, aad, tag)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestGCMDetectsFlippedTagBit(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	iv := make([]byte, 12)

	ciphertext, tag, err := SealBytes([]byte("authenticate me"), k, iv, nil)
	require.NoError(t, err)

	tag[0] ^= 0x01
	_, err = OpenBytes(ciphertext, k, iv, nil, tag)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
