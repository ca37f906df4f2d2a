package aesgo

import (
	"github.com/kaisiemek/aesgo/src/consts"
	"github.com/kaisiemek/aesgo/src/key"
)

// Key is an immutable AES key: the raw secret plus its precomputed round
// key schedule. Construct one with NewKey; a Key never changes after
// construction. The secret is taken at face value (no hashing or
// stretching) and must already be one of FIPS-197's three key sizes.
type Key struct {
	secret      []byte
	roundKeys   []Block
	nr          int
	expandedKey key.ExpandedKey
}

// NewKey constructs a Key from a 16/24/32 byte secret, running the FIPS-197
// §5.2 key schedule once. It returns ErrInvalidKeyLength for any other
// length.
func NewKey(secret []byte) (*Key, error) {
	params, err := consts.ParamsFor(len(secret))
	if err != nil {
		return nil, ErrInvalidKeyLength
	}

	expanded, err := key.ExpandKey(secret)
	if err != nil {
		return nil, ErrInvalidKeyLength
	}

	k := &Key{
		secret:      append([]byte(nil), secret...),
		nr:          params.Nr,
		expandedKey: expanded,
	}

	k.roundKeys = make([]Block, params.RoundKeys)
	for i := range k.roundKeys {
		copy(k.roundKeys[i][:], expanded[i*consts.BLOCK_SIZE:(i+1)*consts.BLOCK_SIZE])
	}

	return k, nil
}

// Size returns the key length in bytes (16, 24 or 32).
func (k *Key) Size() int { return len(k.secret) }

// Rounds returns Nr, the number of AES rounds for this key (10, 12 or 14).
func (k *Key) Rounds() int { return k.nr }

// RoundKey returns round key i (0 <= i <= Rounds()).
func (k *Key) RoundKey(i int) Block { return k.roundKeys[i] }

// Clear zeroes the secret and the expanded schedule in place, so neither
// can be recovered from this Key's backing memory afterwards.
func (k *Key) Clear() {
	for i := range k.secret {
		k.secret[i] = 0
	}
	for i := range k.expandedKey {
		k.expandedKey[i] = 0
	}
	for i := range k.roundKeys {
		k.roundKeys[i] = Block{}
	}
}
