// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package consts defines constant values used by the AES implementation,
// parameterized over the three FIPS-197 key sizes: AES-128, AES-192 and
// AES-256.
package consts

import "errors"

const (
	// Size of the AES block.
	BLOCK_SIZE = 16

	// Size of the key segments used in key expansion.
	WORD_SIZE = 4

	// Number of words in key expansion block.
	NB = 4

	// Size of the initializing vector.
	IV_SIZE = 16

	// Size of the number-used-once used in CTR/GCM modes.
	NONCE_SIZE = 12

	// Size of the counter field used in CTR/GCM modes.
	COUNTER_SIZE = BLOCK_SIZE - NONCE_SIZE

	// Size of the GCM authentication tag.
	TAG_SIZE = 16

	// Padding marker byte (ISO/IEC 7816-4 style padding, not PKCS#7).
	PADDING_MARKER = 0x80

	// Padding filler byte, appended after the marker up to a block boundary.
	PADDING_BYTE = 0x00

	// Low byte of the AES irreducible polynomial x^8+x^4+x^3+x+1.
	AES_IRREDUCIBLE_POLY = 0x1B
)

// KeySize enumerates the three supported AES key lengths, in bytes.
type KeySize int

const (
	AES128 KeySize = 16
	AES192 KeySize = 24
	AES256 KeySize = 32
)

// Params holds the key-size-dependent constants needed to expand a key and
// drive the round transform: Nk (key length in words), Nr (number of
// rounds) and the total size in bytes of the expanded key schedule.
type Params struct {
	Nk         int
	Nr         int
	RoundKeys  int
	ExpKeySize int
}

// ParamsFor returns the FIPS-197 schedule parameters for a raw key length
// in bytes, or an error if the length isn't one of 16/24/32.
func ParamsFor(keyLen int) (Params, error) {
	switch KeySize(keyLen) {
	case AES128, AES192, AES256:
		nk := keyLen / WORD_SIZE
		nr := nk + 6
		return Params{
			Nk:         nk,
			Nr:         nr,
			RoundKeys:  nr + 1,
			ExpKeySize: BLOCK_SIZE * (nr + 1),
		}, nil
	default:
		return Params{}, errors.New("invalid key size")
	}
}
