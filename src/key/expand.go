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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package key implements key expansion for all three FIPS-197 key sizes.
// Nk and Nr are derived from the key length; the mid-schedule SubWord step
// only applies to the Nk=8 schedule (FIPS-197 §5.2).
package key

import (
	"errors"

	"github.com/kaisiemek/aesgo/src/consts"
	"github.com/kaisiemek/aesgo/src/galois"
	"github.com/kaisiemek/aesgo/src/sbox"
)

// ExpandedKey is the flattened Nr+1 round key schedule, BLOCK_SIZE bytes
// per round key.
type ExpandedKey []byte

func RotWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var rotated [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE-1; i++ {
		rotated[i] = word[i+1]
	}

	rotated[consts.WORD_SIZE-1] = word[0]
	return rotated
}

func SubWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var subw [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE; i++ {
		subw[i] = sbox.Sbox[word[i]]
	}

	return subw
}

// ExpandKey runs the FIPS-197 §5.2 key schedule over a 16/24/32 byte key,
// returning the Nr+1 concatenated round keys.
func ExpandKey(k []byte) (ExpandedKey, error) {
	params, err := consts.ParamsFor(len(k))
	if err != nil {
		return nil, errors.New("invalid key size")
	}

	nk := params.Nk
	nr := params.Nr
	totalWords := consts.NB * (nr + 1)
	rcon := galois.RoundConstants(nr)

	words := make([][consts.WORD_SIZE]byte, totalWords)
	for i := 0; i < nk; i++ {
		copy(words[i][:], k[i*consts.WORD_SIZE:(i+1)*consts.WORD_SIZE])
	}

	for i := nk; i < totalWords; i++ {
		temp := words[i-1]

		switch {
		case i%nk == 0:
			temp = RotWord(temp)
			temp = SubWord(temp)
			temp[0] ^= rcon[i/nk]
		case nk == 8 && i%nk == 4:
			temp = SubWord(temp)
		}

		for b := 0; b < consts.WORD_SIZE; b++ {
			words[i][b] = words[i-nk][b] ^ temp[b]
		}
	}

	xKey := make(ExpandedKey, params.ExpKeySize)
	for i, w := range words {
		copy(xKey[i*consts.WORD_SIZE:(i+1)*consts.WORD_SIZE], w[:])
	}

	return xKey, nil
}
