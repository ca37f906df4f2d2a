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

// Package galois implements GF(2^8) Galois Finite Field arithmetic used by
// MixColumns, InvMixColumns and the AES key schedule.
//
// The GF(2^128) arithmetic used by GHASH lives next to the GCM engine at
// the repository root (ghash.go), not here: it is a different field with a
// different reducing polynomial and doesn't share the byte-wide lookup
// tables below.
package galois

import "github.com/kaisiemek/aesgo/src/consts"

// Gadd is GF(2^8) addition: plain XOR.
func Gadd(a byte, b byte) byte {
	return a ^ b
}

// Gsub is GF(2^8) subtraction, identical to addition in a field of
// characteristic 2.
func Gsub(a byte, b byte) byte {
	return a ^ b
}

// Gmul is the Russian-peasant multiplication fallback: correct for any a, b
// but not used on the MixColumns hot path, where CalcLookupTable-built
// tables are used instead.
func Gmul(a byte, b byte) byte {
	var p byte = 0

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}

		hiBitSet := a&0x80 != 0
		a <<= 1

		if hiBitSet {
			a ^= consts.AES_IRREDUCIBLE_POLY
		}

		b >>= 1
	}

	return p
}

// CalcLookupTable returns the 256 entry table of a*i for i in 0..256,
// used to precompute the multipliers that occur in MixColumns and its
// inverse ({2,3,9,11,13,14}; multiplying by 1 is the identity and needs no
// table) so the round transform never calls Gmul.
func CalcLookupTable(a byte) [256]byte {
	var table [256]byte

	for i := 0; i < 256; i++ {
		table[i] = Gmul(a, byte(i))
	}

	return table
}

var (
	mul02 = CalcLookupTable(0x02)
	mul03 = CalcLookupTable(0x03)
	mul09 = CalcLookupTable(0x09)
	mul0b = CalcLookupTable(0x0b)
	mul0d = CalcLookupTable(0x0d)
	mul0e = CalcLookupTable(0x0e)
)

// Mul02, Mul03, Mul09, Mul0b, Mul0d and Mul0e are table-driven multipliers
// for the six non-identity constants MixColumns/InvMixColumns use.
func Mul02(a byte) byte { return mul02[a] }
func Mul03(a byte) byte { return mul03[a] }
func Mul09(a byte) byte { return mul09[a] }
func Mul0b(a byte) byte { return mul0b[a] }
func Mul0d(a byte) byte { return mul0d[a] }
func Mul0e(a byte) byte { return mul0e[a] }

// RoundConstants returns Rcon[1..nr], the GF(2^8) powers of 2 consumed by
// the key schedule. Rcon[1] = 1, Rcon[i] = Rcon[i-1] * 2.
func RoundConstants(nr int) []byte {
	rcon := make([]byte, nr+1)
	rcon[1] = 1

	for i := 2; i <= nr; i++ {
		rcon[i] = Gmul(rcon[i-1], 2)
	}

	return rcon
}
