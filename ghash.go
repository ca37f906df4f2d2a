package aesgo

// GHASH's GF(2^128) arithmetic (NIST SP 800-38D §6.3). This is a separate
// field from the GF(2^8) arithmetic in src/galois, with a different width
// and reducing polynomial (x^128 + x^7 + x^2 + x + 1), so it lives next to
// the GCM engine instead.

// ghashReduceHi is the top 64 bits of the GHASH reducing polynomial
// 0xE1 << 120, i.e. R = 11100001 followed by 120 zero bits.
const ghashReduceHi uint64 = 0xE100000000000000

// ghashMul multiplies two GF(2^128) elements as described in SP 800-38D
// §6.3: walk the bits of x from MSB (bit 127) to LSB (bit 0), accumulating
// y into the output whenever the current bit of x is 1, and right-shift y
// by one bit each round with a conditional XOR of the reducing polynomial
// whenever the bit shifted out was set.
func ghashMul(x, y Block) Block {
	xHi, xLo := x.Uint128()
	yHi, yLo := y.Uint128()

	var outHi, outLo uint64

	for i := 127; i >= 0; i-- {
		var bit uint64
		if i >= 64 {
			bit = (xHi >> uint(i-64)) & 1
		} else {
			bit = (xLo >> uint(i)) & 1
		}

		if bit == 1 {
			outHi ^= yHi
			outLo ^= yLo
		}

		lsbSet := yLo&1 == 1
		carry := yHi & 1
		yLo = (yLo >> 1) | (carry << 63)
		yHi >>= 1

		if lsbSet {
			yHi ^= ghashReduceHi
		}
	}

	return BlockFromUint128(outHi, outLo)
}

// ghashAccum folds one more block into a running GHASH accumulator:
// Y_i = (Y_{i-1} xor block_i) * H. The streaming form means GCTR never
// holds the whole message in memory.
func ghashAccum(acc Block, blk Block, h Block) Block {
	return ghashMul(acc.Xor(blk), h)
}

// padBlock zero-pads a short final chunk (len(raw) <= BLOCK_SIZE) up to a
// full Block for GHASH purposes. GHASH only ever runs over ciphertext, AAD
// and (for a non-96-bit IV) the IV, never plaintext.
func padBlock(raw []byte) Block {
	var b Block
	copy(b[:], raw)
	return b
}

func lenBlock(aadBits, cipherBits uint64) Block {
	return BlockFromUint128(aadBits, cipherBits)
}
