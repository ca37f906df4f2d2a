package aesgo

import (
	"io"

	"github.com/kaisiemek/aesgo/src/consts"
	"github.com/kaisiemek/aesgo/src/counter"
)

// gcmMaxBlocks is the largest number of 16 byte blocks a single GCM
// message may span: the 32 bit counter must not wrap within one message.
const gcmMaxBlocks = uint64(1)<<32 - 2

// GCMEncrypt is NIST SP 800-38D §7.1 authenticated encryption:
// H := E(K, 0^128); J0 derived from iv; GCTR over the plaintext starting
// at inc32(J0); GHASH folds AAD, ciphertext and the length block;
// tag := E(K, J0) xor S. The tag is always a full 128 bits.
func GCMEncrypt(plaintext io.Reader, ciphertext io.Writer, key *Key, iv, aad []byte) (int, Block, error) {
	enc := BuildEncryptSchedule(key.Rounds())
	h := EncryptBlock(Block{}, key, enc, nil)

	j0 := deriveJ0(iv, h)
	ctr := counter.New(j0)
	ctr.Increment()

	s := ghashBytes(Block{}, aad, h)

	written, cipherBits, err := gctr(plaintext, ciphertext, ctr, key, enc, &s, h, false)
	if err != nil {
		return written, Block{}, err
	}

	aadBits := uint64(len(aad)) * 8
	s = ghashMul(s.Xor(lenBlock(aadBits, cipherBits)), h)
	tag := EncryptBlock(j0, key, enc, nil).Xor(s)

	return written, tag, nil
}

// GCMDecrypt is the symmetric SP 800-38D §7.2 operation. It streams each
// plaintext block out as it is produced, then compares the recomputed tag
// against the supplied one; a mismatch is reported via
// ErrAuthenticationFailed, but bytes already written before the mismatch
// is detected are not retracted. Callers that must withhold plaintext
// until the tag verifies should decrypt into a scratch buffer (OpenBytes
// does this) and only forward it on success.
func GCMDecrypt(ciphertext io.Reader, plaintext io.Writer, key *Key, iv, aad []byte, tag Block) (int, error) {
	enc := BuildEncryptSchedule(key.Rounds())
	h := EncryptBlock(Block{}, key, enc, nil)

	j0 := deriveJ0(iv, h)
	ctr := counter.New(j0)
	ctr.Increment()

	s := ghashBytes(Block{}, aad, h)

	written, cipherBits, err := gctr(ciphertext, plaintext, ctr, key, enc, &s, h, true)
	if err != nil {
		return written, err
	}

	aadBits := uint64(len(aad)) * 8
	s = ghashMul(s.Xor(lenBlock(aadBits, cipherBits)), h)
	expected := EncryptBlock(j0, key, enc, nil).Xor(s)

	if expected != tag {
		return written, ErrAuthenticationFailed
	}

	return written, nil
}

// gctr is NIST SP 800-38D §6.5's counter-mode core shared by encrypt and
// decrypt, folding GHASH over the ciphertext block as it streams: encrypt
// folds the block it just produced, decrypt the block it just consumed.
// Both GHASH the ciphertext, never the plaintext.
func gctr(in io.Reader, out io.Writer, ctr *counter.Counter, key *Key, schedule []Operation, acc *Block, h Block, decrypt bool) (int, uint64, error) {
	written := 0
	var bitsProcessed uint64
	var blocksProcessed uint64

	buf := make([]byte, consts.BLOCK_SIZE)

	for {
		n, err := readFull(in, buf)
		if err != nil {
			return written, bitsProcessed, err
		}
		if n == 0 {
			break
		}

		if blocksProcessed >= gcmMaxBlocks {
			return written, bitsProcessed, ErrGcmCounterOverflow
		}

		if decrypt {
			*acc = ghashAccum(*acc, padBlock(buf[:n]), h)
		}

		keystream := EncryptBlock(Block(ctr.Block()), key, schedule, nil)
		outChunk := keystream.XorPartial(buf[:n])

		wn, err := writeFull(out, outChunk)
		written += wn
		if err != nil {
			return written, bitsProcessed, err
		}

		if !decrypt {
			*acc = ghashAccum(*acc, padBlock(outChunk), h)
		}

		bitsProcessed += uint64(n) * 8
		blocksProcessed++
		ctr.Increment()

		if n < consts.BLOCK_SIZE {
			break
		}
	}

	return written, bitsProcessed, nil
}

// deriveJ0 builds the initial counter block (SP 800-38D §7.1 step 2): the
// 96 bit IV fast path appends 0^31 || 1 directly, the general path GHASHes
// the padded IV followed by its length block.
func deriveJ0(iv []byte, h Block) Block {
	if len(iv) == consts.NONCE_SIZE {
		var j0 Block
		copy(j0[:consts.NONCE_SIZE], iv)
		j0[consts.BLOCK_SIZE-1] = 1
		return j0
	}

	acc := ghashBytes(Block{}, iv, h)
	ivBits := uint64(len(iv)) * 8
	return ghashAccum(acc, lenBlock(0, ivBits), h)
}

// ghashBytes folds arbitrary-length data (AAD, or a non-96-bit IV) into a
// running GHASH accumulator, zero-padding only the final partial block.
func ghashBytes(acc Block, data []byte, h Block) Block {
	for len(data) > 0 {
		n := consts.BLOCK_SIZE
		if len(data) < n {
			n = len(data)
		}
		acc = ghashAccum(acc, padBlock(data[:n]), h)
		data = data[n:]
	}
	return acc
}
