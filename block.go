package aesgo

import (
	"encoding/binary"

	"github.com/kaisiemek/aesgo/src/consts"
	"github.com/kaisiemek/aesgo/src/galois"
	"github.com/kaisiemek/aesgo/src/sbox"
)

// Block is the 128 bit unit every AES operation moves in: 16 octets,
// interpreted two ways depending on context. As the AES state, byte i
// belongs to column i/4, row i%4: FIPS-197 §3.5 maps input bytes to the
// state as state(r,c) = in[r+4c], so the flat byte order already is the
// column-major state and no transpose happens on ingress or egress. As a
// 128 bit integer (CTR counters, GHASH), it is read big-endian.
type Block [consts.BLOCK_SIZE]byte

// Xor returns a new Block XORed byte-wise with another.
func (b Block) Xor(other Block) Block {
	var out Block
	for i := range b {
		out[i] = b[i] ^ other[i]
	}
	return out
}

// XorPartial XORs the first len(raw) bytes of b with raw (raw may be
// shorter than a full block, for the final segment of a stream).
func (b Block) XorPartial(raw []byte) []byte {
	out := make([]byte, len(raw))
	for i := range raw {
		out[i] = b[i] ^ raw[i]
	}
	return out
}

// RotateLeftBytes rotates the block left by n bytes (used by CFB's shift
// register).
func (b Block) RotateLeftBytes(n int) Block {
	var out Block
	for i := range b {
		out[i] = b[(i+n)%consts.BLOCK_SIZE]
	}
	return out
}

func (b Block) Byte(i int) byte        { return b[i] }
func (b *Block) SetByte(i int, v byte) { b[i] = v }

func (b Block) Word(i int) [4]byte {
	var w [4]byte
	copy(w[:], b[i*4:i*4+4])
	return w
}

func (b *Block) SetWord(i int, w [4]byte) {
	copy(b[i*4:i*4+4], w[:])
}

// Uint128 returns the block as a big-endian (hi, lo) pair, used by CTR
// counter arithmetic and GHASH.
func (b Block) Uint128() (hi, lo uint64) {
	return binary.BigEndian.Uint64(b[0:8]), binary.BigEndian.Uint64(b[8:16])
}

// BlockFromUint128 is the inverse of Block.Uint128.
func BlockFromUint128(hi, lo uint64) Block {
	var b Block
	binary.BigEndian.PutUint64(b[0:8], hi)
	binary.BigEndian.PutUint64(b[8:16], lo)
	return b
}

// --- State transforms ---
//
// The four FIPS-197 §5.1 round transforms and their inverses. All are
// pure, total maps: no error paths, every Block is a valid state.

func subBytes(s Block) Block {
	var out Block
	for i, v := range s {
		out[i] = sbox.Sbox[v]
	}
	return out
}

func invSubBytes(s Block) Block {
	var out Block
	for i, v := range s {
		out[i] = sbox.InvSbox[v]
	}
	return out
}

// shiftRows rotates row r left by r bytes; invShiftRows rotates right by r.
func shiftRows(s Block) Block {
	out := s
	for row := 1; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row+4*col] = s[row+4*((col+row)%4)]
		}
	}
	return out
}

func invShiftRows(s Block) Block {
	out := s
	for row := 1; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row+4*col] = s[row+4*((col-row+4)%4)]
		}
	}
	return out
}

func mixColumns(s Block) Block {
	var out Block
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := s[4*c+0], s[4*c+1], s[4*c+2], s[4*c+3]
		out[4*c+0] = galois.Mul02(s0) ^ galois.Mul03(s1) ^ s2 ^ s3
		out[4*c+1] = s0 ^ galois.Mul02(s1) ^ galois.Mul03(s2) ^ s3
		out[4*c+2] = s0 ^ s1 ^ galois.Mul02(s2) ^ galois.Mul03(s3)
		out[4*c+3] = galois.Mul03(s0) ^ s1 ^ s2 ^ galois.Mul02(s3)
	}
	return out
}

func invMixColumns(s Block) Block {
	var out Block
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := s[4*c+0], s[4*c+1], s[4*c+2], s[4*c+3]
		out[4*c+0] = galois.Mul0e(s0) ^ galois.Mul0b(s1) ^ galois.Mul0d(s2) ^ galois.Mul09(s3)
		out[4*c+1] = galois.Mul09(s0) ^ galois.Mul0e(s1) ^ galois.Mul0b(s2) ^ galois.Mul0d(s3)
		out[4*c+2] = galois.Mul0d(s0) ^ galois.Mul09(s1) ^ galois.Mul0e(s2) ^ galois.Mul0b(s3)
		out[4*c+3] = galois.Mul0b(s0) ^ galois.Mul0d(s1) ^ galois.Mul09(s2) ^ galois.Mul0e(s3)
	}
	return out
}

func addRoundKey(s Block, rk Block) Block {
	return s.Xor(rk)
}

// EncryptBlock runs the encryption Operation schedule against a single 16
// byte state, logging one trace line per step (debug) through the
// Config's Logger.
func EncryptBlock(state Block, k *Key, schedule []Operation, logger Logger) Block {
	return runSchedule(state, k, schedule, logger)
}

// DecryptBlock runs the decryption Operation schedule (the inverse of the
// one EncryptBlock uses, built by BuildDecryptSchedule) against a single
// 16 byte state.
func DecryptBlock(state Block, k *Key, schedule []Operation, logger Logger) Block {
	return runSchedule(state, k, schedule, logger)
}

func runSchedule(state Block, k *Key, schedule []Operation, logger Logger) Block {
	logger = logOf(logger)
	s := state

	for _, op := range schedule {
		s = runOp(s, op, k)
		logger.Debugf("%s -> %x", op.Kind, s)
	}

	return s
}

func runOp(s Block, op Operation, k *Key) Block {
	switch op.Kind {
	case OpSubBytes:
		return subBytes(s)
	case OpInvSubBytes:
		return invSubBytes(s)
	case OpShiftRows:
		return shiftRows(s)
	case OpInvShiftRows:
		return invShiftRows(s)
	case OpMixColumns:
		return mixColumns(s)
	case OpInvMixColumns:
		return invMixColumns(s)
	case OpAddRoundKey:
		return addRoundKey(s, k.RoundKey(op.Round))
	default:
		panic("aesgo: unknown operation kind")
	}
}
