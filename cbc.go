package aesgo

import (
	"io"

	"github.com/kaisiemek/aesgo/src/consts"
	"github.com/kaisiemek/aesgo/src/padding"
)

// encryptCBC streams C_0 := IV, C_i := E(K, P_i xor C_{i-1}). Streaming
// and padding discipline match encryptECB (ecb.go): a one block lookahead
// so the always-pad-a-full-block-on-exact-boundary rule can be applied
// without buffering the whole plaintext.
func encryptCBC(plaintext io.Reader, ciphertext io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != CBC {
		return 0, ErrWrongMode
	}

	written := 0
	prev := Block(cfg.Mode.IV)
	buf := make([]byte, consts.BLOCK_SIZE)

	emit := func(data []byte) error {
		var in Block
		copy(in[:], data)
		out := EncryptBlock(in.Xor(prev), cfg.Key, cfg.EncSchedule, cfg.Logger)
		prev = out
		n, err := writeFull(ciphertext, out[:])
		written += n
		return err
	}

	var pending Block
	havePending := false

	for {
		n, err := readFull(plaintext, buf)
		if err != nil {
			return written, err
		}

		if n == consts.BLOCK_SIZE {
			if havePending {
				if err := emit(pending[:]); err != nil {
					return written, err
				}
			}
			copy(pending[:], buf)
			havePending = true
			continue
		}

		if havePending {
			if err := emit(pending[:]); err != nil {
				return written, err
			}
		}

		padded := padding.Block(buf[:n])
		if err := emit(padded); err != nil {
			return written, err
		}
		break
	}

	return written, nil
}

func decryptCBC(ciphertext io.Reader, plaintext io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != CBC {
		return 0, ErrWrongMode
	}

	written := 0
	prev := Block(cfg.Mode.IV)
	buf := make([]byte, consts.BLOCK_SIZE)

	var pendingPlain Block
	havePending := false

	for {
		n, err := readFull(ciphertext, buf)
		if err != nil {
			return written, err
		}

		if n == 0 {
			break
		}
		if n != consts.BLOCK_SIZE {
			return written, ErrInvalidCiphertextLength
		}

		if havePending {
			wn, err := writeFull(plaintext, pendingPlain[:])
			written += wn
			if err != nil {
				return written, err
			}
		}

		var cipherBlock Block
		copy(cipherBlock[:], buf)
		pendingPlain = DecryptBlock(cipherBlock, cfg.Key, cfg.DecSchedule, cfg.Logger).Xor(prev)
		prev = cipherBlock
		havePending = true
	}

	if !havePending {
		return written, ErrInvalidCiphertextLength
	}

	unpadded, ok := padding.Unblock(pendingPlain[:])
	if !ok {
		return written, ErrInvalidPadding
	}

	wn, err := writeFull(plaintext, unpadded)
	written += wn
	return written, err
}
