package aesgo

import (
	"io"

	"github.com/kaisiemek/aesgo/src/consts"
	"github.com/kaisiemek/aesgo/src/padding"
)

// encryptECB streams C_i = E(K, P_i) without ever buffering more than one
// lookahead block: whether the current full block is the *last* one (and
// therefore needs a trailing marker block appended, even when the message
// is an exact multiple of 16) can only be known once the next read comes
// back short or empty.
func encryptECB(plaintext io.Reader, ciphertext io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != ECB {
		return 0, ErrWrongMode
	}

	written := 0
	buf := make([]byte, consts.BLOCK_SIZE)

	emit := func(data []byte) error {
		var in Block
		copy(in[:], data)
		out := EncryptBlock(in, cfg.Key, cfg.EncSchedule, cfg.Logger)
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

func decryptECB(ciphertext io.Reader, plaintext io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != ECB {
		return 0, ErrWrongMode
	}

	written := 0
	buf := make([]byte, consts.BLOCK_SIZE)

	var pending Block
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
			wn, err := writeFull(plaintext, pending[:])
			written += wn
			if err != nil {
				return written, err
			}
		}

		var in Block
		copy(in[:], buf)
		pending = DecryptBlock(in, cfg.Key, cfg.DecSchedule, cfg.Logger)
		havePending = true
	}

	if !havePending {
		return written, ErrInvalidCiphertextLength
	}

	unpadded, ok := padding.Unblock(pending[:])
	if !ok {
		return written, ErrInvalidPadding
	}

	wn, err := writeFull(plaintext, unpadded)
	written += wn
	return written, err
}
