package aesgo

import (
	"io"

	"github.com/kaisiemek/aesgo/src/consts"
)

// streamOFB generates the keystream O_0 = IV, O_i = E(K, O_{i-1}) and
// emits C_i = P_i xor O_i. OFB is its own inverse (XOR with the same
// keystream), so one function serves both Encrypt and Decrypt, unlike
// ECB/CBC which need distinct block transforms in each direction. No
// padding; the final segment may be shorter than a full block.
func streamOFB(in io.Reader, out io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != OFB {
		return 0, ErrWrongMode
	}

	written := 0
	keystream := Block(cfg.Mode.IV)
	buf := make([]byte, consts.BLOCK_SIZE)

	for {
		n, err := readFull(in, buf)
		if err != nil {
			return written, err
		}
		if n == 0 {
			break
		}

		keystream = EncryptBlock(keystream, cfg.Key, cfg.EncSchedule, cfg.Logger)
		xored := keystream.XorPartial(buf[:n])

		wn, err := writeFull(out, xored)
		written += wn
		if err != nil {
			return written, err
		}

		if n < consts.BLOCK_SIZE {
			break
		}
	}

	return written, nil
}

func encryptOFB(plaintext io.Reader, ciphertext io.Writer, cfg *Config) (int, error) {
	return streamOFB(plaintext, ciphertext, cfg)
}

func decryptOFB(ciphertext io.Reader, plaintext io.Writer, cfg *Config) (int, error) {
	return streamOFB(ciphertext, plaintext, cfg)
}
