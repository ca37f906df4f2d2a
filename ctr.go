package aesgo

import (
	"io"

	"github.com/kaisiemek/aesgo/src/consts"
	"github.com/kaisiemek/aesgo/src/counter"
)

// streamCTR interprets the IV as a 96 bit nonce followed by a 32 bit
// counter (the split counter.Counter models), incremented once per block.
// Like OFB, CTR is its own inverse.
func streamCTR(in io.Reader, out io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != CTR {
		return 0, ErrWrongMode
	}

	written := 0
	ctr := counter.New(cfg.Mode.IV)
	buf := make([]byte, consts.BLOCK_SIZE)

	for {
		n, err := readFull(in, buf)
		if err != nil {
			return written, err
		}
		if n == 0 {
			break
		}

		keystream := EncryptBlock(Block(ctr.Block()), cfg.Key, cfg.EncSchedule, cfg.Logger)
		xored := keystream.XorPartial(buf[:n])

		wn, err := writeFull(out, xored)
		written += wn
		if err != nil {
			return written, err
		}

		ctr.Increment()

		if n < consts.BLOCK_SIZE {
			break
		}
	}

	return written, nil
}

func encryptCTR(plaintext io.Reader, ciphertext io.Writer, cfg *Config) (int, error) {
	return streamCTR(plaintext, ciphertext, cfg)
}

func decryptCTR(ciphertext io.Reader, plaintext io.Writer, cfg *Config) (int, error) {
	return streamCTR(ciphertext, plaintext, cfg)
}
