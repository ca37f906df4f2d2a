package aesgo

import (
	"io"

	"github.com/kaisiemek/aesgo/src/consts"
)

// encryptCFB/decryptCFB support the 128 bit and 8 bit feedback segment
// sizes (NIST SP 800-38A §6.3). Both directions feed the *ciphertext*
// segment back into the shift register, so encrypt and decrypt share the
// loop and differ only in which side of the XOR is the stream's input vs.
// output.
func encryptCFB(plaintext io.Reader, ciphertext io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != CFB {
		return 0, ErrWrongMode
	}
	switch cfg.Mode.Segment {
	case CFB8:
		return cfb8(plaintext, ciphertext, cfg, true)
	default:
		return cfb128(plaintext, ciphertext, cfg, true)
	}
}

func decryptCFB(ciphertext io.Reader, plaintext io.Writer, cfg *Config) (int, error) {
	if cfg.Mode.Kind != CFB {
		return 0, ErrWrongMode
	}
	switch cfg.Mode.Segment {
	case CFB8:
		return cfb8(ciphertext, plaintext, cfg, false)
	default:
		return cfb128(ciphertext, plaintext, cfg, false)
	}
}

// cfb128 treats the whole 16 byte register as the feedback segment: the
// keystream for each block is E(K, register), and the register becomes the
// ciphertext block just produced/consumed.
func cfb128(in io.Reader, out io.Writer, cfg *Config, encrypting bool) (int, error) {
	written := 0
	register := Block(cfg.Mode.IV)
	buf := make([]byte, consts.BLOCK_SIZE)

	for {
		n, err := readFull(in, buf)
		if err != nil {
			return written, err
		}
		if n == 0 {
			break
		}

		keystream := EncryptBlock(register, cfg.Key, cfg.EncSchedule, cfg.Logger)
		outChunk := keystream.XorPartial(buf[:n])

		var cipherChunk []byte
		if encrypting {
			cipherChunk = outChunk
		} else {
			cipherChunk = buf[:n]
		}

		wn, err := writeFull(out, outChunk)
		written += wn
		if err != nil {
			return written, err
		}

		if n == consts.BLOCK_SIZE {
			var next Block
			copy(next[:], cipherChunk)
			register = next
		}

		if n < consts.BLOCK_SIZE {
			break
		}
	}

	return written, nil
}

// cfb8 is the byte-granular segment size: the register shifts left by a
// single byte every step, the keystream byte is always the first byte of
// E(K, register), and the byte that shifts in is the ciphertext byte just
// produced/consumed.
func cfb8(in io.Reader, out io.Writer, cfg *Config, encrypting bool) (int, error) {
	written := 0
	register := Block(cfg.Mode.IV)
	buf := make([]byte, 1)

	for {
		n, err := readFull(in, buf)
		if err != nil {
			return written, err
		}
		if n == 0 {
			break
		}

		keystreamBlock := EncryptBlock(register, cfg.Key, cfg.EncSchedule, cfg.Logger)
		ksByte := keystreamBlock.Byte(0)

		var cipherByte, outByte byte
		if encrypting {
			cipherByte = buf[0] ^ ksByte
			outByte = cipherByte
		} else {
			cipherByte = buf[0]
			outByte = cipherByte ^ ksByte
		}

		wn, err := writeFull(out, []byte{outByte})
		written += wn
		if err != nil {
			return written, err
		}

		register = register.RotateLeftBytes(1)
		register.SetByte(consts.BLOCK_SIZE-1, cipherByte)
	}

	return written, nil
}
