// Package aesgo is a from-scratch AES (FIPS-197) block cipher, the five
// standard confidentiality modes (ECB, CBC, OFB, CFB-128/8, CTR) and GCM
// authenticated encryption (NIST SP 800-38D), with every primitive
// implemented here rather than on top of crypto/aes or crypto/cipher.
//
// Construct a Key from 16/24/32 raw secret bytes, pair it with a Mode in a
// Config, then drive Encrypt/Decrypt over any io.Reader/io.Writer. GCM is
// exposed separately through GCMEncrypt/GCMDecrypt since its tag doesn't
// fit the plain Mode descriptor. EncryptBytes/DecryptBytes/SealBytes/
// OpenBytes wrap the streaming entry points for callers that already have
// the whole message in memory.
package aesgo

import (
	"bytes"
	"io"
)

// Encrypt dispatches to the mode engine selected by cfg.Mode.Kind.
func Encrypt(plaintext io.Reader, ciphertext io.Writer, cfg *Config) (int, error) {
	logOf(cfg.Logger).Infof("encrypting, mode %s, key size %d", cfg.Mode.Kind, cfg.Key.Size())
	switch cfg.Mode.Kind {
	case ECB:
		return encryptECB(plaintext, ciphertext, cfg)
	case CBC:
		return encryptCBC(plaintext, ciphertext, cfg)
	case OFB:
		return encryptOFB(plaintext, ciphertext, cfg)
	case CFB:
		return encryptCFB(plaintext, ciphertext, cfg)
	case CTR:
		return encryptCTR(plaintext, ciphertext, cfg)
	default:
		return 0, ErrWrongMode
	}
}

// Decrypt dispatches to the mode engine selected by cfg.Mode.Kind.
func Decrypt(ciphertext io.Reader, plaintext io.Writer, cfg *Config) (int, error) {
	logOf(cfg.Logger).Infof("decrypting, mode %s, key size %d", cfg.Mode.Kind, cfg.Key.Size())
	switch cfg.Mode.Kind {
	case ECB:
		return decryptECB(ciphertext, plaintext, cfg)
	case CBC:
		return decryptCBC(ciphertext, plaintext, cfg)
	case OFB:
		return decryptOFB(ciphertext, plaintext, cfg)
	case CFB:
		return decryptCFB(ciphertext, plaintext, cfg)
	case CTR:
		return decryptCTR(ciphertext, plaintext, cfg)
	default:
		return 0, ErrWrongMode
	}
}

// EncryptBytes is the buffer-oriented convenience wrapper around Encrypt:
// it exists purely for callers holding the whole plaintext in memory
// already, built directly on top of the streaming engine so the two never
// drift.
func EncryptBytes(plaintext []byte, cfg *Config) ([]byte, error) {
	var out bytes.Buffer
	if _, err := Encrypt(bytes.NewReader(plaintext), &out, cfg); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecryptBytes is the buffer-oriented counterpart to EncryptBytes.
func DecryptBytes(ciphertext []byte, cfg *Config) ([]byte, error) {
	// A non-nil backing slice, so an empty plaintext comes back as an empty
	// slice rather than nil.
	out := bytes.NewBuffer(make([]byte, 0, len(ciphertext)))
	if _, err := Decrypt(bytes.NewReader(ciphertext), out, cfg); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// SealBytes is GCMEncrypt's buffer-oriented counterpart.
func SealBytes(plaintext []byte, key *Key, iv, aad []byte) ([]byte, Block, error) {
	var out bytes.Buffer
	_, tag, err := GCMEncrypt(bytes.NewReader(plaintext), &out, key, iv, aad)
	if err != nil {
		return nil, Block{}, err
	}
	return out.Bytes(), tag, nil
}

// OpenBytes is GCMDecrypt's buffer-oriented counterpart.
func OpenBytes(ciphertext []byte, key *Key, iv, aad []byte, tag Block) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, len(ciphertext)))
	if _, err := GCMDecrypt(bytes.NewReader(ciphertext), out, key, iv, aad, tag); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
