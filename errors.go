package aesgo

import "errors"

// Sentinel errors returned by this package. Callers can match them with
// errors.Is even after they've been wrapped (e.g. the I/O failures wrapped
// by readFull/writeFull in io.go).
var (
	ErrInvalidKeyLength        = errors.New("aesgo: invalid key length")
	ErrInvalidCiphertextLength = errors.New("aesgo: invalid ciphertext length")
	ErrInvalidPadding          = errors.New("aesgo: invalid padding")
	ErrWrongMode               = errors.New("aesgo: wrong operation mode for this engine")
	ErrAuthenticationFailed    = errors.New("aesgo: GCM authentication failed")
	ErrGcmCounterOverflow      = errors.New("aesgo: GCM counter would overflow for this message length")
	ErrIO                      = errors.New("aesgo: io error")
)
