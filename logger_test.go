package aesgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Attaching a logger must never change what the engine produces, only what
// it traces.
func TestLoggerDoesNotAffectOutput(t *testing.T) {
	k, err := NewKey(make([]byte, 16))
	require.NoError(t, err)
	plaintext := []byte("observe this")

	quiet, err := EncryptBytes(plaintext, NewConfig(k, NewCBCMode([16]byte{5})))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	traced := NewConfig(k, NewCBCMode([16]byte{5})).WithLogger(NewZapLogger(zap.New(core).Sugar()))

	loud, err := EncryptBytes(plaintext, traced)
	require.NoError(t, err)

	assert.Equal(t, quiet, loud)
	assert.Greater(t, logs.Len(), 0)
}

func TestNoopLoggerIsSafeWhenNil(t *testing.T) {
	assert.NotPanics(t, func() {
		logOf(nil).Debugf("into the void %d", 1)
		logOf(nil).Infof("into the void %d", 2)
	})
}
