package padding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockAlwaysAppendsFullMarkerBlockOnExactMultiple(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i)
	}

	padded := Block(data)
	assert.Equal(t, 32, len(padded))
	assert.Equal(t, byte(0x80), padded[16])
	for _, b := range padded[17:] {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestBlockPadsShortFinalChunk(t *testing.T) {
	padded := Block([]byte("hello"))
	assert.Equal(t, 16, len(padded))
	assert.Equal(t, byte(0x80), padded[5])
}

func TestBlockEmptyInput(t *testing.T) {
	padded := Block(nil)
	assert.Equal(t, 16, len(padded))
	assert.Equal(t, byte(0x80), padded[0])
}

func TestUnblockRoundTrip(t *testing.T) {
	original := []byte("a secret message")
	padded := Block(original)

	data, ok := Unblock(padded)
	assert.True(t, ok)
	assert.Equal(t, original, data)
}

func TestUnblockRejectsMissingMarker(t *testing.T) {
	_, ok := Unblock(make([]byte, 16))
	assert.False(t, ok)
}
