package key

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaisiemek/aesgo/src/consts"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// FIPS-197 Appendix C.1: AES-128 key schedule, first two round keys.
func TestExpandKeyAES128(t *testing.T) {
	k := mustDecode(t, "000102030405060708090a0b0c0d0e0f")

	expanded, err := ExpandKey(k)
	require.NoError(t, err)
	assert.Equal(t, 176, len(expanded))
	assert.Equal(t, k, []byte(expanded[:16]))
	assert.Equal(t, mustDecode(t, "d6aa74fdd2af72fadaa678f1d6ab76fe"), []byte(expanded[16:32]))
}

// FIPS-197 Appendix A.3: AES-256 key schedule has 15 round keys (Nr=14).
func TestExpandKeyAES256RoundCount(t *testing.T) {
	k := make([]byte, 32)
	expanded, err := ExpandKey(k)
	require.NoError(t, err)
	assert.Equal(t, consts.BLOCK_SIZE*15, len(expanded))
}

func TestExpandKeyRejectsBadLength(t *testing.T) {
	_, err := ExpandKey(make([]byte, 20))
	assert.Error(t, err)
}

func TestRotWord(t *testing.T) {
	got := RotWord([4]byte{0x01, 0x02, 0x03, 0x04})
	assert.Equal(t, [4]byte{0x02, 0x03, 0x04, 0x01}, got)
}
