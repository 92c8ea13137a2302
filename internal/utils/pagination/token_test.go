package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	ts := time.Date(2024, 3, 1, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(ts, "3f0c2a5e-audit")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTS, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, ts.Equal(decodedTS), "Timestamp should match after decode")
	assert.Equal(t, "3f0c2a5e-audit", decodedID)

	// non-UTC input comes back as the same instant
	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2024, 3, 1, 20, 0, 45, 0, ist)
	decodedTS, _, err = DecodeToken(EncodeToken(local, "x"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedTS))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	emptyID := base64.URLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z|"))
	_, _, err = DecodeToken(emptyID)
	assert.Error(t, err)

	badTime := base64.URLEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeToken(badTime)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp parse")
}
