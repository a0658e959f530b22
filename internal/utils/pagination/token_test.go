package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2024, 3, 1, 9, 15, 30, 123456000, time.UTC)

	token := EncodeToken(date, "sale_abc")
	assert.NotEmpty(t, token)

	decodedDate, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate))
	assert.Equal(t, "sale_abc", decodedID)
}

func TestEncodeToken_NormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("UZT", 5*60*60)
	date := time.Date(2024, 3, 1, 14, 0, 0, 0, loc)

	decodedDate, _, err := DecodeToken(EncodeToken(date, "rcpt_1"))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, decodedDate.Location())
	assert.True(t, date.Equal(decodedDate))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	emptyID := base64.URLEncoding.EncodeToString([]byte("2024-03-01T00:00:00Z|"))
	_, _, err = DecodeToken(emptyID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|sale_1"))
	_, _, err = DecodeToken(badDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
}
