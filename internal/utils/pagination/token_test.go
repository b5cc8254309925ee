package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeToken(entryDate, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedSeq, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, entryDate.Equal(decodedDate), "Entry date should match after decode")
	assert.Equal(t, int64(42), decodedSeq)

	// Zero values round-trip as well
	decodedDate, decodedSeq, err = DecodeToken(EncodeToken(time.Time{}, 0))
	require.NoError(t, err)
	assert.True(t, decodedDate.IsZero())
	assert.Equal(t, int64(0), decodedSeq)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	noSeparator := base64.StdEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.ErrorContains(t, err, "split")

	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|7"))
	_, _, err = DecodeToken(badDate)
	assert.ErrorContains(t, err, "entry date parse")

	badSeq := base64.StdEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z|seven"))
	_, _, err = DecodeToken(badSeq)
	assert.ErrorContains(t, err, "sequence parse")
}
