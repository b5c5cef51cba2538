package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	occurredAt := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 15, 18, 30, 12, 345678000, time.UTC)

	token := EncodeToken(occurredAt, createdAt)
	gotOccurred, gotCreated, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, occurredAt.Equal(gotOccurred))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!")
	assert.Error(t, err)

	_, _, err = DecodeToken("aGVsbG8=") // valid base64, no separator
	assert.Error(t, err)
}
