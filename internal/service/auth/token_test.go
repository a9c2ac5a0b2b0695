package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	assert := assert.New(t)

	pairs := []TokenObject{
		{SessionID: 10000000, UserID: 0},
		{SessionID: 99999999, UserID: 1},
		{SessionID: 55555555, UserID: 12345},
	}

	for _, pair := range pairs {
		token := EncodeToken(pair.UserID, pair.SessionID)
		decoded, err := DecodeToken(token)
		assert.Nil(err)
		assert.Equal(pair, decoded)
	}
}

func TestTokenEncoding(t *testing.T) {
	assert := assert.New(t)

	// percent-encoded JSON with sessionId before userId
	token := EncodeToken(3, 12345678)
	assert.Equal("%7B%22sessionId%22%3A12345678%2C%22userId%22%3A3%7D", token)
}

func TestDecodeTokenErrors(t *testing.T) {
	assert := assert.New(t)

	t.Run("invalid percent encoding", func(t *testing.T) {
		_, err := DecodeToken("%zz")
		assert.NotNil(err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeToken("hello")
		assert.NotNil(err)
	})
}
