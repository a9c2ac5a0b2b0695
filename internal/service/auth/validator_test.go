package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidName("Anne-Marie"))
	assert.True(IsValidName("O'Brien"))
	assert.True(IsValidName("Mary Jane"))
	assert.False(IsValidName("A"))
	assert.False(IsValidName(strings.Repeat("a", 21)))
	assert.True(IsValidName(strings.Repeat("a", 20)))
	assert.False(IsValidName("Anne3"))
	assert.False(IsValidName(""))
}

func TestIsValidPassword(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidPassword("abc12345"))
	assert.False(IsValidPassword("12345678")) // no letter
	assert.False(IsValidPassword("abcdefgh")) // no digit
	assert.False(IsValidPassword("ab1"))      // too short
}

func TestIsValidEmail(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidEmail("user@example.com"))
	assert.True(IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(IsValidEmail("not-an-email"))
	assert.False(IsValidEmail("missing@tld@example.com"))
	assert.False(IsValidEmail("@example.com"))
	assert.False(IsValidEmail("user@"))
}
