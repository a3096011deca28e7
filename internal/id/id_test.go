package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewToken_Length(t *testing.T) {
	tok := NewToken()
	assert.Len(t, tok, 21)
}

func TestNewToken_ValidCharacters(t *testing.T) {
	valid := regexp.MustCompile(`^[A-Za-z0-9]+$`)
	tok := NewToken()
	assert.True(t, valid.MatchString(tok), "token contains invalid characters: %q", tok)
}

func TestNewToken_Unique(t *testing.T) {
	a := NewToken()
	b := NewToken()
	assert.NotEqual(t, a, b, "two consecutive calls produced the same token")
}

func TestNewHandle_Unique(t *testing.T) {
	// Handles are derived from random tokens, so two calls should not
	// collide in practice.
	a := NewHandle()
	b := NewHandle()
	assert.NotEqual(t, a, b)
}
