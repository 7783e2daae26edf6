package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClaimantTrimsWhitespace(t *testing.T) {
	c := NewClaimant("  Mira Oasis ", " 117\t")

	assert.Equal(t, "Mira Oasis", c.Community)
	assert.Equal(t, "117", c.Villa)
}

func TestClaimantValid(t *testing.T) {
	assert.True(t, NewClaimant("Mira", "42").Valid())
	assert.False(t, NewClaimant("", "42").Valid())
	assert.False(t, NewClaimant("Mira", "").Valid())
	assert.False(t, NewClaimant("   ", "42").Valid())
}

func TestClaimantEqual(t *testing.T) {
	a := NewClaimant("Mira", "42")

	assert.True(t, a.Equal(NewClaimant("Mira", "42")))
	assert.False(t, a.Equal(NewClaimant("Mira", "43")))
	assert.False(t, a.Equal(NewClaimant("Mira Oasis", "42")))
}

func TestClaimantString(t *testing.T) {
	assert.Equal(t, "Mira/42", NewClaimant("Mira", "42").String())
}
