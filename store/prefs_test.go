package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLikeRoundTrips(t *testing.T) {
	p := NewPrefs()

	assert.False(t, p.IsLiked("p1"))
	assert.True(t, p.ToggleLike("p1"))
	assert.True(t, p.IsLiked("p1"))
	assert.False(t, p.ToggleLike("p1"))
	assert.False(t, p.IsLiked("p1"))
}

func TestToggleCartIsIndependentPerProduct(t *testing.T) {
	p := NewPrefs()

	assert.True(t, p.ToggleCart("p1"))
	assert.True(t, p.ToggleCart("p2"))
	assert.False(t, p.ToggleCart("p1"))

	assert.False(t, p.InCart("p1"))
	assert.True(t, p.InCart("p2"))
}

func TestLikesAndCartDoNotShareState(t *testing.T) {
	p := NewPrefs()

	p.ToggleLike("p1")
	assert.True(t, p.IsLiked("p1"))
	assert.False(t, p.InCart("p1"))
}
