package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasterSwitchGatesEverything(t *testing.T) {
	s := Settings{
		AllEnabled:            false,
		ClickEnabled:          true,
		ScrollEnabled:         true,
		PageTransitionEnabled: true,
	}

	assert.False(t, ShouldPlay(s, EventClick))
	assert.False(t, ShouldPlay(s, EventScroll))
	assert.False(t, ShouldPlay(s, EventPageTransition))
}

func TestPerEventSwitches(t *testing.T) {
	s := Settings{
		AllEnabled:    true,
		ClickEnabled:  true,
		ScrollEnabled: false,
	}

	assert.True(t, ShouldPlay(s, EventClick))
	assert.False(t, ShouldPlay(s, EventScroll))
	assert.False(t, ShouldPlay(s, EventPageTransition))
}

func TestUnknownEventNeverPlays(t *testing.T) {
	s := Settings{AllEnabled: true, ClickEnabled: true}
	assert.False(t, ShouldPlay(s, Event("hover")))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.AllEnabled)
	assert.True(t, s.ClickEnabled)
	assert.False(t, s.ScrollEnabled)
	assert.False(t, s.PageTransitionEnabled)
}
