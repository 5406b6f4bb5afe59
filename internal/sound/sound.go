// Package sound decides whether a UI event should produce an audio cue.
// The server never plays anything; navigation attaches cue descriptors
// to its responses and the client renders them.
package sound

// Event is a UI occurrence that may have a sound attached.
type Event string

const (
	EventClick          Event = "click"
	EventScroll         Event = "scroll"
	EventPageTransition Event = "pageTransition"
)

// Settings holds the sound switches. The JSON shape matches the
// persisted sound_settings column.
type Settings struct {
	AllEnabled            bool `json:"isAllSoundEnabled"`
	ClickEnabled          bool `json:"isClickSoundEnabled"`
	ScrollEnabled         bool `json:"isScrollSoundEnabled"`
	PageTransitionEnabled bool `json:"isPageTransitionSoundEnabled"`
}

// DefaultSettings is applied to new sessions and unreadable columns.
func DefaultSettings() Settings {
	return Settings{
		AllEnabled:            true,
		ClickEnabled:          true,
		ScrollEnabled:         false,
		PageTransitionEnabled: false,
	}
}

// ShouldPlay gates an event on the master switch first, then the
// per-event switch. Unknown events never play.
func ShouldPlay(s Settings, e Event) bool {
	if !s.AllEnabled {
		return false
	}
	switch e {
	case EventClick:
		return s.ClickEnabled
	case EventScroll:
		return s.ScrollEnabled
	case EventPageTransition:
		return s.PageTransitionEnabled
	default:
		return false
	}
}
