package preferences

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/sound"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// ErrUnknownPalette is returned when the palette name does not ship.
var ErrUnknownPalette = errors.New("unknown palette")

// keyPrefix namespaces the per-session preference hash in Redis.
const keyPrefix = "prefs:"

// Preferences is the per-session UI preference set. The Redis copy is
// authoritative for the session; signed-in users also get it mirrored
// onto their profile row.
type Preferences struct {
	IsDarkMode  bool           `json:"isDarkMode"`
	PaletteName string         `json:"paletteName"`
	Sound       sound.Settings `json:"soundSettings"`
	LastPage    string         `json:"lastPage"`
}

// Defaults is the preference set for a fresh session.
func Defaults() Preferences {
	return Preferences{
		PaletteName: DefaultPaletteName,
		Sound:       sound.DefaultSettings(),
	}
}

// Service reads and writes per-session preferences.
type Service struct {
	users *user.Repository
	log   *logrus.Logger
}

// NewService wires the preferences service.
func NewService(users *user.Repository, log *logrus.Logger) *Service {
	return &Service{users: users, log: log}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

// Get loads the session's preferences. A Redis miss falls back to the
// profile row for signed-in users, then to defaults, and re-caches.
func (s *Service) Get(session *user.Session) (Preferences, error) {
	raw, err := database.RDB.Get(database.Ctx, key(session.UserID)).Result()
	if err == nil {
		var prefs Preferences
		if jsonErr := json.Unmarshal([]byte(raw), &prefs); jsonErr == nil {
			return prefs, nil
		}
		s.log.Warn("discarding unreadable preference cache entry")
	} else if !errors.Is(err, redis.Nil) {
		return Preferences{}, fmt.Errorf("unable to read preferences: %w", err)
	}

	prefs := s.rebuild(session)
	if err := s.cache(session.UserID, prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

// Update replaces the session's preferences and mirrors them onto the
// profile row for signed-in users.
func (s *Service) Update(session *user.Session, prefs Preferences) error {
	if prefs.PaletteName == "" {
		prefs.PaletteName = DefaultPaletteName
	}
	if !IsKnownPalette(prefs.PaletteName) {
		return ErrUnknownPalette
	}

	if err := s.cache(session.UserID, prefs); err != nil {
		return err
	}
	if session.IsGuest {
		return nil
	}

	soundJSON, err := json.Marshal(prefs.Sound)
	if err != nil {
		return fmt.Errorf("unable to encode sound settings: %w", err)
	}
	err = s.users.UpdateFields(session.UserID, map[string]interface{}{
		"is_dark_mode":   prefs.IsDarkMode,
		"palette_name":   prefs.PaletteName,
		"sound_settings": string(soundJSON),
	})
	if err != nil {
		s.log.WithError(err).Warn("unable to mirror preferences to profile")
	}
	return nil
}

// SetLastPage records the session's last visited page. Navigation calls
// this on every committed transition.
func (s *Service) SetLastPage(session *user.Session, page string) {
	prefs, err := s.Get(session)
	if err != nil {
		s.log.WithError(err).Warn("unable to record last page")
		return
	}
	prefs.LastPage = page
	if err := s.cache(session.UserID, prefs); err != nil {
		s.log.WithError(err).Warn("unable to record last page")
	}
}

func (s *Service) cache(sessionID string, prefs Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("unable to encode preferences: %w", err)
	}
	if err := database.RDB.Set(database.Ctx, key(sessionID), raw, 0).Err(); err != nil {
		return fmt.Errorf("unable to cache preferences: %w", err)
	}
	return nil
}

// rebuild derives preferences from the profile row, or defaults when
// there is none.
func (s *Service) rebuild(session *user.Session) Preferences {
	prefs := Defaults()
	if session.IsGuest {
		return prefs
	}

	profile, err := s.users.ByID(session.UserID)
	if err != nil || profile == nil {
		return prefs
	}
	return fromProfile(profile)
}

func fromProfile(profile *user.Profile) Preferences {
	prefs := Defaults()
	prefs.IsDarkMode = profile.IsDarkMode
	if IsKnownPalette(profile.PaletteName) {
		prefs.PaletteName = profile.PaletteName
	}
	if profile.SoundSettings != "" {
		var settings sound.Settings
		if err := json.Unmarshal([]byte(profile.SoundSettings), &settings); err == nil {
			prefs.Sound = settings
		}
	}
	return prefs
}
