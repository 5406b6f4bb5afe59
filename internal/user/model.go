package user

import (
	"time"

	"gorm.io/gorm"
)

// Profile is the persisted user model. Quiz answers and UI preferences
// are mirrored onto the profile row so a signed-in user gets them back
// on any device, matching how the hosted backend stored them.
type Profile struct {
	// ID is the user's UUID primary key.
	ID string `gorm:"primarykey;type:varchar(36)"`

	Username  string `gorm:"type:varchar(64)"`
	Email     string `gorm:"uniqueIndex;type:varchar(255)"`
	FirstName string `gorm:"type:varchar(64)"`
	LastName  string `gorm:"type:varchar(64)"`
	AvatarURL string

	// PasswordHash is a bcrypt hash; empty for guest profiles.
	PasswordHash   string
	EmailConfirmed bool

	// HasTakenQuiz flips to true the first time a quiz submission
	// produces a result.
	HasTakenQuiz bool
	// QuizAnswers is the JSON-serialized answer set, autosaved while the
	// quiz overlay is open.
	QuizAnswers string

	// UI preferences mirrored from the preferences store.
	IsDarkMode    bool
	PaletteName   string `gorm:"type:varchar(32)"`
	SoundSettings string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Session is the authenticated identity carried through a request.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsGuest  bool   `json:"isGuest"`
}

// GuestUsername is the display name every guest session gets.
const GuestUsername = "Guest"

// GuestEmail mirrors the placeholder address the client shell shows for
// guests.
const GuestEmail = "guest@wyshdrop.com"
