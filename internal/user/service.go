package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/mailer"
	"github.com/lydiaandcrim/wyshdrop-backend/pkg/token"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("please fill in all fields")
)

// Service owns sign-up, sign-in, guest entry and profile updates.
type Service struct {
	repo      *Repository
	mail      mailer.Sender
	log       *logrus.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	appURL    string
}

// NewService wires the user service.
func NewService(repo *Repository, mail mailer.Sender, log *logrus.Logger, jwtSecret string, tokenTTL time.Duration, appURL string) *Service {
	return &Service{
		repo:      repo,
		mail:      mail,
		log:       log,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		appURL:    appURL,
	}
}

// SignUpInput carries the create-account form fields.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Username  string
}

// SignUp creates a profile, caches its ID, sends the welcome email and
// returns a signed-in session. A welcome email failure is logged, never
// surfaced: the account exists either way.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*Session, string, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" || input.Username == "" {
		return nil, "", ErrMissingFields
	}

	existing, err := s.repo.ByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("unable to hash password: %w", err)
	}

	newUUID, err := uuid.NewV7()
	if err != nil {
		return nil, "", fmt.Errorf("unable to generate UUID v7: %w", err)
	}

	profile := &Profile{
		ID:           newUUID.String(),
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
		PaletteName:  "Default",
	}
	if err := s.repo.Create(profile); err != nil {
		return nil, "", err
	}

	if err := database.RDB.SAdd(database.Ctx, KnownUsersKey, profile.ID).Err(); err != nil {
		s.log.WithError(err).Warn("user: unable to cache new profile ID")
	}

	s.sendWelcomeEmail(ctx, profile)

	session := &Session{UserID: profile.ID, Username: profile.Username, Email: profile.Email}
	signed, err := s.IssueToken(session)
	if err != nil {
		return nil, "", err
	}
	return session, signed, nil
}

// SignIn validates credentials and returns a session.
func (s *Service) SignIn(email, password string) (*Session, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	profile, err := s.repo.ByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if profile == nil || profile.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	session := &Session{UserID: profile.ID, Username: profile.Username, Email: profile.Email}
	signed, err := s.IssueToken(session)
	if err != nil {
		return nil, "", err
	}
	return session, signed, nil
}

// GuestEntry creates a transient guest session with a synthetic ID.
// Guests get no profile row; their preferences live only in Redis.
func (s *Service) GuestEntry() (*Session, string, error) {
	newUUID, err := uuid.NewV7()
	if err != nil {
		return nil, "", fmt.Errorf("unable to generate UUID v7: %w", err)
	}

	session := &Session{
		UserID:   newUUID.String(),
		Username: GuestUsername,
		Email:    GuestEmail,
		IsGuest:  true,
	}
	signed, err := s.IssueToken(session)
	if err != nil {
		return nil, "", err
	}
	return session, signed, nil
}

// ConfirmEmail validates a signed confirmation link and marks the
// profile confirmed.
func (s *Service) ConfirmEmail(userID, email, signature string) error {
	payload := token.ConfirmPayload{UserID: userID, Email: email}
	if !token.ValidateConfirmation(payload, signature) {
		return errors.New("invalid confirmation link")
	}
	return s.repo.UpdateFields(userID, map[string]interface{}{"email_confirmed": true})
}

// UpdateProfile applies username/avatar edits.
func (s *Service) UpdateProfile(userID, username, avatarURL string) error {
	if username == "" {
		return ErrMissingFields
	}
	fields := map[string]interface{}{"username": username}
	if avatarURL != "" {
		fields["avatar_url"] = avatarURL
	}
	return s.repo.UpdateFields(userID, fields)
}

// ProfileByID exposes profile reads to handlers and sibling services.
func (s *Service) ProfileByID(id string) (*Profile, error) {
	return s.repo.ByID(id)
}

func (s *Service) sendWelcomeEmail(ctx context.Context, profile *Profile) {
	signature, err := token.SignConfirmation(token.ConfirmPayload{UserID: profile.ID, Email: profile.Email})
	if err != nil {
		s.log.WithError(err).Warn("user: unable to sign confirmation link")
		return
	}
	confirmURL := fmt.Sprintf("%s/confirm?u=%s&e=%s&sig=%s", s.appURL, profile.ID, profile.Email, signature)

	err = s.mail.SendWelcome(ctx, mailer.WelcomeEmail{
		To:         profile.Email,
		Username:   profile.Username,
		ConfirmURL: confirmURL,
	})
	if err != nil {
		s.log.WithError(err).WithField("email", profile.Email).Warn("user: welcome email failed")
	}
}

type sessionClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsGuest  bool   `json:"guest"`
	jwt.RegisteredClaims
}

// IssueToken signs a JWT for a session.
func (s *Service) IssueToken(session *Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: session.Username,
		Email:    session.Email,
		IsGuest:  session.IsGuest,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("unable to sign session token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a JWT and reconstructs its session.
func (s *Service) ParseToken(raw string) (*Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	return &Session{
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		IsGuest:  claims.IsGuest,
	}, nil
}
