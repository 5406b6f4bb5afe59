package user

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/mailer"
	"github.com/lydiaandcrim/wyshdrop-backend/pkg/token"
)

type captureMailer struct {
	welcomes []mailer.WelcomeEmail
}

func (c *captureMailer) SendHint(ctx context.Context, email mailer.HintEmail) []mailer.RecipientResult {
	return nil
}

func (c *captureMailer) SendWelcome(ctx context.Context, email mailer.WelcomeEmail) error {
	c.welcomes = append(c.welcomes, email)
	return nil
}

func testService(t *testing.T) (*Service, *captureMailer) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Profile{}))

	// Unreachable Redis: the ID cache write degrades to a logged warning.
	database.RDB = redis.NewClient(&redis.Options{Addr: "localhost:1"})
	token.GenerateSecretKey()

	mail := &captureMailer{}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(NewRepository(db), mail, log, "test-secret", time.Hour, "http://localhost:8080"), mail
}

func validInput() SignUpInput {
	return SignUpInput{
		Email:     "lydia@example.com",
		Password:  "hunter22",
		FirstName: "Lydia",
		LastName:  "Nguyen",
		Username:  "lydia",
	}
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, mail := testService(t)

	session, tokenStr, err := svc.SignUp(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.False(t, session.IsGuest)
	require.Len(t, mail.welcomes, 1)
	assert.Equal(t, "lydia@example.com", mail.welcomes[0].To)
	assert.Contains(t, mail.welcomes[0].ConfirmURL, "sig=")

	again, _, err := svc.SignIn("lydia@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, again.UserID)

	_, _, err = svc.SignIn("lydia@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpValidation(t *testing.T) {
	svc, _ := testService(t)

	input := validInput()
	input.Username = ""
	_, _, err := svc.SignUp(context.Background(), input)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestDuplicateEmail(t *testing.T) {
	svc, _ := testService(t)

	_, _, err := svc.SignUp(context.Background(), validInput())
	require.NoError(t, err)

	_, _, err = svc.SignUp(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGuestEntry(t *testing.T) {
	svc, _ := testService(t)

	session, tokenStr, err := svc.GuestEntry()
	require.NoError(t, err)
	assert.True(t, session.IsGuest)
	assert.Equal(t, GuestUsername, session.Username)
	assert.Equal(t, GuestEmail, session.Email)
	assert.NotEmpty(t, session.UserID, "guests get a synthetic id")

	parsed, err := svc.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.True(t, parsed.IsGuest)
	assert.Equal(t, session.UserID, parsed.UserID)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := testService(t)

	session := &Session{UserID: "u-1", Username: "lydia", Email: "lydia@example.com"}
	signed, err := svc.IssueToken(session)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, session, parsed)

	_, err = svc.ParseToken(signed + "tampered")
	assert.Error(t, err)
}

func TestConfirmEmail(t *testing.T) {
	svc, _ := testService(t)

	session, _, err := svc.SignUp(context.Background(), validInput())
	require.NoError(t, err)

	sig, err := token.SignConfirmation(token.ConfirmPayload{UserID: session.UserID, Email: session.Email})
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmEmail(session.UserID, session.Email, sig))
	profile, err := svc.ProfileByID(session.UserID)
	require.NoError(t, err)
	assert.True(t, profile.EmailConfirmed)

	err = svc.ConfirmEmail(session.UserID, "other@example.com", sig)
	assert.Error(t, err, "signature binds the email address")
}
