package navigation

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/contact"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/preferences"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/quiz"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

func testNavService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.Profile{}, &contact.Contact{}, &quiz.GiftIdea{}))

	// Unreachable Redis: last-page tracking degrades to a logged warning.
	database.RDB = redis.NewClient(&redis.Options{Addr: "localhost:1"})

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	users := user.NewRepository(db)
	prefs := preferences.NewService(users, log)
	return NewService(users, contact.NewService(db), prefs, log), db
}

func signedInOnHome(t *testing.T, svc *Service) *user.Session {
	t.Helper()
	session := &user.Session{UserID: "u-1", Username: "lydia", Email: "lydia@example.com"}
	svc.ControllerFor(session.UserID, session).NavigateTo(Home)
	return session
}

func TestQuizMeOpensOverlayInPlace(t *testing.T) {
	svc, _ := testNavService(t)
	session := signedInOnHome(t, svc)

	snap, msg := svc.DispatchCategoryAction(session.UserID, session, ActionQuizMe)
	assert.Empty(t, msg)
	assert.True(t, snap.Overlays[OverlayQuiz])
	assert.Equal(t, Home, snap.Page, "opening the quiz never changes the page")
}

func TestDonateKeepsPageAndReturnsMessage(t *testing.T) {
	svc, _ := testNavService(t)
	session := signedInOnHome(t, svc)

	snap, msg := svc.DispatchCategoryAction(session.UserID, session, ActionDonate)
	assert.Equal(t, donateMessage, msg)
	assert.Equal(t, Home, snap.Page)
	assert.False(t, snap.Overlays[OverlayQuiz])
}

func TestPlainLabelNavigatesToCategory(t *testing.T) {
	svc, _ := testNavService(t)
	session := signedInOnHome(t, svc)

	snap, msg := svc.DispatchCategoryAction(session.UserID, session, "Tech")
	assert.Empty(t, msg)
	assert.Equal(t, Category("Tech"), snap.Page)
	assert.Equal(t, "Tech", snap.ActiveCategory)
}

func TestRecommendedSignedOutLandsOnCover(t *testing.T) {
	svc, _ := testNavService(t)

	snap, msg := svc.DispatchCategoryAction("anon:203.0.113.9", nil, ActionRecommended)
	assert.Empty(t, msg)
	assert.Equal(t, Cover, snap.Page)
	assert.False(t, snap.Overlays[OverlayQuizPrompt], "signed-out users never see the quiz prompt")
}

func TestRecommendedWithoutQuizOrIdeasPromptsQuiz(t *testing.T) {
	svc, db := testNavService(t)
	session := signedInOnHome(t, svc)
	require.NoError(t, db.Create(&user.Profile{ID: session.UserID, Username: session.Username, Email: session.Email}).Error)

	snap, msg := svc.DispatchCategoryAction(session.UserID, session, ActionRecommended)
	assert.Empty(t, msg)
	assert.True(t, snap.Overlays[OverlayQuizPrompt])
	assert.Equal(t, Home, snap.Page, "the prompt opens over the current page")
}

func TestRecommendedAfterQuizNavigates(t *testing.T) {
	svc, db := testNavService(t)
	session := signedInOnHome(t, svc)
	require.NoError(t, db.Create(&user.Profile{ID: session.UserID, Email: session.Email, HasTakenQuiz: true}).Error)

	snap, _ := svc.DispatchCategoryAction(session.UserID, session, ActionRecommended)
	assert.Equal(t, PageRecommended, snap.Page.Kind)
	assert.False(t, snap.Overlays[OverlayQuizPrompt])
}

func TestRecommendedWithContactIdeasNavigates(t *testing.T) {
	svc, db := testNavService(t)
	session := signedInOnHome(t, svc)
	require.NoError(t, db.Create(&user.Profile{ID: session.UserID, Email: session.Email}).Error)

	ana := contact.Contact{UserID: session.UserID, Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, db.Create(&ana).Error)
	idea := quiz.GiftIdea{UserID: session.UserID, ContactID: &ana.ID, GeneratedIdeasText: "1. tea sampler"}
	require.NoError(t, db.Create(&idea).Error)

	snap, _ := svc.DispatchCategoryAction(session.UserID, session, ActionRecommended)
	assert.Equal(t, PageRecommended, snap.Page.Kind)
}
