package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/quiz"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Contact{}, &quiz.GiftIdea{}))
	return NewService(db), db
}

func TestCreateValidation(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Create("u-1", "", "ana@example.com")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Create("u-1", "Ana", "  ")
	assert.ErrorIs(t, err, ErrMissingFields)

	created, err := svc.Create("u-1", "  Ana  ", " ana@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, "ana@example.com", created.Email)
}

func TestListAndDeleteAreOwnerScoped(t *testing.T) {
	svc, _ := testService(t)

	mine, err := svc.Create("u-1", "Ana", "ana@example.com")
	require.NoError(t, err)
	theirs, err := svc.Create("u-2", "Eve", "eve@example.com")
	require.NoError(t, err)

	contacts, err := svc.List("u-1")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, mine.ID, contacts[0].ID)

	err = svc.Delete("u-1", theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound, "deleting another user's contact misses")

	require.NoError(t, svc.Delete("u-1", mine.ID))
}

func TestByIDsFiltersForeignContacts(t *testing.T) {
	svc, _ := testService(t)

	mine, err := svc.Create("u-1", "Ana", "ana@example.com")
	require.NoError(t, err)
	theirs, err := svc.Create("u-2", "Eve", "eve@example.com")
	require.NoError(t, err)

	contacts, err := svc.ByIDs("u-1", []uint{mine.ID, theirs.ID})
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, mine.ID, contacts[0].ID)
}

func TestHasContactsWithIdeas(t *testing.T) {
	svc, db := testService(t)

	ana, err := svc.Create("u-1", "Ana", "ana@example.com")
	require.NoError(t, err)

	has, err := svc.HasContactsWithIdeas("u-1")
	require.NoError(t, err)
	assert.False(t, has, "a contact without ideas does not count")

	idea := quiz.GiftIdea{UserID: "u-1", ContactID: &ana.ID, GeneratedIdeasText: "1. tea sampler"}
	require.NoError(t, db.Create(&idea).Error)

	has, err = svc.HasContactsWithIdeas("u-1")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.HasContactsWithIdeas("u-2")
	require.NoError(t, err)
	assert.False(t, has, "ideas are owner-scoped through the contact")
}
