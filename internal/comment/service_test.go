package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Comment{}))
	return NewService(db)
}

func TestCreateRequiresText(t *testing.T) {
	svc := testService(t)

	_, err := svc.Create(1, "u-1", "lydia", "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	created, err := svc.Create(1, "u-1", "lydia", "  lovely gift  ")
	require.NoError(t, err)
	assert.Equal(t, "lovely gift", created.Text)
	assert.Equal(t, "lydia", created.Author)
}

func TestListByProductNewestFirst(t *testing.T) {
	svc := testService(t)

	first, err := svc.Create(1, "u-1", "lydia", "first")
	require.NoError(t, err)
	_, err = svc.Create(2, "u-1", "lydia", "other product")
	require.NoError(t, err)

	comments, err := svc.ListByProduct(1)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, first.ID, comments[0].ID)
}

func TestOnlyAuthorMayDelete(t *testing.T) {
	svc := testService(t)

	created, err := svc.Create(1, "u-1", "lydia", "mine")
	require.NoError(t, err)

	err = svc.Delete(created.ID, "u-2")
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.Delete(created.ID, "u-1"))

	err = svc.Delete(created.ID, "u-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
