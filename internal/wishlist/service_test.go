package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/product"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&product.Product{}, &Entry{}))

	require.NoError(t, db.Create(&product.Product{ID: 1, Name: "Axolotl Plush", Category: "Figurines / Plushies"}).Error)
	require.NoError(t, db.Create(&product.Product{ID: 2, Name: "Kalimba Thumb Piano", Category: "Music"}).Error)

	return NewService(db, product.NewRepository(db)), db
}

func TestAddAndList(t *testing.T) {
	svc, _ := testService(t)

	added, err := svc.Add("u-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Axolotl Plush", added.Name)

	products, err := svc.List("u-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint(1), products[0].ID)
}

func TestSecondAddIsRejectedAndCountStaysOne(t *testing.T) {
	svc, db := testService(t)

	_, err := svc.Add("u-1", 1)
	require.NoError(t, err)

	_, err = svc.Add("u-1", 1)
	assert.ErrorIs(t, err, ErrAlreadyInWishlist)

	var count int64
	require.NoError(t, db.Model(&Entry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConcurrentDuplicateInsertIsTranslated(t *testing.T) {
	// An insert that lands between Add's existence check and its own
	// Create hits the unique index directly; that error must translate
	// to gorm.ErrDuplicatedKey for Add to report the conflict.
	_, db := testService(t)

	require.NoError(t, db.Create(&Entry{UserID: "u-1", ProductID: 1, AddedAt: time.Now()}).Error)

	err := db.Create(&Entry{UserID: "u-1", ProductID: 1, AddedAt: time.Now()}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSameProductDifferentUsers(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Add("u-1", 1)
	require.NoError(t, err)
	_, err = svc.Add("u-2", 1)
	require.NoError(t, err, "the pair is unique, not the product")
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Add("u-1", 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRemove(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Add("u-1", 1)
	require.NoError(t, err)
	require.NoError(t, svc.Remove("u-1", 1))

	products, err := svc.List("u-1")
	require.NoError(t, err)
	assert.Empty(t, products)

	assert.NoError(t, svc.Remove("u-1", 1), "removing a missing entry is a no-op")
}
