package wishlist

import (
	"errors"
	"fmt"
	"time"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/product"
	"gorm.io/gorm"
)

// ErrAlreadyInWishlist is returned when the (user, product) pair exists.
var ErrAlreadyInWishlist = errors.New("already in wishlist")

// ErrProductNotFound is returned when the product id is unknown.
var ErrProductNotFound = errors.New("product not found")

// Service owns wishlist reads and writes.
type Service struct {
	db       *gorm.DB
	products *product.Repository
}

// NewService wires the wishlist service.
func NewService(db *gorm.DB, products *product.Repository) *Service {
	return &Service{db: db, products: products}
}

// Add bookmarks a product for a user. The second attempt for the same
// pair fails with ErrAlreadyInWishlist and leaves the entry count at 1.
func (s *Service) Add(userID string, productID uint) (*product.Product, error) {
	target, err := s.products.ByID(productID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrProductNotFound
	}

	var count int64
	err = s.db.Model(&Entry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("unable to check wishlist: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyInWishlist
	}

	entry := Entry{UserID: userID, ProductID: productID, AddedAt: time.Now()}
	if err := s.db.Create(&entry).Error; err != nil {
		// The unique index closes the gap between check and insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, fmt.Errorf("unable to add wishlist entry: %w", err)
	}
	return target, nil
}

// Remove deletes the entry for a pair; removing a missing entry is a
// no-op.
func (s *Service) Remove(userID string, productID uint) error {
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("unable to remove wishlist entry: %w", err)
	}
	return nil
}

// List returns the user's bookmarked products, newest first.
func (s *Service) List(userID string) ([]product.Product, error) {
	var entries []Entry
	err := s.db.Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("unable to load wishlist: %w", err)
	}

	products := make([]product.Product, 0, len(entries))
	for _, entry := range entries {
		p, err := s.products.ByID(entry.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, nil
}

// Count returns the number of entries for a (user, product) pair.
func (s *Service) Count(userID string, productID uint) (int64, error) {
	var count int64
	err := s.db.Model(&Entry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("unable to count wishlist entries: %w", err)
	}
	return count, nil
}
