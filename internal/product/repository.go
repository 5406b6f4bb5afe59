package product

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const sectionLimit = 10

// Repository wraps catalog queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository on the given connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Trending returns the newest products in the Trending category.
func (r *Repository) Trending() ([]Product, error) {
	var products []Product
	err := r.db.Where("category = ?", "Trending").
		Order("created_at DESC").
		Limit(sectionLimit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("unable to query trending products: %w", err)
	}
	return products, nil
}

// TopRated returns the highest-rated products, used for the popular and
// recommended sections.
func (r *Repository) TopRated() ([]Product, error) {
	var products []Product
	err := r.db.Order("rating DESC").
		Limit(sectionLimit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("unable to query top-rated products: %w", err)
	}
	return products, nil
}

// ByCategory returns products in a main category.
func (r *Repository) ByCategory(category string) ([]Product, error) {
	var products []Product
	err := r.db.Where("category = ?", category).
		Limit(sectionLimit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("unable to query products by category: %w", err)
	}
	return products, nil
}

// BySubcategory returns products in a subcategory.
func (r *Repository) BySubcategory(subcategory string) ([]Product, error) {
	var products []Product
	err := r.db.Where("subcategory = ?", subcategory).
		Limit(sectionLimit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("unable to query products by subcategory: %w", err)
	}
	return products, nil
}

// Search matches product names case-insensitively.
func (r *Repository) Search(query string) ([]Product, error) {
	var products []Product
	err := r.db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscape(query)+"%").
		Limit(50).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("unable to search products: %w", err)
	}
	return products, nil
}

// ByID returns one product, or nil when it does not exist.
func (r *Repository) ByID(id uint) (*Product, error) {
	var product Product
	err := r.db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to query product by id: %w", err)
	}
	return &product, nil
}

// Count returns the catalog size, used to decide whether to seed.
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("unable to count products: %w", err)
	}
	return count, nil
}

// CreateBatch inserts seed rows.
func (r *Repository) CreateBatch(products []Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.Create(&products).Error; err != nil {
		return fmt.Errorf("unable to insert seed products: %w", err)
	}
	return nil
}

func likeEscape(s string) string {
	s = strings.ToLower(s)
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
