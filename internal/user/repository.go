package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository wraps profile persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a profile repository on the given connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new profile.
func (r *Repository) Create(profile *Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("unable to create profile: %w", err)
	}
	return nil
}

// ByEmail returns the profile for an email, or nil if none exists.
func (r *Repository) ByEmail(email string) (*Profile, error) {
	var profile Profile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to query profile by email: %w", err)
	}
	return &profile, nil
}

// ByID returns the profile for a UUID, or nil if none exists.
func (r *Repository) ByID(id string) (*Profile, error) {
	var profile Profile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to query profile by id: %w", err)
	}
	return &profile, nil
}

// UpdateFields applies a partial update to a profile row.
func (r *Repository) UpdateFields(id string, fields map[string]interface{}) error {
	if err := r.db.Model(&Profile{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("unable to update profile: %w", err)
	}
	return nil
}

// All returns every profile, for preference cache warm-up.
func (r *Repository) All() ([]Profile, error) {
	var profiles []Profile
	if err := r.db.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("unable to read profiles: %w", err)
	}
	return profiles, nil
}

// AllIDs returns every profile UUID, for cache warm-up.
func (r *Repository) AllIDs() ([]string, error) {
	var profiles []Profile
	if err := r.db.Select("id").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("unable to read profile IDs: %w", err)
	}
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids, nil
}
