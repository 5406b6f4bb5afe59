package contact

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrMissingFields is returned when name or email is blank.
var ErrMissingFields = errors.New("contact name and email are required")

// ErrNotFound is returned when the contact does not exist for the owner.
var ErrNotFound = errors.New("contact not found")

// Service owns gifting-contact reads and writes.
type Service struct {
	db *gorm.DB
}

// NewService wires the contact service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a new contact for the owner.
func (s *Service) Create(userID, name, email string) (*Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	contact := Contact{UserID: userID, Name: name, Email: email}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("unable to create contact: %w", err)
	}
	return &contact, nil
}

// List returns the owner's contacts, oldest first.
func (s *Service) List(userID string) ([]Contact, error) {
	var contacts []Contact
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("unable to load contacts: %w", err)
	}
	return contacts, nil
}

// ByIDs returns the owner's contacts matching the given ids. Ids owned
// by someone else are silently dropped.
func (s *Service) ByIDs(userID string, ids []uint) ([]Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var contacts []Contact
	err := s.db.Where("user_id = ? AND id IN ?", userID, ids).
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("unable to load contacts: %w", err)
	}
	return contacts, nil
}

// Delete removes an owner's contact.
func (s *Service) Delete(userID string, id uint) error {
	result := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&Contact{})
	if result.Error != nil {
		return fmt.Errorf("unable to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasContactsWithIdeas reports whether any of the owner's contacts has a
// generated gift idea attached. The recommended-access policy consults
// this together with the profile's has_taken_quiz flag.
func (s *Service) HasContactsWithIdeas(userID string) (bool, error) {
	var count int64
	err := s.db.Table("contacts").
		Joins("JOIN gift_ideas ON gift_ideas.contact_id = contacts.id").
		Where("contacts.user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("unable to check contact ideas: %w", err)
	}
	return count > 0, nil
}
