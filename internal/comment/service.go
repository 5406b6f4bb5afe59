package comment

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrEmptyText is returned when the comment body is blank.
var ErrEmptyText = errors.New("comment text is required")

// ErrNotOwner is returned when a user tries to delete someone else's comment.
var ErrNotOwner = errors.New("comment belongs to another user")

// ErrNotFound is returned when the comment does not exist.
var ErrNotFound = errors.New("comment not found")

// Service owns product comments.
type Service struct {
	db *gorm.DB
}

// NewService wires the comment service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a comment on a product.
func (s *Service) Create(productID uint, authorID, authorName, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	comment := Comment{
		ProductID: productID,
		AuthorID:  authorID,
		Author:    authorName,
		Text:      text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("unable to create comment: %w", err)
	}
	return &comment, nil
}

// ListByProduct returns a product's comments, newest first.
func (s *Service) ListByProduct(productID uint) ([]Comment, error) {
	var comments []Comment
	err := s.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("unable to load comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment. Only the author may delete it.
func (s *Service) Delete(commentID uint, userID string) error {
	var comment Comment
	err := s.db.First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("unable to load comment: %w", err)
	}
	if comment.AuthorID != userID {
		return ErrNotOwner
	}
	if err := s.db.Delete(&comment).Error; err != nil {
		return fmt.Errorf("unable to delete comment: %w", err)
	}
	return nil
}
