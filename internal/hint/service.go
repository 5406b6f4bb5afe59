package hint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/contact"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/mailer"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/metrics"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/product"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
)

// ErrNoRecipients is returned when the dispatch has no valid contacts.
var ErrNoRecipients = errors.New("at least one recipient is required")

// ErrProductNotFound is returned when the hinted product is unknown.
var ErrProductNotFound = errors.New("product not found")

// RecipientOutcome is the per-recipient result returned to the caller.
type RecipientOutcome struct {
	ContactID uint   `json:"contact_id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Service dispatches hint emails and keeps their history.
type Service struct {
	db       *gorm.DB
	products *product.Repository
	contacts *contact.Service
	mail     mailer.Sender
	log      *logrus.Logger
}

// NewService wires the hint service.
func NewService(db *gorm.DB, products *product.Repository, contacts *contact.Service, mail mailer.Sender, log *logrus.Logger) *Service {
	return &Service{db: db, products: products, contacts: contacts, mail: mail, log: log}
}

// Dispatch sends a hint about a product to the user's chosen contacts.
// Rows start pending and move to sent or failed per recipient; one
// failed recipient does not fail the dispatch.
func (s *Service) Dispatch(ctx context.Context, session *user.Session, productID uint, contactIDs []uint) ([]RecipientOutcome, error) {
	target, err := s.products.ByID(productID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrProductNotFound
	}

	recipients, err := s.contacts.ByIDs(session.UserID, contactIDs)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	rows := make(map[uint]*Hint, len(recipients))
	emailRecipients := make([]mailer.Recipient, 0, len(recipients))
	for _, rec := range recipients {
		row := &Hint{
			UserID:    session.UserID,
			ProductID: productID,
			ContactID: rec.ID,
			Status:    StatusPending,
		}
		if err := s.db.Create(row).Error; err != nil {
			return nil, fmt.Errorf("unable to record hint: %w", err)
		}
		rows[rec.ID] = row
		emailRecipients = append(emailRecipients, mailer.Recipient{
			ContactID:   rec.ID,
			ContactName: rec.Name,
			Email:       rec.Email,
		})
	}

	results := s.mail.SendHint(ctx, mailer.HintEmail{
		Product: mailer.HintProduct{
			ID:          target.ID,
			Name:        target.Name,
			Description: target.Description,
			Price:       target.Price,
			AmazonLink:  target.AmazonLink,
		},
		SenderUsername: session.Username,
		SenderEmail:    session.Email,
		Recipients:     emailRecipients,
	})

	outcomes := make([]RecipientOutcome, 0, len(results))
	now := time.Now()
	for _, res := range results {
		row := rows[res.ContactID]
		outcome := RecipientOutcome{ContactID: res.ContactID, Email: res.Email}
		if res.Err != nil {
			outcome.Status = StatusFailed
			outcome.Error = res.Err.Error()
			metrics.HintsSent.WithLabelValues(StatusFailed).Inc()
			s.log.WithFields(logrus.Fields{
				"user":    session.UserID,
				"contact": res.ContactID,
			}).WithError(res.Err).Warn("hint delivery failed")
		} else {
			outcome.Status = StatusSent
			metrics.HintsSent.WithLabelValues(StatusSent).Inc()
		}

		if row != nil {
			updates := map[string]interface{}{"status": outcome.Status}
			if outcome.Status == StatusSent {
				updates["sent_at"] = now
			}
			if err := s.db.Model(row).Updates(updates).Error; err != nil {
				s.log.WithError(err).Error("unable to update hint status")
			}
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// History lists the user's hints, newest first.
func (s *Service) History(userID string) ([]Hint, error) {
	var hints []Hint
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&hints).Error
	if err != nil {
		return nil, fmt.Errorf("unable to load hint history: %w", err)
	}
	return hints, nil
}
