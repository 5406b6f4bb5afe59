package hint

import "time"

// Hint statuses. A row is pending until the mailer reports a result.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Hint is one hint email to one recipient contact.
type Hint struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	UserID    string     `gorm:"type:varchar(36);index" json:"user_id"`
	ProductID uint       `json:"product_id"`
	ContactID uint       `json:"contact_id"`
	Status    string     `gorm:"type:varchar(16)" json:"status"`
	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `json:"created_at"`
}
