package mailer

import "context"

// Recipient is one destination for a hint email.
type Recipient struct {
	ContactID   uint
	ContactName string
	Email       string
}

// HintProduct carries the product details rendered into a hint email.
type HintProduct struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	AmazonLink  string
}

// HintEmail is the full payload for a hint dispatch.
type HintEmail struct {
	Product        HintProduct
	SenderUsername string
	SenderEmail    string
	Recipients     []Recipient
}

// RecipientResult is the per-recipient outcome of a dispatch. A failed
// recipient never aborts the remaining ones.
type RecipientResult struct {
	ContactID uint
	Email     string
	Err       error
}

// WelcomeEmail is sent once after sign-up, with a signed confirm link.
type WelcomeEmail struct {
	To         string
	Username   string
	ConfirmURL string
}

// Sender is the outbound email capability consumed by the hint and user
// services.
type Sender interface {
	SendHint(ctx context.Context, email HintEmail) []RecipientResult
	SendWelcome(ctx context.Context, email WelcomeEmail) error
}
