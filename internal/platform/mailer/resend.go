package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/config"
)

const defaultResendURL = "https://api.resend.com/emails"

// ResendMailer sends email through the Resend REST API.
type ResendMailer struct {
	apiKey     string
	from       string
	appURL     string
	apiURL     string
	httpClient *http.Client
}

// NewResendMailer builds a mailer from configuration.
func NewResendMailer(cfg config.MailConfig) *ResendMailer {
	return &ResendMailer{
		apiKey: cfg.ResendAPIKey,
		from:   cfg.From,
		appURL: cfg.AppURL,
		apiURL: defaultResendURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}

// SendHint delivers one email per recipient and records each outcome
// individually.
func (m *ResendMailer) SendHint(ctx context.Context, email HintEmail) []RecipientResult {
	results := make([]RecipientResult, 0, len(email.Recipients))

	for _, recipient := range email.Recipients {
		name := recipient.ContactName
		if name == "" {
			name = "there"
		}
		subject := fmt.Sprintf("A Hint from %s on WyshDrop: Check out %q!", email.SenderUsername, email.Product.Name)
		body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your friend %s (%s) thought you might be interested in this product on WyshDrop:</p>
<h2>%s</h2>
<p>%s</p>
<p>Price: $%.2f</p>
<p><a href="%s">View Product on Amazon</a></p>
<p>Or view it on WyshDrop: <a href="%s/product/%d">%s</a></p>
<p>Happy Gifting!</p>
<p>The WyshDrop Team</p>`,
			name,
			email.SenderUsername, email.SenderEmail,
			email.Product.Name,
			email.Product.Description,
			email.Product.Price,
			email.Product.AmazonLink,
			m.appURL, email.Product.ID, email.Product.Name,
		)

		err := m.deliver(ctx, resendPayload{
			From:    m.from,
			To:      recipient.Email,
			Subject: subject,
			HTML:    body,
		})
		results = append(results, RecipientResult{
			ContactID: recipient.ContactID,
			Email:     recipient.Email,
			Err:       err,
		})
	}

	return results
}

// SendWelcome delivers the post-signup welcome email.
func (m *ResendMailer) SendWelcome(ctx context.Context, email WelcomeEmail) error {
	body := fmt.Sprintf(`Hi and Welcome %s,

Thank you for signing up! Your support means a lot to our growing business, and we're excited to have you with us.

Our website is designed to help make gift-giving easier and more thoughtful. Whether you're discovering new products, finding gifts for friends, or sending a hint to someone special, we're here to make every step simple and personalized.

Confirm your email address: %s

If you have any questions, please reach out to us at lydiaandcrim@gmail.com.

Warmly,
The Wyshdrop Team`, email.Username, email.ConfirmURL)

	return m.deliver(ctx, resendPayload{
		From:    m.from,
		To:      email.To,
		Subject: "Welcome to Wyshdrop 🎁",
		Text:    body,
	})
}

func (m *ResendMailer) deliver(ctx context.Context, payload resendPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mailer: unable to serialize payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("mailer: unable to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailer: provider returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
