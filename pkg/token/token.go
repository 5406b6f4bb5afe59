package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
)

// secretKey holds the 32-byte key generated at server start.
var secretKey []byte

// ConfirmPayload is the data signed into an email confirmation link.
// It is serialized into the welcome email and posted back by the client
// when the user confirms their address.
type ConfirmPayload struct {
	UserID string `json:"u"`
	Email  string `json:"e"`
}

// GenerateSecretKey generates a cryptographically secure 32-byte key.
// Signatures do not survive a restart; unconfirmed users just get a
// fresh link on their next sign-in.
func GenerateSecretKey() {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("token: unable to generate secret key: " + err.Error())
	}
	secretKey = key
}

// SignConfirmation returns the base64 HMAC-SHA256 signature for a payload.
func SignConfirmation(payload ConfirmPayload) (string, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", errors.New("token: unable to serialize payload")
	}

	mac := hmac.New(sha256.New, secretKey)
	mac.Write(payloadBytes)
	signature := mac.Sum(nil)

	return base64.RawURLEncoding.EncodeToString(signature), nil
}

// ValidateConfirmation reports whether a payload and signature match.
func ValidateConfirmation(payload ConfirmPayload, signatureB64 string) bool {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secretKey)
	mac.Write(payloadBytes)
	expected := mac.Sum(nil)

	actual, err := base64.RawURLEncoding.DecodeString(signatureB64)
	if err != nil {
		return false
	}

	// Constant-time comparison.
	return hmac.Equal(expected, actual)
}
