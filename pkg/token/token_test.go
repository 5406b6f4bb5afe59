package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndValidate(t *testing.T) {
	GenerateSecretKey()

	payload := ConfirmPayload{UserID: "u-1", Email: "lydia@example.com"}
	sig, err := SignConfirmation(payload)
	require.NoError(t, err)
	require.NotEmpty(t, sig)

	assert.True(t, ValidateConfirmation(payload, sig))
	assert.False(t, ValidateConfirmation(ConfirmPayload{UserID: "u-2", Email: "lydia@example.com"}, sig))
	assert.False(t, ValidateConfirmation(payload, "not-base64!!"))
}

func TestSignaturesChangeWithKey(t *testing.T) {
	GenerateSecretKey()
	payload := ConfirmPayload{UserID: "u-1", Email: "lydia@example.com"}
	first, err := SignConfirmation(payload)
	require.NoError(t, err)

	GenerateSecretKey()
	assert.False(t, ValidateConfirmation(payload, first), "a restart invalidates old links")
}
