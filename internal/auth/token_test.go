package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kampusadmin/dashboard-api/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "dashboard-api", time.Hour)

	token, err := tm.Generate(&models.User{ID: 42, Email: "a@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", "dashboard-api", -time.Minute)

	token, err := tm.Generate(&models.User{ID: 7})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", "dashboard-api", time.Hour)
	verifier := NewTokenManager("secret-b", "dashboard-api", time.Hour)

	token, err := issuer.Generate(&models.User{ID: 7})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", "dashboard-api", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
