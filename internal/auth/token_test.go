package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts, err := NewTokenService("secret")
	require.NoError(t, err)

	tok, err := ts.Issue("user-1")
	require.NoError(t, err)

	id, err := ts.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestTokenVerifyRejects(t *testing.T) {
	ts, err := NewTokenService("secret")
	require.NoError(t, err)
	other, err := NewTokenService("other-secret")
	require.NoError(t, err)

	foreign, err := other.Issue("user-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"foreign signature", foreign, ErrInvalidToken},
		{"garbage", "not-a-token", ErrInvalidToken},
		{"empty", "", ErrInvalidToken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ts.Verify(tc.token)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTokenExpired(t *testing.T) {
	ts, err := NewTokenService("secret")
	require.NoError(t, err)
	issuedAt := time.Now().Add(-2 * time.Hour)
	ts.now = func() time.Time { return issuedAt }

	tok, err := ts.Issue("user-1")
	require.NoError(t, err)

	ts.now = time.Now
	_, err = ts.Verify(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenStillValidBeforeTTL(t *testing.T) {
	ts, err := NewTokenService("secret")
	require.NoError(t, err)
	base := time.Now()
	ts.now = func() time.Time { return base }

	tok, err := ts.Issue("user-1")
	require.NoError(t, err)

	ts.now = func() time.Time { return base.Add(TokenTTL - time.Minute) }
	_, err = ts.Verify(tok)
	assert.NoError(t, err)
}

func TestNewTokenServiceEmptySecret(t *testing.T) {
	_, err := NewTokenService("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
