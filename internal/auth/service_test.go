package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

func newTestAuth(t *testing.T) Service {
	t.Helper()
	svc, err := NewService("admin", "secret", 16, time.Hour)
	require.NoError(t, err)
	return svc
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.False(t, user.LoggedInAt.IsZero())
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "intruder", "secret"},
		{"both wrong", "intruder", "nope"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, domain.ErrInvalidCredential)
		})
	}
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.Authenticate(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLogout(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	svc.Logout(ctx, token)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// logging out twice is harmless
	svc.Logout(ctx, token)
}

func TestSessionExpiry(t *testing.T) {
	svc, err := NewService("admin", "secret", 16, 50*time.Millisecond)
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestUserContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := UserFromContext(ctx)
	assert.False(t, ok)

	ctx = WithUser(ctx, domain.User{Username: "admin"})
	user, ok := UserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "admin", user.Username)
}
