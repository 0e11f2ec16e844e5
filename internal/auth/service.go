package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/metrics"
)

// Service authenticates requests for the inventory boundary. The inventory
// core never sees credentials; it only receives the domain.User resolved
// from a session token.
type Service interface {
	// Login verifies credentials and returns a fresh session token.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout discards the session; unknown tokens are a no-op.
	Logout(ctx context.Context, token string)
	// Authenticate resolves a session token to its user, or
	// domain.ErrSessionNotFound when the token is unknown or expired.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type service struct {
	username     string
	passwordHash []byte
	sessions     *expirable.LRU[string, domain.User]
}

// NewService creates a session-backed auth service. Sessions live in a
// bounded LRU and expire after ttl; evicted or expired tokens simply require
// a fresh login.
func NewService(username, password string, maxSessions int, ttl time.Duration) (Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &service{
		username:     username,
		passwordHash: hash,
		sessions:     expirable.NewLRU[string, domain.User](maxSessions, nil, ttl),
	}, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passMatch := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil

	if !userMatch || !passMatch {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		logger.FromContext(ctx).Warn("Login failed", "username", username)
		return "", domain.ErrInvalidCredential
	}

	token := uuid.NewString()
	s.sessions.Add(token, domain.User{
		Username:   username,
		LoggedInAt: time.Now(),
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	logger.FromContext(ctx).Info("Login succeeded", "username", username)
	return token, nil
}

func (s *service) Logout(ctx context.Context, token string) {
	s.sessions.Remove(token)
}

func (s *service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	user, ok := s.sessions.Get(token)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &user, nil
}
