package storage

import (
	"context"

	"github.com/iudanet/ajustaestoque/pkg/api"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the logged-in session on client
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	// Returns ErrSessionNotFound if nobody is logged in
	DeleteSession(ctx context.Context) error
}

// Session represents the logged-in user on this device
type Session struct {
	User       api.UserInfo `json:"user"`
	Token      string       `json:"token"`
	ExpiresAt  int64        `json:"expires_at"` // unix seconds, 0 = unknown
	LoggedInAt int64        `json:"logged_in_at"`
}

// Expired reports whether the session token is past its expiry at unix time now
func (s *Session) Expired(now int64) bool {
	return s.ExpiresAt > 0 && now >= s.ExpiresAt
}
