package auth

import (
	"context"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the session operations of the agent.
// The session is stored locally so queued adjustments can be submitted
// with the user's token after the app is closed.
type Service interface {
	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, email, password string) (*storage.Session, error)

	// Logout удаляет локальную сессию
	Logout(ctx context.Context) error

	// Session возвращает текущую сессию
	// Returns storage.ErrSessionNotFound if nobody is logged in
	Session(ctx context.Context) (*storage.Session, error)

	// Token возвращает bearer token текущей сессии
	// Returns ErrSessionExpired if the token is past its expiry
	Token(ctx context.Context) (string, error)
}
