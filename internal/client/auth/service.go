package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/validation"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

// ErrSessionExpired indicates that the stored token is past its expiry
var ErrSessionExpired = errors.New("session expired, please login again")

//go:generate moq -out login_client_mock.go . LoginClient

// LoginClient is the part of the API client used for authentication
type LoginClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
}

var _ LoginClient = (*httpClient.Client)(nil)

type service struct {
	apiClient LoginClient
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис сессий
func NewService(apiClient LoginClient, sessions storage.SessionStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// Login выполняет аутентификацию пользователя
func (s *service) Login(ctx context.Context, email, password string) (*storage.Session, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.User == nil {
		return nil, fmt.Errorf("login failed: response has no user")
	}

	now := s.now()
	session := &storage.Session{
		User:       *resp.User,
		Token:      resp.Token,
		LoggedInAt: now.Unix(),
		ExpiresAt:  tokenExpiry(resp.Token),
	}
	// сервер может сообщить срок жизни явно
	if session.ExpiresAt == 0 && resp.ExpiresIn > 0 {
		session.ExpiresAt = now.Unix() + resp.ExpiresIn
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("User logged in",
		"email", session.User.Email,
		"read_only", session.User.IsReadOnly(),
		"expires_at", session.ExpiresAt,
	)
	return session, nil
}

// Logout удаляет локальные данные сессии
func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.Info("User logged out")
	return nil
}

// Session возвращает сохранённую сессию
func (s *service) Session(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// Token возвращает токен для запросов к API
func (s *service) Token(ctx context.Context) (string, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	if session.Expired(s.now().Unix()) {
		return "", ErrSessionExpired
	}
	return session.Token, nil
}

// tokenExpiry извлекает exp из JWT без проверки подписи.
// Подпись проверяет сервер; клиенту нужен только срок жизни.
// Для токенов другого формата возвращает 0.
func tokenExpiry(token string) int64 {
	if token == "" {
		return 0
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return exp.Unix()
}
