package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/client/storage/boltdb"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func createTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "agent.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func loginOK(token string, readOnly string) *LoginClientMock {
	return &LoginClientMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
			return &api.LoginResponse{
				Status: api.StatusSuccess,
				Token:  token,
				User: &api.UserInfo{
					Code:     "42",
					Name:     "Maria",
					Email:    req.Email,
					ReadOnly: readOnly,
				},
			}, nil
		},
	}
}

func TestService_Login(t *testing.T) {
	store := createTestStore(t)
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)
	client := loginOK(token, "")

	svc := NewService(client, store, testLogger())
	ctx := context.Background()

	session, err := svc.Login(ctx, "maria@loja.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, exp.Unix(), session.ExpiresAt)
	assert.Equal(t, "Maria", session.User.Name)

	calls := client.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, api.LoginRequest{Email: "maria@loja.com", Password: "segredo"}, calls[0].Req)

	stored, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Token, stored.Token)

	got, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestService_Login_OpaqueTokenUsesExpiresIn(t *testing.T) {
	store := createTestStore(t)
	client := &LoginClientMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
			return &api.LoginResponse{
				Status:    api.StatusSuccess,
				Token:     "opaque",
				ExpiresIn: 600,
				User:      &api.UserInfo{Email: req.Email},
			}, nil
		},
	}
	svc := NewService(client, store, testLogger()).(*service)
	fixed := time.Unix(1_700_000_000, 0)
	svc.now = func() time.Time { return fixed }

	session, err := svc.Login(context.Background(), "a@b.co", "x")
	require.NoError(t, err)
	assert.Equal(t, fixed.Unix()+600, session.ExpiresAt)
	assert.Equal(t, fixed.Unix(), session.LoggedInAt)
}

func TestService_Login_Validation(t *testing.T) {
	client := &LoginClientMock{}
	svc := NewService(client, &storage.SessionStorageMock{}, testLogger())

	_, err := svc.Login(context.Background(), "not-an-email", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")

	_, err = svc.Login(context.Background(), "a@b.co", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")

	assert.Empty(t, client.LoginCalls())
}

func TestService_Login_ServerError(t *testing.T) {
	sessions := &storage.SessionStorageMock{}
	client := &LoginClientMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
			return nil, errors.New("server error (401): Credenciais inválidas.")
		},
	}
	svc := NewService(client, sessions, testLogger())

	_, err := svc.Login(context.Background(), "a@b.co", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Credenciais inválidas")
	assert.Empty(t, sessions.SaveSessionCalls())
}

func TestService_Login_SaveError(t *testing.T) {
	sessions := &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, session *storage.Session) error {
			return storage.ErrStorageClosed
		},
	}
	svc := NewService(loginOK("t", ""), sessions, testLogger())

	_, err := svc.Login(context.Background(), "a@b.co", "x")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestService_Logout(t *testing.T) {
	store := createTestStore(t)
	svc := NewService(loginOK("t", ""), store, testLogger())
	ctx := context.Background()

	err := svc.Logout(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	_, err = svc.Login(ctx, "a@b.co", "x")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Token(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestService_Token_Expired(t *testing.T) {
	store := createTestStore(t)
	token := signedToken(t, time.Now().Add(-time.Minute))
	svc := NewService(loginOK(token, ""), store, testLogger())
	ctx := context.Background()

	session, err := svc.Login(ctx, "a@b.co", "x")
	require.NoError(t, err)
	assert.True(t, session.Expired(time.Now().Unix()))

	_, err = svc.Token(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestService_Login_ReadOnlyUser(t *testing.T) {
	store := createTestStore(t)
	svc := NewService(loginOK("t", api.ReadOnlyFlag), store, testLogger())

	session, err := svc.Login(context.Background(), "a@b.co", "x")
	require.NoError(t, err)
	assert.True(t, session.User.IsReadOnly())
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)

	assert.Equal(t, exp.Unix(), tokenExpiry(signedToken(t, exp)))
	assert.Zero(t, tokenExpiry(""))
	assert.Zero(t, tokenExpiry("opaque-session-id"))

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"})
	s, err := noExp.SignedString([]byte("k"))
	require.NoError(t, err)
	assert.Zero(t, tokenExpiry(s))
}
