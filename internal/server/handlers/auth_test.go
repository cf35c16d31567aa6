package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/internal/server/storage"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users           map[string]*models.User // email -> User
	createError     error
	getUserError    error
	updateLastLogin func(ctx context.Context, userID string, loginTime time.Time) error
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Email]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, loginTime time.Time) error {
	if m.updateLastLogin != nil {
		return m.updateLastLogin(ctx, userID, loginTime)
	}
	return nil
}

func newUserStorage(t *testing.T, readOnly bool) *mockUserStorage {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)

	return &mockUserStorage{
		users: map[string]*models.User{
			"maria@loja.com": {
				ID:           "user123",
				Code:         "42",
				Name:         "Maria Souza",
				Email:        "maria@loja.com",
				PasswordHash: string(hash),
				Role:         models.RoleUser,
				ReadOnly:     readOnly,
			},
		},
	}
}

func postLogin(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Login(w, req)
	return w
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userStorage := newUserStorage(t, false)

	var lastLogin time.Time
	userStorage.updateLastLogin = func(_ context.Context, userID string, loginTime time.Time) error {
		assert.Equal(t, "user123", userID)
		lastLogin = loginTime
		return nil
	}

	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())
	fixed := time.Now().Truncate(time.Second)
	handler.now = func() time.Time { return fixed }

	body, err := json.Marshal(api.LoginRequest{Email: "Maria@Loja.com", Password: "segredo123"})
	require.NoError(t, err)

	w := postLogin(t, handler, string(body))
	assert.Equal(t, http.StatusOK, w.Code)

	var response api.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	assert.Equal(t, api.StatusSuccess, response.Status)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, int64(3600), response.ExpiresIn)
	require.NotNil(t, response.User)
	assert.Equal(t, "42", response.User.Code)
	assert.Equal(t, "Maria Souza", response.User.Name)
	assert.False(t, response.User.IsReadOnly())
	assert.Equal(t, fixed, lastLogin)

	claims, err := ValidateAccessToken(testJWTConfig(), response.Token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "42", claims.Code)
	assert.Equal(t, fixed.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestAuthHandler_Login_ReadOnlyUser(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newUserStorage(t, true), testJWTConfig())

	w := postLogin(t, handler, `{"email":"maria@loja.com","senha":"segredo123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response api.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, api.ReadOnlyFlag, response.User.ReadOnly)

	claims, err := ValidateAccessToken(testJWTConfig(), response.Token)
	require.NoError(t, err)
	assert.True(t, claims.ReadOnly)
}

func TestAuthHandler_Login_BadRequests(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newUserStorage(t, false), testJWTConfig())

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{"email":`},
		{name: "empty email", body: `{"email":"","senha":"x"}`},
		{name: "malformed email", body: `{"email":"maria","senha":"x"}`},
		{name: "empty password", body: `{"email":"maria@loja.com","senha":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(t, handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var errResp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
			assert.Equal(t, api.StatusError, errResp.Status)
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), newUserStorage(t, false), testJWTConfig())

	tests := []struct {
		name string
		body string
	}{
		{name: "user not found", body: `{"email":"joao@loja.com","senha":"segredo123"}`},
		{name: "wrong password", body: `{"email":"maria@loja.com","senha":"errada"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(t, handler, tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var errResp api.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
			assert.Equal(t, "invalid credentials", errResp.Message)
		})
	}
}

func TestAuthHandler_Login_StorageError(t *testing.T) {
	userStorage := newUserStorage(t, false)
	userStorage.getUserError = errors.New("database is locked")

	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	w := postLogin(t, handler, `{"email":"maria@loja.com","senha":"segredo123"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_Login_UpdateLastLoginError(t *testing.T) {
	userStorage := newUserStorage(t, false)
	userStorage.updateLastLogin = func(context.Context, string, time.Time) error {
		return errors.New("update failed")
	}

	handler := NewAuthHandler(setupTestLogger(), userStorage, testJWTConfig())

	// Ошибка last_login не мешает входу
	w := postLogin(t, handler, `{"email":"maria@loja.com","senha":"segredo123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	user := &models.User{ID: "user123", Email: "maria@loja.com", Code: "42", Role: models.RoleUser}

	valid, _, err := GenerateAccessToken(cfg, user, time.Now())
	require.NoError(t, err)

	expired, _, err := GenerateAccessToken(cfg, user, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	other := JWTConfig{Secret: []byte(strings.Repeat("x", 32)), TokenTTL: time.Hour}
	foreign, _, err := GenerateAccessToken(other, user, time.Now())
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, valid)
	assert.NoError(t, err)

	_, err = ValidateAccessToken(cfg, expired)
	assert.Error(t, err)

	_, err = ValidateAccessToken(cfg, foreign)
	assert.Error(t, err)

	_, err = ValidateAccessToken(cfg, "not-a-jwt")
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo123")))

	_, err = HashPassword("")
	assert.Error(t, err)

	_, err = HashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
}
