package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
	"github.com/iudanet/ajustaestoque/internal/client/auth"
	"github.com/iudanet/ajustaestoque/internal/client/iocli"
	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/client/sync"
	"github.com/iudanet/ajustaestoque/pkg/api"
)

var testNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

// newTestIO собирает весь вывод в буфер и отдаёт ввод построчно
func newTestIO(inputs ...string) (*iocli.IOMock, *bytes.Buffer) {
	var out bytes.Buffer
	next := 0
	read := func(prompt string) (string, error) {
		out.WriteString(prompt)
		if next >= len(inputs) {
			return "", errors.New("no more input")
		}
		s := inputs[next]
		next++
		return s, nil
	}
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.WriteString(joinArgs(a) + "\n")
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
		ReadInputFunc:    read,
		ReadPasswordFunc: read,
	}, &out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testSession(readOnly bool) *storage.Session {
	s := &storage.Session{
		User: api.UserInfo{
			Code:  "42",
			Name:  "Maria",
			Email: "maria@loja.com",
		},
		Token:     "jwt-token",
		ExpiresAt: testNow.Add(time.Hour).Unix(),
	}
	if readOnly {
		s.User.ReadOnly = api.ReadOnlyFlag
	}
	return s
}

func sessionAuth(session *storage.Session) *auth.ServiceMock {
	return &auth.ServiceMock{
		SessionFunc: func(ctx context.Context) (*storage.Session, error) {
			if session == nil {
				return nil, fmt.Errorf("failed to get session: %w", storage.ErrSessionNotFound)
			}
			return session, nil
		},
	}
}

func newTestCli(io iocli.IO, apiClient httpClient.ClientAPI, authService auth.Service, syncService sync.Service, pending storage.PendingStorage, agent Agent) *Cli {
	// boltdb.Storage хранит обе очереди
	shipments, _ := pending.(storage.ShipmentStorage)
	c := New(io, apiClient, authService, syncService, pending, shipments, agent, testLogger())
	c.now = func() time.Time { return testNow }
	c.newID = func() string { return "adj-1" }
	return c
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	io, _ := newTestIO()
	c := newTestCli(io, nil, nil, nil, nil, nil)

	err := c.Run(context.Background(), "register", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCli_Run_Help(t *testing.T) {
	io, out := newTestIO()
	c := newTestCli(io, nil, nil, nil, nil, nil)

	require.NoError(t, c.Run(context.Background(), "help", nil))
	assert.Contains(t, out.String(), "adjust [--offline] SKU QTY [REASON]")
	assert.Contains(t, out.String(), "serve")
	assert.Contains(t, out.String(), "produto CODE|TEXT")
	assert.Contains(t, out.String(), "saida [--offline]")
}

func TestCli_Run_Serve(t *testing.T) {
	io, _ := newTestIO()
	agent := &AgentMock{
		ServeFunc: func(ctx context.Context) error { return nil },
	}
	c := newTestCli(io, nil, nil, nil, nil, agent)

	require.NoError(t, c.Run(context.Background(), "serve", nil))
	assert.Len(t, agent.ServeCalls(), 1)
}

func TestCli_runInstallAssets(t *testing.T) {
	io, out := newTestIO()
	agent := &AgentMock{
		InstallAssetsFunc: func(ctx context.Context) error { return nil },
	}
	c := newTestCli(io, nil, nil, nil, nil, agent)

	require.NoError(t, c.Run(context.Background(), "install-assets", nil))
	assert.Contains(t, out.String(), "cached for offline use")

	agent.InstallAssetsFunc = func(ctx context.Context) error { return errors.New("404") }
	err := c.Run(context.Background(), "install-assets", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to install assets")
}

func TestCli_runLogin(t *testing.T) {
	io, out := newTestIO("maria@loja.com", "segredo")
	authMock := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, email, password string) (*storage.Session, error) {
			return testSession(true), nil
		},
	}
	c := newTestCli(io, nil, authMock, nil, nil, nil)

	require.NoError(t, c.Run(context.Background(), "login", nil))

	calls := authMock.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "maria@loja.com", calls[0].Email)
	assert.Equal(t, "segredo", calls[0].Password)

	output := out.String()
	assert.Contains(t, output, "Login successful")
	assert.Contains(t, output, "Maria (maria@loja.com)")
	assert.Contains(t, output, "Read-only access")
}

func TestCli_runLogin_EmailFlagAndEnvPassword(t *testing.T) {
	t.Setenv(PasswordEnv, "from-env")
	io, _ := newTestIO()
	authMock := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, email, password string) (*storage.Session, error) {
			return testSession(false), nil
		},
	}
	c := newTestCli(io, nil, authMock, nil, nil, nil)

	require.NoError(t, c.Run(context.Background(), "login", []string{"--email", "joao@loja.com"}))

	calls := authMock.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "joao@loja.com", calls[0].Email)
	assert.Equal(t, "from-env", calls[0].Password)
	assert.Empty(t, io.ReadInputCalls())
	assert.Empty(t, io.ReadPasswordCalls())
}

func TestCli_runLogin_Failure(t *testing.T) {
	io, _ := newTestIO("maria@loja.com", "errada")
	authMock := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, email, password string) (*storage.Session, error) {
			return nil, errors.New("login failed: server error (401): Credenciais inválidas.")
		},
	}
	c := newTestCli(io, nil, authMock, nil, nil, nil)

	err := c.Run(context.Background(), "login", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Credenciais inválidas")
}

func TestCli_runLogout(t *testing.T) {
	io, out := newTestIO()
	authMock := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	syncMock := &sync.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 2, nil },
	}
	c := newTestCli(io, nil, authMock, syncMock, nil, nil)

	require.NoError(t, c.Run(context.Background(), "logout", nil))
	assert.Contains(t, out.String(), "Logged out")
	assert.Contains(t, out.String(), "2 record(s) are still queued")
}

func TestCli_runStatus(t *testing.T) {
	tests := []struct {
		name     string
		session  *storage.Session
		pending  int
		contains []string
	}{
		{
			name:     "not authenticated",
			session:  nil,
			pending:  0,
			contains: []string{"Not authenticated", "No records waiting"},
		},
		{
			name:     "authenticated with pending",
			session:  testSession(false),
			pending:  3,
			contains: []string{"Status: Authenticated", "Maria", "Time remaining: 1h0m0s", "Pending sync: 3"},
		},
		{
			name: "expired read-only",
			session: func() *storage.Session {
				s := testSession(true)
				s.ExpiresAt = testNow.Add(-time.Minute).Unix()
				return s
			}(),
			contains: []string{"Access: read-only", "Token has expired"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io, out := newTestIO()
			syncMock := &sync.ServiceMock{
				PendingCountFunc: func(ctx context.Context) (int, error) { return tt.pending, nil },
			}
			c := newTestCli(io, nil, sessionAuth(tt.session), syncMock, nil, nil)

			require.NoError(t, c.Run(context.Background(), "status", nil))
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestCli_runStatus_PendingCountError(t *testing.T) {
	io, out := newTestIO()
	syncMock := &sync.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 0, storage.ErrStorageClosed },
	}
	c := newTestCli(io, nil, sessionAuth(nil), syncMock, nil, nil)

	require.NoError(t, c.Run(context.Background(), "status", nil))
	assert.Contains(t, out.String(), "Warning: Failed to get pending count")
}

// joinArgs объединяет аргументы в строку с пробелами (упрощённый Println)
func joinArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, fmt.Sprintf("%v", a))
	}
	return strings.Join(parts, " ")
}
