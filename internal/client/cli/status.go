package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'ajustaestoque login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to check session: %w", err)
	default:
		c.io.Println("Status: Authenticated")
		c.io.Printf("User: %s (%s)\n", session.User.Name, session.User.Email)
		if session.User.IsReadOnly() {
			c.io.Println("Access: read-only")
		}
		if session.ExpiresAt > 0 {
			expiresAt := time.Unix(session.ExpiresAt, 0)
			remaining := expiresAt.Sub(c.now())
			c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
			if remaining > 0 {
				c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
			} else {
				c.io.Println("⚠️  Token has expired. Please login again.")
			}
		}
	}

	// Получаем количество записей, ожидающих синхронизации
	pendingCount, err := c.syncService.PendingCount(ctx)
	if err != nil {
		// Не прерываем выполнение, просто сообщаем
		c.io.Printf("\nWarning: Failed to get pending count: %v\n", err)
		return nil
	}

	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("⚠️  Pending sync: %d record(s) waiting to be sent\n", pendingCount)
		c.io.Println("Run 'ajustaestoque sync' to send them now.")
	} else {
		c.io.Println("✓ No records waiting for synchronization")
	}

	return nil
}
