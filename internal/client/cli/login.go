package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// PasswordEnv позволяет передать пароль без интерактивного ввода
const PasswordEnv = "AJUSTA_PASSWORD"

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "User email")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	if *email == "" {
		input, err := c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		*email = input
	}

	password := os.Getenv(PasswordEnv)
	if password == "" {
		input, err := c.io.ReadPassword("Senha: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = input
	}

	c.io.Println("Authenticating...")

	session, err := c.authService.Login(ctx, *email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("User:  %s (%s)\n", session.User.Name, session.User.Email)
	if session.ExpiresAt > 0 {
		c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}
	if session.User.IsReadOnly() {
		c.io.Println("⚠️  Read-only access: adjustments are disabled for this user.")
	}

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out")

	count, err := c.syncService.PendingCount(ctx)
	if err == nil && count > 0 {
		c.io.Printf("⚠️  %d record(s) are still queued and will be sent after the next login.\n", count)
	}
	return nil
}
