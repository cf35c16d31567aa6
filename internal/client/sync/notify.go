package sync

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/ajustaestoque/internal/client/iocli"
)

const (
	// NotificationTitle is shown after a successful drain
	NotificationTitle = "Sincronização Concluída!"
	// NotificationIcon is attached to the completion notification
	NotificationIcon = "https://img.icons8.com/ios-filled/100/000000/cloud-checked.png"
)

// Notification is a user-visible message
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// CompletionNotification builds the message for n delivered adjustments
func CompletionNotification(n int) Notification {
	return Notification{
		Title: NotificationTitle,
		Body:  fmt.Sprintf("Seus %d ajustes de estoque feitos offline foram salvos no sistema.", n),
		Icon:  NotificationIcon,
	}
}

//go:generate moq -out notifier_mock.go . Notifier

// Notifier shows a notification to the user
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n Notification) error

// Notify calls f(ctx, n)
func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// ConsoleNotifier prints notifications to the terminal
type ConsoleNotifier struct {
	io iocli.IO
}

// NewConsoleNotifier creates a notifier writing through io
func NewConsoleNotifier(io iocli.IO) *ConsoleNotifier {
	return &ConsoleNotifier{io: io}
}

// Notify prints the title underlined and the body
func (c *ConsoleNotifier) Notify(_ context.Context, n Notification) error {
	c.io.Println(n.Title)
	c.io.Println(strings.Repeat("=", len([]rune(n.Title))))
	c.io.Println(n.Body)
	return nil
}

// LogNotifier writes notifications to a structured log
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier for headless runs
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs n at info level
func (l *LogNotifier) Notify(ctx context.Context, n Notification) error {
	l.logger.InfoContext(ctx, "Notification", "title", n.Title, "body", n.Body, "icon", n.Icon)
	return nil
}
