package handlers

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// setupTestLogger создает логгер для тестов
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:   []byte(strings.Repeat("k", 32)),
		TokenTTL: time.Hour,
	}
}
