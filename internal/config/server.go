package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// MinJWTSecretLen is the shortest accepted HMAC secret.
const MinJWTSecretLen = 32

// Server holds the stock ledger server configuration.
type Server struct {
	HTTP      HTTPConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// AuthConfig holds token and seeding settings.
type AuthConfig struct {
	JWTSecret         string        `envconfig:"JWT_SECRET"`
	TokenTTL          time.Duration `envconfig:"JWT_TTL" default:"12h"`
	SeedAdminEmail    string        `envconfig:"SEED_ADMIN_EMAIL"`
	SeedAdminPassword string        `envconfig:"SEED_ADMIN_PASSWORD"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path         string `envconfig:"SERVER_DB_PATH" default:"./data/estoque.db"`
	SeedProducts string `envconfig:"SEED_PRODUCTS_FILE"` // JSON-массив товаров для начальной загрузки
}

// RateLimitConfig holds per-IP limits.
type RateLimitConfig struct {
	Requests      int           `envconfig:"RATE_LIMIT_REQUESTS" default:"120"`
	LoginRequests int           `envconfig:"RATE_LIMIT_LOGIN_REQUESTS" default:"10"`
	Window        time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// CORSConfig holds allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadServer reads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Validate fails fast on settings the server cannot run with.
func (s *Server) Validate() error {
	var errs []error

	if len(s.Auth.JWTSecret) < MinJWTSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLen))
	}
	if s.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if (s.Auth.SeedAdminEmail == "") != (s.Auth.SeedAdminPassword == "") {
		errs = append(errs, errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set together"))
	}
	if s.HTTP.Port <= 0 || s.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT %d is out of range", s.HTTP.Port))
	}
	if s.Database.Path == "" {
		errs = append(errs, errors.New("SERVER_DB_PATH is required"))
	}
	if s.RateLimit.Requests <= 0 || s.RateLimit.LoginRequests <= 0 || s.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS, RATE_LIMIT_LOGIN_REQUESTS and RATE_LIMIT_WINDOW must be positive"))
	}
	if err := s.Log.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Address returns the server address in host:port format.
func (h *HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
