// Package seed заполняет пустую базу сервера: администратор и каталог товаров.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/internal/server/handlers"
	"github.com/iudanet/ajustaestoque/internal/server/storage"
	"github.com/iudanet/ajustaestoque/internal/validation"
)

// AdminCode код пользователя, создаваемого при старте
const AdminCode = "1"

// Admin создает администратора, если пользователя с таким email еще нет.
// Возвращает true, если пользователь был создан.
func Admin(ctx context.Context, users storage.UserStorage, email, password string, logger *slog.Logger) (bool, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return false, fmt.Errorf("invalid admin email: %w", err)
	}

	_, err := users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		logger.DebugContext(ctx, "admin already exists", slog.String("email", email))
		return false, nil
	case !errors.Is(err, storage.ErrUserNotFound):
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := handlers.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("invalid admin password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Code:         AdminCode,
		Name:         "Administrador",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	if err := users.CreateUser(ctx, user); err != nil {
		// Параллельный старт второго экземпляра
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	logger.InfoContext(ctx, "admin user created", slog.String("email", email), slog.String("user_id", user.ID))
	return true, nil
}

// Products загружает товары из JSON-файла (массив в формате products endpoint)
// и сохраняет их через UpsertProduct. Возвращает количество загруженных товаров.
func Products(ctx context.Context, products storage.StockStorage, path string, logger *slog.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read products file: %w", err)
	}

	var list []models.Product
	if err := json.Unmarshal(data, &list); err != nil {
		return 0, fmt.Errorf("failed to decode products file: %w", err)
	}

	for i := range list {
		if err := validation.ValidateSKU(list[i].Code); err != nil {
			return i, fmt.Errorf("product #%d: %w", i+1, err)
		}
		if err := products.UpsertProduct(ctx, &list[i]); err != nil {
			return i, fmt.Errorf("product %s: %w", list[i].Code, err)
		}
	}

	logger.InfoContext(ctx, "products seeded", slog.String("file", path), slog.Int("count", len(list)))
	return len(list), nil
}
