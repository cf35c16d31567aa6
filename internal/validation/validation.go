package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern определяет допустимый формат email (упрощённая проверка)
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SKUPattern определяет допустимый формат кода товара
// Латинские буквы, цифры, точка, дефис, подчеркивание и слэш
// Длина: 1-64 символа
var SKUPattern = regexp.MustCompile(`^[a-zA-Z0-9._/-]{1,64}$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MaxPasswordLen ограничение bcrypt
	MaxPasswordLen = 72
	// MaxQuantity максимальная абсолютная величина одной корректировки
	MaxQuantity = 1_000_000
	// MaxReasonLen максимальная длина причины корректировки
	MaxReasonLen = 255
	// MaxResponsibleLen максимальная длина имени ответственного за отгрузку
	MaxResponsibleLen = 100
	// MaxShipmentItems максимальное количество позиций в одной отгрузке
	MaxShipmentItems = 200
)

// ValidateEmail проверяет email пользователя
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}

	return nil
}

// ValidatePassword проверяет пароль перед отправкой или хешированием
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}

	return nil
}

// ValidateSKU проверяет код товара
func ValidateSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return fmt.Errorf("sku cannot be empty")
	}

	if !SKUPattern.MatchString(sku) {
		return fmt.Errorf("sku can only contain letters, numbers and . _ / - (max 64 characters)")
	}

	return nil
}

// ValidateQuantity проверяет величину корректировки.
// Ноль не меняет остаток и отклоняется.
func ValidateQuantity(qty int64) error {
	if qty == 0 {
		return fmt.Errorf("quantity cannot be zero")
	}

	if qty > MaxQuantity || qty < -MaxQuantity {
		return fmt.Errorf("quantity must be within ±%d", MaxQuantity)
	}

	return nil
}

// ValidateReason проверяет длину причины корректировки
func ValidateReason(reason string) error {
	if len([]rune(reason)) > MaxReasonLen {
		return fmt.Errorf("reason must not exceed %d characters", MaxReasonLen)
	}
	return nil
}

// ValidateResponsible проверяет имя ответственного за отгрузку
func ValidateResponsible(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("responsible cannot be empty")
	}
	if len([]rune(name)) > MaxResponsibleLen {
		return fmt.Errorf("responsible must not exceed %d characters", MaxResponsibleLen)
	}
	return nil
}

// ValidateShipmentQuantity проверяет количество позиции отгрузки.
// В отличие от корректировки, количество всегда положительное.
func ValidateShipmentQuantity(qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("shipment quantity must be positive")
	}
	if qty > MaxQuantity {
		return fmt.Errorf("shipment quantity must not exceed %d", MaxQuantity)
	}
	return nil
}
