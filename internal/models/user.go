package models

import "time"

// User представляет пользователя на сервере учета остатков
type User struct {
	CreatedAt    time.Time  `json:"created_at"`    // время создания
	LastLogin    *time.Time `json:"last_login"`    // время последнего входа
	ID           string     `json:"id"`            // UUID пользователя
	Code         string     `json:"codigo"`        // код пользователя в системе
	Name         string     `json:"nome"`          // полное имя
	Email        string     `json:"email"`         // email для входа (уникальный)
	PasswordHash string     `json:"password_hash"` // bcrypt хеш пароля
	Role         string     `json:"role"`          // роль (admin, user)
	ReadOnly     bool       `json:"read_only"`     // режим только для чтения
}

// IsAdmin проверяет, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
