package api

// Статусы ответа proxy API
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ReadOnlyFlag значение поля "somente visualizar dados?" для режима только чтения
const ReadOnlyFlag = "1"

// LoginRequest представляет запрос на аутентификацию.
// Backend ожидает поле "senha", а не "password".
type LoginRequest struct {
	Email    string `json:"email"` // email пользователя
	Password string `json:"senha"` // пароль в открытом виде (только по TLS)
}

// UserInfo представляет данные пользователя, возвращаемые при входе
type UserInfo struct {
	Code     string `json:"codigo"`                    // код пользователя
	Name     string `json:"nome"`                      // полное имя
	Email    string `json:"email"`                     // email
	Role     string `json:"role,omitempty"`            // роль (admin, user)
	ReadOnly string `json:"somente visualizar dados?"` // "1" = только просмотр
}

// IsReadOnly проверяет флаг режима только для чтения
func (u *UserInfo) IsReadOnly() bool {
	return u.ReadOnly == ReadOnlyFlag
}

// LoginResponse представляет ответ на успешную аутентификацию
type LoginResponse struct {
	User      *UserInfo `json:"user,omitempty"`       // данные пользователя
	Status    string    `json:"status"`               // "success" или "error"
	Message   string    `json:"message"`              // сообщение сервера
	Token     string    `json:"token,omitempty"`      // bearer token (JWT)
	ExpiresIn int64     `json:"expires_in,omitempty"` // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Status  string `json:"status,omitempty"`  // всегда "error"
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
