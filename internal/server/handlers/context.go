package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// ClaimsKey ключ для хранения claims аутентифицированного пользователя
const ClaimsKey contextKey = "claims"

// WithClaims добавляет claims в контекст запроса
func WithClaims(ctx context.Context, claims *CustomClaims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaims извлекает claims из контекста запроса
func GetClaims(ctx context.Context) (*CustomClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*CustomClaims)
	return claims, ok && claims != nil
}
