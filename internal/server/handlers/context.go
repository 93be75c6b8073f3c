package handlers

import (
	"context"

	"github.com/vulnlab/accesslab/internal/server/token"
)

// contextKey — типизированный ключ контекста
type contextKey int

// claimsKey хранит claims аутентифицированного вызывающего
const claimsKey contextKey = iota

// WithClaims кладет разобранные claims в контекст запроса.
func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext достает claims вызывающего из контекста.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}
