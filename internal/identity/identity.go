package identity

import (
	"context"
	"strings"
)

// Identity аутентифицированный клиент, полученный из bearer-токена
type Identity struct {
	CustomerID int64
	UserID     string
	Name       string
	Email      string
	Roles      []string
	// Token исходный bearer-токен, пробрасывается в сервисы ресторана
	Token string
}

// HasRole true, если у клиента есть роль
func (i *Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

type ctxKey struct{}

// WithIdentity кладёт identity в контекст запроса
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достаёт identity из контекста
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok && id != nil
}

// TokenFromContext bearer-токен текущего клиента
func TokenFromContext(ctx context.Context) (string, bool) {
	id, ok := FromContext(ctx)
	if !ok || id.Token == "" {
		return "", false
	}
	return id.Token, true
}

// Provider источник текущего клиента для сценариев бронирования
type Provider interface {
	Current(ctx context.Context) (*Identity, bool)
}

// ContextProvider читает identity, которую положил auth middleware
type ContextProvider struct{}

func (ContextProvider) Current(ctx context.Context) (*Identity, bool) {
	return FromContext(ctx)
}
