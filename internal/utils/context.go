package utils

import (
	"context"
)

type contextKey string

const (
	ContextUserIDKey contextKey = "userID"
	ContextTokenKey  contextKey = "token"
)

// WithAuth returns a child context carrying the caller's resolved user id
// and bearer token. The auth middleware attaches these per request; they
// never live in package-level state.
func WithAuth(ctx context.Context, userID, token string) context.Context {
	ctx = context.WithValue(ctx, ContextUserIDKey, userID)
	return context.WithValue(ctx, ContextTokenKey, token)
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextUserIDKey).(string)
	return userID, ok
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ContextTokenKey).(string)
	return token, ok
}
