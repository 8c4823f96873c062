package auth

import "context"

type contextKey struct{}

var userIDKey = contextKey{}

// ContextWithUserID stores the authenticated user id on the request context.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user id set by the auth
// middleware. The second return value is false for unauthenticated requests.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}
