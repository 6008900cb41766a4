package auth

import "context"

type contextKey string

const isAdminKey contextKey = "is_admin"

// WithAdmin marks the request context as carrying a valid admin credential.
func WithAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// IsAdminFromContext reports whether the request carried a valid admin
// credential. Returns false when not set.
func IsAdminFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(isAdminKey).(bool)
	return v
}
