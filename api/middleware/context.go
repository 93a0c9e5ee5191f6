package middleware

import "context"

type contextKey string

const (
	ctxUserID  contextKey = "user_id"
	ctxIsAdmin contextKey = "is_admin"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func IsAdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxIsAdmin).(bool); ok {
		return v
	}
	return false
}

// WithIdentity injects the verified identity into the context. Exposed for
// handler tests that bypass the Auth middleware.
func WithIdentity(ctx context.Context, userID string, isAdmin bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, userID)
	return context.WithValue(ctx, ctxIsAdmin, isAdmin)
}
