package common

import "context"

// UserContext holds the verified identity extracted from the bearer token on
// an analytics request, plus the raw token itself. The token is treated as
// opaque: it is only re-forwarded to upstream services, never inspected
// beyond signature validation at the middleware boundary.
type UserContext struct {
	UserID string
	Email  string
	Token  string
}

type contextKey int

const userContextKey contextKey = iota

// WithUserContext stores a UserContext in the request context.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, uc)
}

// UserContextFromContext retrieves the UserContext from context, or nil if absent.
func UserContextFromContext(ctx context.Context) *UserContext {
	uc, _ := ctx.Value(userContextKey).(*UserContext)
	return uc
}

// ResolveUserID returns the UserID from context, or empty string when no user
// context is present.
func ResolveUserID(ctx context.Context) string {
	if uc := UserContextFromContext(ctx); uc != nil {
		return uc.UserID
	}
	return ""
}

// ResolveToken returns the raw bearer credential from context, or empty string.
func ResolveToken(ctx context.Context) string {
	if uc := UserContextFromContext(ctx); uc != nil {
		return uc.Token
	}
	return ""
}
