package auth

import (
	"context"

	"github.com/frahmantamala/legaltech-workflows/internal/user"
)

type ctxKey string

const contextUserKey ctxKey = "currentUser"

// ContextWithUser stores the authenticated user in the request context.
func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}

// UserFromContext returns the user attached by the auth middleware.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(contextUserKey).(*user.User)
	return u, ok && u != nil
}
