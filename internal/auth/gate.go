package auth

import (
	"context"

	"github.com/portfoliohub/backend/internal/models"
)

type contextKey string

const userKey contextKey = "user"

// ContextWithUser stores the resolved identity in the request context
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the resolved identity from the request context.
// A missing identity means the request is anonymous.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// Authorize checks the resolved identity against an operation's allowed-role set.
// It is a pure function: nil on success, models.ErrUnauthenticated for an
// anonymous identity, models.ErrForbidden for a resolved identity whose role
// is not in the set. Protected operations call it before doing any work.
func Authorize(user *models.User, allowed ...models.Role) error {
	if user == nil {
		return models.ErrUnauthenticated
	}
	if !user.HasRole(allowed...) {
		return models.ErrForbidden
	}
	return nil
}
