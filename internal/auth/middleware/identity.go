// Package middleware resolves request identity from bearer tokens or session cookies
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/models"
)

// SessionCookieName is the cookie carrying the browser session ID
const SessionCookieName = "session_id"

// TokenVerifier validates bearer tokens and extracts the user ID
type TokenVerifier interface {
	Verify(tokenString string) (int, error)
}

// UserFinder retrieves users by ID for token-based identity resolution
type UserFinder interface {
	GetByID(ctx context.Context, userID int) (*models.User, error)
}

// SessionAuthenticator resolves a session cookie to its user
type SessionAuthenticator interface {
	CurrentUser(ctx context.Context, sessionID string) (*models.User, error)
}

// AuthFailureRecorder counts rejected bearer authentications by reason
type AuthFailureRecorder interface {
	RecordAuthFailure(reason string)
}

// Identity resolves the request identity and stores it in the context.
//
// A bearer token in the Authorization header wins over a session cookie.
// An explicitly presented but invalid token is rejected here with the
// token-specific reason; an absent or stale session cookie falls through to
// anonymous so public pages keep working for logged-out browsers. Role
// enforcement itself happens in the handlers via auth.Authorize.
func Identity(verifier TokenVerifier, users UserFinder, sessions SessionAuthenticator, failures AuthFailureRecorder, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				user, err := resolveBearer(r.Context(), authHeader, verifier, users)
				if err != nil {
					failures.RecordAuthFailure(failureReason(err))
					respondUnauthorized(w, err)
					return
				}
				next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user)))
				return
			}

			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				user, err := sessions.CurrentUser(r.Context(), cookie.Value)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user)))
					return
				}
				if !errors.Is(err, models.ErrUnauthenticated) {
					logger.Warn("failed to resolve session", zap.Error(err))
				}
			}

			// Anonymous request
			next.ServeHTTP(w, r)
		})
	}
}

// resolveBearer validates the Authorization header and loads the token's user.
// Every check re-reads the store, so a deleted user fails immediately even
// while their token is still within its TTL.
func resolveBearer(ctx context.Context, authHeader string, verifier TokenVerifier, users UserFinder) (*models.User, error) {
	// Expected format: "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, models.ErrTokenMalformed
	}

	userID, err := verifier.Verify(parts[1])
	if err != nil {
		return nil, err
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

// failureReason maps a bearer rejection to its metric label
func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, models.ErrTokenMalformed):
		return "token_malformed"
	case errors.Is(err, models.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, models.ErrInfrastructure):
		return "storage"
	default:
		return "unknown_user"
	}
}

// respondUnauthorized writes a 401 with the token-specific reason
func respondUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	if errors.Is(err, models.ErrInfrastructure) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"storage unavailable"}`))
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + err.Error() + `"}`))
}
