// Package auth implements token issuance, password hashing, and the role gate
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/portfoliohub/backend/internal/models"
)

// TokenGenerator signs and validates short-lived bearer tokens.
// Tokens are stateless: changing the secret invalidates everything outstanding.
type TokenGenerator struct {
	secret string
	ttl    time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, ttl time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret: secret,
		ttl:    ttl,
	}
}

// Issue produces a signed token embedding the user ID with a fresh expiry
func (tg *TokenGenerator) Issue(userID int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(tg.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a token and returns the embedded user ID.
// Failures are one of models.ErrTokenExpired, models.ErrTokenMalformed,
// or models.ErrBadSignature.
func (tg *TokenGenerator) Verify(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	})

	if err != nil {
		return 0, classifyTokenError(err)
	}

	if !token.Valid {
		return 0, models.ErrBadSignature
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.ErrTokenMalformed
	}

	// JWT claims decode numbers as float64
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, models.ErrTokenMalformed
	}

	return int(userID), nil
}

// Refresh issues a new token with a fresh expiry for a currently-valid token.
// The old token is not invalidated; it lapses on its own expiry.
func (tg *TokenGenerator) Refresh(tokenString string) (string, error) {
	userID, err := tg.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return tg.Issue(userID)
}

// classifyTokenError maps jwt/v5 parse errors onto the token error taxonomy
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return models.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return models.ErrTokenMalformed
	default:
		return models.ErrTokenMalformed
	}
}
