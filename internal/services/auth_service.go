// Package services implements the business logic between handlers and repositories
package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// The unique email constraint serializes concurrent registrations: the loser
	// of the race receives models.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by normalized email.
	//
	// Returns models.ErrNotFound if no user with such email exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// Returns models.ErrNotFound if no user with such ID exists.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method Count returns the total number of users in the store.
	Count(ctx context.Context) (int, error)
}

// PasswordHasher wraps one-way password hashing and verification
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer signs, validates, and refreshes bearer tokens
type TokenIssuer interface {
	Issue(userID int) (string, error)
	Verify(tokenString string) (int, error)
	Refresh(tokenString string) (string, error)
}

// authService implements registration, login, and token flows
type authService struct {
	userRepo UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new user account and returns a bearer token for it.
// The first user ever registered is promoted to Admin; everyone after
// defaults to Viewer.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (string, *models.User, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	role, err := resolveInitialRole(ctx, s.userRepo, models.RoleViewer)
	if err != nil {
		return "", nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("failed to issue token after registration", zap.Int("userID", user.ID), zap.Error(err))
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// Login authenticates a user and returns a bearer token.
// Unknown email and wrong password both yield models.ErrInvalidCredentials
// so the response never reveals whether the email exists.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("failed to issue token on login", zap.Int("userID", user.ID), zap.Error(err))
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// Refresh exchanges a currently-valid token for a fresh one.
// The old token stays usable until its own expiry; there is no revocation list.
func (s *authService) Refresh(tokenString string) (string, error) {
	return s.tokens.Refresh(tokenString)
}

// resolveInitialRole applies the exactly-one-initial-Admin rule: an empty
// store forces Admin regardless of the requested role
func resolveInitialRole(ctx context.Context, userRepo UserRepository, requested models.Role) (models.Role, error) {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return models.RoleAdmin, nil
	}
	return requested, nil
}
