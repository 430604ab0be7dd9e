package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// SessionRepository is the interface that wraps methods for Session table data access
type SessionRepository interface {
	// Method Create inserts a new session into the database.
	Create(ctx context.Context, session *models.Session) error
	// Method GetByID retrieves a non-expired session by ID.
	//
	// Returns models.ErrNotFound for missing or expired sessions.
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
	// Method UpdateExpiry slides the session window forward.
	UpdateExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error
	// Method Delete removes a single session.
	Delete(ctx context.Context, sessionID string) error
	// Method DeleteExpired removes all expired sessions.
	DeleteExpired(ctx context.Context) (int64, error)
}

// sessionService implements cookie-based login for browser flows
type sessionService struct {
	sessionRepo      SessionRepository
	userRepo         UserRepository
	hasher           PasswordHasher
	lifetime         time.Duration
	rememberLifetime time.Duration
	logger           *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo SessionRepository,
	userRepo UserRepository,
	hasher PasswordHasher,
	lifetime time.Duration,
	rememberLifetime time.Duration,
	logger *zap.Logger,
) *sessionService {
	return &sessionService{
		sessionRepo:      sessionRepo,
		userRepo:         userRepo,
		hasher:           hasher,
		lifetime:         lifetime,
		rememberLifetime: rememberLifetime,
		logger:           logger,
	}
}

// Login verifies credentials and establishes a new session.
// The remember flag extends the session lifetime to the configured maximum.
func (s *sessionService) Login(ctx context.Context, req *models.LoginRequest) (*models.Session, *models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil, models.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, nil, models.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Remember:  req.Remember,
		ExpiresAt: now.Add(s.duration(req.Remember)),
		CreatedAt: now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	return session, user, nil
}

// Logout invalidates the given session only; other active sessions and
// bearer tokens for the same user stay valid
func (s *sessionService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// CurrentUser resolves a session cookie to its user and slides the session
// window forward. Missing or expired sessions yield models.ErrUnauthenticated.
func (s *sessionService) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthenticated
		}
		return nil, err
	}

	// Expiry is filtered in SQL on the database clock; re-check on ours
	if session.Expired(time.Now().UTC()) {
		return nil, models.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthenticated
		}
		return nil, err
	}

	// Sliding window: a failed extension is not fatal for the request
	expiresAt := time.Now().UTC().Add(s.duration(session.Remember))
	if err := s.sessionRepo.UpdateExpiry(ctx, session.ID, expiresAt); err != nil {
		s.logger.Warn("failed to slide session expiry", zap.String("sessionID", session.ID), zap.Error(err))
	}

	return user, nil
}

// CleanupExpired deletes all expired sessions and returns how many were removed
func (s *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx)
}

// duration returns the session lifetime for the remember flag
func (s *sessionService) duration(remember bool) time.Duration {
	if remember {
		return s.rememberLifetime
	}
	return s.lifetime
}
