package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// sessionRepository stores browser sessions in MySQL
type sessionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB, logger *zap.Logger) *sessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new session
func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, remember, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.Remember, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create session", zap.Error(err))
		return fmt.Errorf("%w: failed to create session: %v", models.ErrInfrastructure, err)
	}

	return nil
}

// GetByID retrieves a non-expired session by ID
func (r *sessionRepository) GetByID(ctx context.Context, sessionID string) (*models.Session, error) {
	query := `
		SELECT id, user_id, remember, expires_at, created_at
		FROM sessions
		WHERE id = ? AND expires_at > ?
		LIMIT 1
	`

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, sessionID, time.Now().UTC()).Scan(
		&session.ID,
		&session.UserID,
		&session.Remember,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get session", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get session: %v", models.ErrInfrastructure, err)
	}

	return session, nil
}

// UpdateExpiry slides the session window forward
func (r *sessionRepository) UpdateExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET expires_at = ? WHERE id = ?`, expiresAt, sessionID)
	if err != nil {
		r.logger.Error("failed to update session expiry", zap.Error(err))
		return fmt.Errorf("%w: failed to update session expiry: %v", models.ErrInfrastructure, err)
	}
	return nil
}

// Delete removes a single session; other sessions for the same user stay valid
func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID)
	if err != nil {
		r.logger.Error("failed to delete session", zap.Error(err))
		return fmt.Errorf("%w: failed to delete session: %v", models.ErrInfrastructure, err)
	}
	return nil
}

// DeleteExpired removes all expired sessions and returns how many were deleted
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	if err != nil {
		r.logger.Error("failed to delete expired sessions", zap.Error(err))
		return 0, fmt.Errorf("%w: failed to delete expired sessions: %v", models.ErrInfrastructure, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get affected rows: %v", models.ErrInfrastructure, err)
	}

	return deleted, nil
}
