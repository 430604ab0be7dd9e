package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// sopRepository implements SOP data access over MySQL
type sopRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSOPRepository creates a new SOP repository
func NewSOPRepository(db *sql.DB, logger *zap.Logger) *sopRepository {
	return &sopRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves SOPs ordered by title, optionally filtered by category
func (r *sopRepository) GetAll(ctx context.Context, category string) ([]models.SOP, error) {
	query := `SELECT id, title, description, content, version, category, created_at, updated_at FROM sops`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query sops", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to query sops: %v", models.ErrInfrastructure, err)
	}
	defer rows.Close()

	var sops []models.SOP
	for rows.Next() {
		var sop models.SOP
		if err := rows.Scan(&sop.ID, &sop.Title, &sop.Description, &sop.Content, &sop.Version, &sop.Category, &sop.CreatedAt, &sop.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan sop: %v", models.ErrInfrastructure, err)
		}
		sops = append(sops, sop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate sops: %v", models.ErrInfrastructure, err)
	}

	return sops, nil
}

// GetByID retrieves a SOP by ID
func (r *sopRepository) GetByID(ctx context.Context, id int) (*models.SOP, error) {
	query := `
		SELECT id, title, description, content, version, category, created_at, updated_at
		FROM sops
		WHERE id = ?
		LIMIT 1
	`

	var sop models.SOP
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sop.ID, &sop.Title, &sop.Description, &sop.Content, &sop.Version, &sop.Category, &sop.CreatedAt, &sop.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get sop", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get sop: %v", models.ErrInfrastructure, err)
	}

	return &sop, nil
}

// Create inserts a new SOP
func (r *sopRepository) Create(ctx context.Context, sop *models.SOP) error {
	now := time.Now().UTC().Truncate(time.Second)
	sop.CreatedAt = now
	sop.UpdatedAt = now

	query := `
		INSERT INTO sops (title, description, content, version, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, sop.Title, sop.Description, sop.Content, sop.Version, sop.Category, sop.CreatedAt, sop.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to create sop", zap.Error(err))
		return fmt.Errorf("%w: failed to create sop: %v", models.ErrInfrastructure, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get last insert id: %v", models.ErrInfrastructure, err)
	}

	sop.ID = int(id)
	return nil
}

// Update persists changes to an existing SOP
func (r *sopRepository) Update(ctx context.Context, sop *models.SOP) error {
	sop.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	query := `
		UPDATE sops
		SET title = ?, description = ?, content = ?, version = ?, category = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, sop.Title, sop.Description, sop.Content, sop.Version, sop.Category, sop.UpdatedAt, sop.ID)
	if err != nil {
		r.logger.Error("failed to update sop", zap.Int("id", sop.ID), zap.Error(err))
		return fmt.Errorf("%w: failed to update sop: %v", models.ErrInfrastructure, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get affected rows: %v", models.ErrInfrastructure, err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete removes a SOP by ID
func (r *sopRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sops WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete sop", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to delete sop: %v", models.ErrInfrastructure, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get affected rows: %v", models.ErrInfrastructure, err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	return nil
}
