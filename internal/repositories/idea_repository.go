package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// ideaRepository implements idea data access over MySQL
type ideaRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *sql.DB, logger *zap.Logger) *ideaRepository {
	return &ideaRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves ideas ordered by priority then recency, optionally filtered by status
func (r *ideaRepository) GetAll(ctx context.Context, status models.IdeaStatus) ([]models.Idea, error) {
	query := `SELECT id, title, description, status, priority, created_at, updated_at FROM ideas`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY priority DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query ideas", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to query ideas: %v", models.ErrInfrastructure, err)
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		var idea models.Idea
		if err := rows.Scan(&idea.ID, &idea.Title, &idea.Description, &idea.Status, &idea.Priority, &idea.CreatedAt, &idea.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan idea: %v", models.ErrInfrastructure, err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate ideas: %v", models.ErrInfrastructure, err)
	}

	return ideas, nil
}

// GetByID retrieves an idea by ID
func (r *ideaRepository) GetByID(ctx context.Context, id int) (*models.Idea, error) {
	query := `
		SELECT id, title, description, status, priority, created_at, updated_at
		FROM ideas
		WHERE id = ?
		LIMIT 1
	`

	var idea models.Idea
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&idea.ID, &idea.Title, &idea.Description, &idea.Status, &idea.Priority, &idea.CreatedAt, &idea.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get idea", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get idea: %v", models.ErrInfrastructure, err)
	}

	return &idea, nil
}

// Create inserts a new idea
func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) error {
	now := time.Now().UTC().Truncate(time.Second)
	idea.CreatedAt = now
	idea.UpdatedAt = now

	query := `
		INSERT INTO ideas (title, description, status, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, idea.Title, idea.Description, idea.Status, idea.Priority, idea.CreatedAt, idea.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to create idea", zap.Error(err))
		return fmt.Errorf("%w: failed to create idea: %v", models.ErrInfrastructure, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get last insert id: %v", models.ErrInfrastructure, err)
	}

	idea.ID = int(id)
	return nil
}

// Update persists changes to an existing idea
func (r *ideaRepository) Update(ctx context.Context, idea *models.Idea) error {
	idea.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	query := `
		UPDATE ideas
		SET title = ?, description = ?, status = ?, priority = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, idea.Title, idea.Description, idea.Status, idea.Priority, idea.UpdatedAt, idea.ID)
	if err != nil {
		r.logger.Error("failed to update idea", zap.Int("id", idea.ID), zap.Error(err))
		return fmt.Errorf("%w: failed to update idea: %v", models.ErrInfrastructure, err)
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

// Delete removes an idea by ID
func (r *ideaRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ideas WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete idea", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to delete idea: %v", models.ErrInfrastructure, err)
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
