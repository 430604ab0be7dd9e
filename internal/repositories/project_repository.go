package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// projectRepository implements project data access over MySQL
type projectRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB, logger *zap.Logger) *projectRepository {
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

const projectColumns = `id, title, slug, description, long_description, image_url, demo_url, github_url, download_url, is_featured, created_at, updated_at`

// GetAll retrieves projects ordered newest first, optionally featured only
func (r *projectRepository) GetAll(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []any
	if featuredOnly {
		query += ` WHERE is_featured = ?`
		args = append(args, true)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query projects", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to query projects: %v", models.ErrInfrastructure, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows.Scan, &p); err != nil {
			return nil, fmt.Errorf("%w: failed to scan project: %v", models.ErrInfrastructure, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate projects: %v", models.ErrInfrastructure, err)
	}

	return projects, nil
}

// GetByID retrieves a project by ID
func (r *projectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ? LIMIT 1`

	var p models.Project
	err := scanProject(r.db.QueryRowContext(ctx, query, id).Scan, &p)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get project", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get project: %v", models.ErrInfrastructure, err)
	}

	return &p, nil
}

// Create inserts a new project; a duplicate slug yields models.ErrConflict
func (r *projectRepository) Create(ctx context.Context, p *models.Project) error {
	now := time.Now().UTC().Truncate(time.Second)
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO projects (title, slug, description, long_description, image_url, demo_url, github_url, download_url, is_featured, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.Slug, p.Description, p.LongDescription,
		p.ImageURL, p.DemoURL, p.GithubURL, p.DownloadURL,
		p.IsFeatured, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("%w: project slug already exists", models.ErrConflict)
		}
		r.logger.Error("failed to create project", zap.Error(err))
		return fmt.Errorf("%w: failed to create project: %v", models.ErrInfrastructure, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get last insert id: %v", models.ErrInfrastructure, err)
	}

	p.ID = int(id)
	return nil
}

// Update persists changes to an existing project
func (r *projectRepository) Update(ctx context.Context, p *models.Project) error {
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	query := `
		UPDATE projects
		SET title = ?, slug = ?, description = ?, long_description = ?, image_url = ?, demo_url = ?, github_url = ?, download_url = ?, is_featured = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title, p.Slug, p.Description, p.LongDescription,
		p.ImageURL, p.DemoURL, p.GithubURL, p.DownloadURL,
		p.IsFeatured, p.UpdatedAt, p.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("%w: project slug already exists", models.ErrConflict)
		}
		r.logger.Error("failed to update project", zap.Int("id", p.ID), zap.Error(err))
		return fmt.Errorf("%w: failed to update project: %v", models.ErrInfrastructure, err)
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

// Delete removes a project by ID
func (r *projectRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete project", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to delete project: %v", models.ErrInfrastructure, err)
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

// scanProject reads a project row through the given scan function
func scanProject(scan func(...any) error, p *models.Project) error {
	return scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.LongDescription,
		&p.ImageURL, &p.DemoURL, &p.GithubURL, &p.DownloadURL,
		&p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	)
}
