package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// kpiRepository implements KPI data access over MySQL
type kpiRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewKPIRepository creates a new KPI repository
func NewKPIRepository(db *sql.DB, logger *zap.Logger) *kpiRepository {
	return &kpiRepository{
		db:     db,
		logger: logger,
	}
}

const kpiColumns = `id, title, description, target_value, current_value, unit, category, start_date, end_date, created_at, updated_at`

// GetAll retrieves KPIs ordered by title, optionally filtered by category
func (r *kpiRepository) GetAll(ctx context.Context, category string) ([]models.KPI, error) {
	query := `SELECT ` + kpiColumns + ` FROM kpis`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY title`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query kpis", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to query kpis: %v", models.ErrInfrastructure, err)
	}
	defer rows.Close()

	var kpis []models.KPI
	for rows.Next() {
		var kpi models.KPI
		if err := scanKPI(rows.Scan, &kpi); err != nil {
			return nil, fmt.Errorf("%w: failed to scan kpi: %v", models.ErrInfrastructure, err)
		}
		kpis = append(kpis, kpi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate kpis: %v", models.ErrInfrastructure, err)
	}

	return kpis, nil
}

// GetByID retrieves a KPI by ID
func (r *kpiRepository) GetByID(ctx context.Context, id int) (*models.KPI, error) {
	query := `SELECT ` + kpiColumns + ` FROM kpis WHERE id = ? LIMIT 1`

	var kpi models.KPI
	err := scanKPI(r.db.QueryRowContext(ctx, query, id).Scan, &kpi)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get kpi", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to get kpi: %v", models.ErrInfrastructure, err)
	}

	return &kpi, nil
}

// Create inserts a new KPI
func (r *kpiRepository) Create(ctx context.Context, kpi *models.KPI) error {
	now := time.Now().UTC().Truncate(time.Second)
	kpi.CreatedAt = now
	kpi.UpdatedAt = now

	query := `
		INSERT INTO kpis (title, description, target_value, current_value, unit, category, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		kpi.Title, kpi.Description, kpi.TargetValue, kpi.CurrentValue,
		kpi.Unit, kpi.Category, kpi.StartDate, kpi.EndDate,
		kpi.CreatedAt, kpi.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create kpi", zap.Error(err))
		return fmt.Errorf("%w: failed to create kpi: %v", models.ErrInfrastructure, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to get last insert id: %v", models.ErrInfrastructure, err)
	}

	kpi.ID = int(id)
	return nil
}

// Update persists changes to an existing KPI
func (r *kpiRepository) Update(ctx context.Context, kpi *models.KPI) error {
	kpi.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	query := `
		UPDATE kpis
		SET title = ?, description = ?, target_value = ?, current_value = ?, unit = ?, category = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		kpi.Title, kpi.Description, kpi.TargetValue, kpi.CurrentValue,
		kpi.Unit, kpi.Category, kpi.StartDate, kpi.EndDate,
		kpi.UpdatedAt, kpi.ID,
	)
	if err != nil {
		r.logger.Error("failed to update kpi", zap.Int("id", kpi.ID), zap.Error(err))
		return fmt.Errorf("%w: failed to update kpi: %v", models.ErrInfrastructure, err)
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

// Delete removes a KPI by ID
func (r *kpiRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM kpis WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete kpi", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to delete kpi: %v", models.ErrInfrastructure, err)
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

// scanKPI reads a KPI row through the given scan function
func scanKPI(scan func(...any) error, kpi *models.KPI) error {
	return scan(
		&kpi.ID, &kpi.Title, &kpi.Description, &kpi.TargetValue, &kpi.CurrentValue,
		&kpi.Unit, &kpi.Category, &kpi.StartDate, &kpi.EndDate,
		&kpi.CreatedAt, &kpi.UpdatedAt,
	)
}
