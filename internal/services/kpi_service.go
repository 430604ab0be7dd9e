package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// KPIRepository is the interface that wraps methods for KPI table data access
type KPIRepository interface {
	// Method GetAll retrieves KPIs, optionally filtered by category.
	GetAll(ctx context.Context, category string) ([]models.KPI, error)
	// Method GetByID retrieves a KPI by ID; models.ErrNotFound when absent.
	GetByID(ctx context.Context, id int) (*models.KPI, error)
	// Method Create inserts a new KPI.
	Create(ctx context.Context, kpi *models.KPI) error
	// Method Update persists changes; models.ErrNotFound when absent.
	Update(ctx context.Context, kpi *models.KPI) error
	// Method Delete removes a KPI; models.ErrNotFound when absent.
	Delete(ctx context.Context, id int) error
}

// kpiService implements KPI business logic
type kpiService struct {
	kpiRepo KPIRepository
	logger  *zap.Logger
}

// NewKPIService creates a new KPI service
func NewKPIService(kpiRepo KPIRepository, logger *zap.Logger) *kpiService {
	return &kpiService{
		kpiRepo: kpiRepo,
		logger:  logger,
	}
}

// List retrieves KPIs with computed progress, optionally filtered by category
func (s *kpiService) List(ctx context.Context, category string) ([]models.KPIResponse, error) {
	kpis, err := s.kpiRepo.GetAll(ctx, category)
	if err != nil {
		return nil, err
	}

	responses := make([]models.KPIResponse, len(kpis))
	for i := range kpis {
		responses[i] = kpis[i].ToResponse()
	}
	return responses, nil
}

// Get retrieves a KPI by ID with computed progress
func (s *kpiService) Get(ctx context.Context, id int) (*models.KPIResponse, error) {
	kpi, err := s.kpiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := kpi.ToResponse()
	return &resp, nil
}

// Create validates and inserts a new KPI
func (s *kpiService) Create(ctx context.Context, req *models.KPIRequest) (*models.KPIResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	kpi := req.ToKPI()
	if err := s.kpiRepo.Create(ctx, kpi); err != nil {
		return nil, err
	}

	s.logger.Info("kpi created", zap.Int("id", kpi.ID), zap.String("title", kpi.Title))
	resp := kpi.ToResponse()
	return &resp, nil
}

// Update validates and applies a full update to an existing KPI
func (s *kpiService) Update(ctx context.Context, id int, req *models.KPIRequest) (*models.KPIResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.kpiRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kpi := req.ToKPI()
	kpi.ID = existing.ID
	kpi.CreatedAt = existing.CreatedAt

	if err := s.kpiRepo.Update(ctx, kpi); err != nil {
		return nil, err
	}

	s.logger.Info("kpi updated", zap.Int("id", id))
	resp := kpi.ToResponse()
	return &resp, nil
}

// Delete removes a KPI by ID
func (s *kpiService) Delete(ctx context.Context, id int) error {
	if err := s.kpiRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("kpi deleted", zap.Int("id", id))
	return nil
}
