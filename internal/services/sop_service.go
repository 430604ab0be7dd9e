package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// SOPRepository is the interface that wraps methods for SOP table data access
type SOPRepository interface {
	// Method GetAll retrieves SOPs, optionally filtered by category.
	GetAll(ctx context.Context, category string) ([]models.SOP, error)
	// Method GetByID retrieves a SOP by ID; models.ErrNotFound when absent.
	GetByID(ctx context.Context, id int) (*models.SOP, error)
	// Method Create inserts a new SOP.
	Create(ctx context.Context, sop *models.SOP) error
	// Method Update persists changes; models.ErrNotFound when absent.
	Update(ctx context.Context, sop *models.SOP) error
	// Method Delete removes a SOP; models.ErrNotFound when absent.
	Delete(ctx context.Context, id int) error
}

// sopService implements SOP business logic
type sopService struct {
	sopRepo SOPRepository
	logger  *zap.Logger
}

// NewSOPService creates a new SOP service
func NewSOPService(sopRepo SOPRepository, logger *zap.Logger) *sopService {
	return &sopService{
		sopRepo: sopRepo,
		logger:  logger,
	}
}

// List retrieves SOPs, optionally filtered by category
func (s *sopService) List(ctx context.Context, category string) ([]models.SOP, error) {
	return s.sopRepo.GetAll(ctx, category)
}

// Get retrieves a SOP by ID
func (s *sopService) Get(ctx context.Context, id int) (*models.SOP, error) {
	return s.sopRepo.GetByID(ctx, id)
}

// Create validates and inserts a new SOP
func (s *sopService) Create(ctx context.Context, req *models.SOPRequest) (*models.SOP, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sop := req.ToSOP()
	if err := s.sopRepo.Create(ctx, sop); err != nil {
		return nil, err
	}

	s.logger.Info("sop created", zap.Int("id", sop.ID), zap.String("title", sop.Title))
	return sop, nil
}

// Update validates and applies a full update to an existing SOP
func (s *sopService) Update(ctx context.Context, id int, req *models.SOPRequest) (*models.SOP, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.sopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sop := req.ToSOP()
	sop.ID = existing.ID
	sop.CreatedAt = existing.CreatedAt

	if err := s.sopRepo.Update(ctx, sop); err != nil {
		return nil, err
	}

	s.logger.Info("sop updated", zap.Int("id", id))
	return sop, nil
}

// Delete removes a SOP by ID
func (s *sopService) Delete(ctx context.Context, id int) error {
	if err := s.sopRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("sop deleted", zap.Int("id", id))
	return nil
}
