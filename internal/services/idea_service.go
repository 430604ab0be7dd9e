package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// IdeaRepository is the interface that wraps methods for Idea table data access
type IdeaRepository interface {
	// Method GetAll retrieves ideas, optionally filtered by status.
	GetAll(ctx context.Context, status models.IdeaStatus) ([]models.Idea, error)
	// Method GetByID retrieves an idea by ID; models.ErrNotFound when absent.
	GetByID(ctx context.Context, id int) (*models.Idea, error)
	// Method Create inserts a new idea.
	Create(ctx context.Context, idea *models.Idea) error
	// Method Update persists changes; models.ErrNotFound when absent.
	Update(ctx context.Context, idea *models.Idea) error
	// Method Delete removes an idea; models.ErrNotFound when absent.
	Delete(ctx context.Context, id int) error
}

// ideaService implements idea business logic
type ideaService struct {
	ideaRepo IdeaRepository
	logger   *zap.Logger
}

// NewIdeaService creates a new idea service
func NewIdeaService(ideaRepo IdeaRepository, logger *zap.Logger) *ideaService {
	return &ideaService{
		ideaRepo: ideaRepo,
		logger:   logger,
	}
}

// List retrieves ideas, optionally filtered by status
func (s *ideaService) List(ctx context.Context, status models.IdeaStatus) ([]models.Idea, error) {
	if status != "" && !status.Valid() {
		return nil, models.NewValidationError("status", "status must be one of new, in_progress, completed, archived")
	}
	return s.ideaRepo.GetAll(ctx, status)
}

// Get retrieves an idea by ID
func (s *ideaService) Get(ctx context.Context, id int) (*models.Idea, error) {
	return s.ideaRepo.GetByID(ctx, id)
}

// Create validates and inserts a new idea
func (s *ideaService) Create(ctx context.Context, req *models.IdeaRequest) (*models.Idea, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	idea := req.ToIdea()
	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}

	s.logger.Info("idea created", zap.Int("id", idea.ID), zap.String("title", idea.Title))
	return idea, nil
}

// Update validates and applies a full update to an existing idea
func (s *ideaService) Update(ctx context.Context, id int, req *models.IdeaRequest) (*models.Idea, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	idea := req.ToIdea()
	idea.ID = existing.ID
	idea.CreatedAt = existing.CreatedAt

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, err
	}

	s.logger.Info("idea updated", zap.Int("id", id))
	return idea, nil
}

// Delete removes an idea by ID
func (s *ideaService) Delete(ctx context.Context, id int) error {
	if err := s.ideaRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("idea deleted", zap.Int("id", id))
	return nil
}
