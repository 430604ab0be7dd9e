package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// ProjectRepository is the interface that wraps methods for Project table data access
type ProjectRepository interface {
	// Method GetAll retrieves projects ordered newest first, optionally featured only.
	GetAll(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	// Method GetByID retrieves a project by ID; models.ErrNotFound when absent.
	GetByID(ctx context.Context, id int) (*models.Project, error)
	// Method Create inserts a new project; models.ErrConflict on a duplicate slug.
	Create(ctx context.Context, p *models.Project) error
	// Method Update persists changes; models.ErrNotFound when absent.
	Update(ctx context.Context, p *models.Project) error
	// Method Delete removes a project; models.ErrNotFound when absent.
	Delete(ctx context.Context, id int) error
}

// projectService implements project business logic
type projectService struct {
	projectRepo ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo ProjectRepository, logger *zap.Logger) *projectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// List retrieves projects, optionally featured only
func (s *projectService) List(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	return s.projectRepo.GetAll(ctx, featuredOnly)
}

// Get retrieves a project by ID
func (s *projectService) Get(ctx context.Context, id int) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Create validates and inserts a new project
func (s *projectService) Create(ctx context.Context, req *models.ProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	project := req.ToProject()
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created", zap.Int("id", project.ID), zap.String("title", project.Title))
	return project, nil
}

// Update validates and applies a full update to an existing project
func (s *projectService) Update(ctx context.Context, id int, req *models.ProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project := req.ToProject()
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated", zap.Int("id", id), zap.String("title", project.Title))
	return project, nil
}

// Delete removes a project by ID
func (s *projectService) Delete(ctx context.Context, id int) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", zap.Int("id", id))
	return nil
}
