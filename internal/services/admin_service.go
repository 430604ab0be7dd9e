package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// AdminUserRepository is the interface that wraps methods for administrative User table data access
type AdminUserRepository interface {
	UserRepository
	// Method GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method Update persists email, password hash, and role changes.
	Update(ctx context.Context, user *models.User) error
	// Method Delete removes a user by ID.
	Delete(ctx context.Context, userID int) error
	// Method CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role models.Role) (int, error)
}

// adminService implements administrative user management.
// Role enforcement happens in handlers via auth.Authorize; this service
// layers the delete-self and sole-admin protections on top.
type adminService struct {
	userRepo AdminUserRepository
	hasher   PasswordHasher
	logger   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo AdminUserRepository, hasher PasswordHasher, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// ListUsers retrieves all users
func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUser retrieves a user by ID
func (s *adminService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// CreateUser creates a user with the requested role. An empty store still
// forces Admin, matching self-service registration.
func (s *adminService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role, err := resolveInitialRole(ctx, s.userRepo, req.Role)
	if err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser applies the provided field changes to an existing user.
// Demoting the sole Admin is rejected so the system never loses its last Admin.
func (s *adminService) UpdateUser(ctx context.Context, userID int, req *models.UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil && *req.Role != models.RoleAdmin && user.Role == models.RoleAdmin {
		sole, err := s.isSoleAdmin(ctx)
		if err != nil {
			return nil, err
		}
		if sole {
			return nil, fmt.Errorf("%w: cannot demote the sole admin", models.ErrConflict)
		}
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		passwordHash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user. The acting admin cannot delete their own
// account, and the sole Admin can never be deleted.
func (s *adminService) DeleteUser(ctx context.Context, actor *models.User, userID int) error {
	if actor == nil {
		return models.ErrUnauthenticated
	}
	if actor.ID == userID {
		return models.NewValidationError("id", "cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		sole, err := s.isSoleAdmin(ctx)
		if err != nil {
			return err
		}
		if sole {
			return fmt.Errorf("%w: cannot delete the sole admin", models.ErrConflict)
		}
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.Int("userID", userID), zap.Int("actorID", actor.ID))
	return nil
}

// isSoleAdmin reports whether exactly one Admin remains
func (s *adminService) isSoleAdmin(ctx context.Context) (bool, error) {
	count, err := s.userRepo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return false, err
	}
	return count <= 1, nil
}
