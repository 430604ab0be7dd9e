package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/models"
)

// AdminService is the interface that wraps methods for administrative user management.
type AdminService interface {
	// Method ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]models.User, error)
	// Method GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID int) (*models.User, error)
	// Method CreateUser creates a user with the requested role.
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	// Method UpdateUser applies the provided field changes to an existing user.
	UpdateUser(ctx context.Context, userID int, req *models.UpdateUserRequest) (*models.User, error)
	// Method DeleteUser removes a user, enforcing the delete-self and
	// sole-admin protections.
	DeleteUser(ctx context.Context, actor *models.User, userID int) error
}

// SessionCleaner removes expired sessions
type SessionCleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// UserHandler handles administrative user management requests
type UserHandler struct {
	BaseHandler
	adminService   AdminService
	sessionCleaner SessionCleaner
}

// NewUserHandler creates a new user handler
func NewUserHandler(adminService AdminService, sessionCleaner SessionCleaner, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		adminService:   adminService,
		sessionCleaner: sessionCleaner,
	}
}

// RegisterRoutes registers all user handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	r.Post("/admin/sessions/cleanup", h.CleanupSessions)
}

// List handles GET /users
// @Summary List users
// @Description List all users. Admin only.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.User "Users"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}

// Get handles GET /users/{id}
// @Summary Get user
// @Description Get a user by ID. Admin only.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	user, err := h.adminService.GetUser(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Create handles POST /users
// @Summary Create user
// @Description Create a user with an explicit role. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateUserRequest true "User to create"
// @Success 201 {object} models.User "Created user"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.CreateUserRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	user, err := h.adminService.CreateUser(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// Update handles PUT /users/{id}
// @Summary Update user
// @Description Update a user's email, password, or role. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User "Updated user"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.UpdateUserRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	user, err := h.adminService.UpdateUser(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}
// @Summary Delete user
// @Description Delete a user. Admin only; self-deletion and deleting the sole Admin are rejected.
// @Tags users
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 204 "User deleted"
// @Failure 400 {object} map[string]string "Cannot delete own account"
// @Failure 409 {object} map[string]string "Cannot delete the sole admin"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), actor, id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CleanupSessions handles POST /admin/sessions/cleanup
// @Summary Clean expired sessions
// @Description Remove all expired sessions. Admin only.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Cleanup completed"
// @Router /admin/sessions/cleanup [post]
func (h *UserHandler) CleanupSessions(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	deleted, err := h.sessionCleaner.CleanupExpired(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.Logger.Info("session cleanup completed", zap.Int64("deleted", deleted))
	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "session cleanup completed",
		"deleted": deleted,
	})
}

// pathID parses the {id} URL parameter
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("id", "id must be a positive integer")
	}
	return id, nil
}
