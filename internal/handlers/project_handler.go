package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/models"
)

// ProjectService is the interface that wraps methods for project business logic.
type ProjectService interface {
	// Method List retrieves projects, optionally featured only.
	List(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	// Method Get retrieves a project by ID.
	Get(ctx context.Context, id int) (*models.Project, error)
	// Method Create validates and inserts a new project.
	Create(ctx context.Context, req *models.ProjectRequest) (*models.Project, error)
	// Method Update validates and applies a full update to an existing project.
	Update(ctx context.Context, id int, req *models.ProjectRequest) (*models.Project, error)
	// Method Delete removes a project by ID.
	Delete(ctx context.Context, id int) error
}

// ProjectHandler handles project CRUD requests.
// Reads are public for the marketing site; writes require Contributor or
// Admin, deletes Admin only.
type ProjectHandler struct {
	BaseHandler
	service ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all project handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /projects
// @Summary List projects
// @Description List all projects newest first. Use featured=true to limit to featured projects.
// @Tags projects
// @Produce json
// @Param featured query bool false "Featured projects only"
// @Success 200 {array} models.Project "Projects"
// @Router /projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	projects, err := h.service.List(r.Context(), featuredOnly)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, projects)
}

// Get handles GET /projects/{id}
// @Summary Get project
// @Description Get a project by ID.
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Project"
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	project, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, project)
}

// Create handles POST /projects
// @Summary Create project
// @Description Create a new project. Contributor or Admin.
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.ProjectRequest true "Project to create"
// @Success 201 {object} models.Project "Created project"
// @Failure 409 {object} map[string]string "Slug already exists"
// @Router /projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleContributor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.ProjectRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	project, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, project)
}

// Update handles PUT /projects/{id}
// @Summary Update project
// @Description Update an existing project. Contributor or Admin.
// @Tags projects
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param request body models.ProjectRequest true "Project fields"
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleContributor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.ProjectRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	project, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /projects/{id}
// @Summary Delete project
// @Description Delete a project. Admin only.
// @Tags projects
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 204 "Project deleted"
// @Failure 404 {object} map[string]string "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
