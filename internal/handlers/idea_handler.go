package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/models"
)

// IdeaService is the interface that wraps methods for idea business logic.
type IdeaService interface {
	// Method List retrieves ideas, optionally filtered by status.
	List(ctx context.Context, status models.IdeaStatus) ([]models.Idea, error)
	// Method Get retrieves an idea by ID.
	Get(ctx context.Context, id int) (*models.Idea, error)
	// Method Create validates and inserts a new idea.
	Create(ctx context.Context, req *models.IdeaRequest) (*models.Idea, error)
	// Method Update validates and applies a full update to an existing idea.
	Update(ctx context.Context, id int, req *models.IdeaRequest) (*models.Idea, error)
	// Method Delete removes an idea by ID.
	Delete(ctx context.Context, id int) error
}

// IdeaHandler handles idea CRUD requests
type IdeaHandler struct {
	BaseHandler
	service IdeaService
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(service IdeaService, logger *zap.Logger) *IdeaHandler {
	return &IdeaHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all idea handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *IdeaHandler) RegisterRoutes(r chi.Router) {
	r.Route("/ideas", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /ideas
// @Summary List ideas
// @Description List ideas ordered by priority then recency. Optional status filter.
// @Tags ideas
// @Produce json
// @Param status query string false "Filter by status: new, in_progress, completed, archived"
// @Success 200 {array} models.Idea "Ideas"
// @Failure 400 {object} map[string]string "Invalid status"
// @Router /ideas [get]
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	status := models.IdeaStatus(r.URL.Query().Get("status"))

	ideas, err := h.service.List(r.Context(), status)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, ideas)
}

// Get handles GET /ideas/{id}
// @Summary Get idea
// @Description Get an idea by ID.
// @Tags ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {object} models.Idea "Idea"
// @Failure 404 {object} map[string]string "Idea not found"
// @Router /ideas/{id} [get]
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	idea, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, idea)
}

// Create handles POST /ideas
// @Summary Create idea
// @Description Create a new idea. Contributor or Admin.
// @Tags ideas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.IdeaRequest true "Idea to create"
// @Success 201 {object} models.Idea "Created idea"
// @Router /ideas [post]
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleContributor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.IdeaRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	idea, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, idea)
}

// Update handles PUT /ideas/{id}
// @Summary Update idea
// @Description Update an existing idea. Contributor or Admin.
// @Tags ideas
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Idea ID"
// @Param request body models.IdeaRequest true "Idea fields"
// @Success 200 {object} models.Idea "Updated idea"
// @Failure 404 {object} map[string]string "Idea not found"
// @Router /ideas/{id} [put]
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req models.IdeaRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	idea, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, idea)
}

// Delete handles DELETE /ideas/{id}
// @Summary Delete idea
// @Description Delete an idea. Admin only.
// @Tags ideas
// @Security ApiKeyAuth
// @Param id path int true "Idea ID"
// @Success 204 "Idea deleted"
// @Failure 404 {object} map[string]string "Idea not found"
// @Router /ideas/{id} [delete]
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
