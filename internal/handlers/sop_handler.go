package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/models"
)

// SOPService is the interface that wraps methods for SOP business logic.
type SOPService interface {
	// Method List retrieves SOPs, optionally filtered by category.
	List(ctx context.Context, category string) ([]models.SOP, error)
	// Method Get retrieves an SOP by ID.
	Get(ctx context.Context, id int) (*models.SOP, error)
	// Method Create validates and inserts a new SOP.
	Create(ctx context.Context, req *models.SOPRequest) (*models.SOP, error)
	// Method Update validates and applies a full update to an existing SOP.
	Update(ctx context.Context, id int, req *models.SOPRequest) (*models.SOP, error)
	// Method Delete removes an SOP by ID.
	Delete(ctx context.Context, id int) error
}

// SOPHandler handles SOP CRUD requests
type SOPHandler struct {
	BaseHandler
	service SOPService
}

// NewSOPHandler creates a new SOP handler
func NewSOPHandler(service SOPService, logger *zap.Logger) *SOPHandler {
	return &SOPHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all SOP handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *SOPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/sops", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /sops
// @Summary List SOPs
// @Description List standard operating procedures, optionally filtered by category.
// @Tags sops
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} models.SOP "SOPs"
// @Router /sops [get]
func (h *SOPHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	sops, err := h.service.List(r.Context(), category)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, sops)
}

// Get handles GET /sops/{id}
// @Summary Get SOP
// @Description Get a standard operating procedure by ID.
// @Tags sops
// @Produce json
// @Param id path int true "SOP ID"
// @Success 200 {object} models.SOP "SOP"
// @Failure 404 {object} map[string]string "SOP not found"
// @Router /sops/{id} [get]
func (h *SOPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	sop, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, sop)
}

// Create handles POST /sops
// @Summary Create SOP
// @Description Create a new standard operating procedure. Contributor or Admin.
// @Tags sops
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SOPRequest true "SOP to create"
// @Success 201 {object} models.SOP "Created SOP"
// @Router /sops [post]
func (h *SOPHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleContributor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.SOPRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	sop, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, sop)
}

// Update handles PUT /sops/{id}
// @Summary Update SOP
// @Description Update an existing standard operating procedure. Contributor or Admin.
// @Tags sops
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "SOP ID"
// @Param request body models.SOPRequest true "SOP fields"
// @Success 200 {object} models.SOP "Updated SOP"
// @Failure 404 {object} map[string]string "SOP not found"
// @Router /sops/{id} [put]
func (h *SOPHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req models.SOPRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	sop, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, sop)
}

// Delete handles DELETE /sops/{id}
// @Summary Delete SOP
// @Description Delete a standard operating procedure. Admin only.
// @Tags sops
// @Security ApiKeyAuth
// @Param id path int true "SOP ID"
// @Success 204 "SOP deleted"
// @Failure 404 {object} map[string]string "SOP not found"
// @Router /sops/{id} [delete]
func (h *SOPHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
