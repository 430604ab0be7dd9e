package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/models"
)

// KPIService is the interface that wraps methods for KPI business logic.
type KPIService interface {
	// Method List retrieves KPIs with computed progress, optionally filtered by category.
	List(ctx context.Context, category string) ([]models.KPIResponse, error)
	// Method Get retrieves a KPI by ID with computed progress.
	Get(ctx context.Context, id int) (*models.KPIResponse, error)
	// Method Create validates and inserts a new KPI.
	Create(ctx context.Context, req *models.KPIRequest) (*models.KPIResponse, error)
	// Method Update validates and applies a full update to an existing KPI.
	Update(ctx context.Context, id int, req *models.KPIRequest) (*models.KPIResponse, error)
	// Method Delete removes a KPI by ID.
	Delete(ctx context.Context, id int) error
}

// KPIHandler handles KPI CRUD requests
type KPIHandler struct {
	BaseHandler
	service KPIService
}

// NewKPIHandler creates a new KPI handler
func NewKPIHandler(service KPIService, logger *zap.Logger) *KPIHandler {
	return &KPIHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all KPI handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *KPIHandler) RegisterRoutes(r chi.Router) {
	r.Route("/kpis", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /kpis
// @Summary List KPIs
// @Description List key performance indicators with computed progress percentage.
// @Tags kpis
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} models.KPIResponse "KPIs"
// @Router /kpis [get]
func (h *KPIHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	kpis, err := h.service.List(r.Context(), category)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, kpis)
}

// Get handles GET /kpis/{id}
// @Summary Get KPI
// @Description Get a key performance indicator by ID with computed progress percentage.
// @Tags kpis
// @Produce json
// @Param id path int true "KPI ID"
// @Success 200 {object} models.KPIResponse "KPI"
// @Failure 404 {object} map[string]string "KPI not found"
// @Router /kpis/{id} [get]
func (h *KPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	kpi, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, kpi)
}

// Create handles POST /kpis
// @Summary Create KPI
// @Description Create a new key performance indicator. Contributor or Admin.
// @Tags kpis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.KPIRequest true "KPI to create"
// @Success 201 {object} models.KPIResponse "Created KPI"
// @Router /kpis [post]
func (h *KPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.UserFromContext(r.Context())
	if err := auth.Authorize(actor, models.RoleContributor, models.RoleAdmin); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	var req models.KPIRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	kpi, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, kpi)
}

// Update handles PUT /kpis/{id}
// @Summary Update KPI
// @Description Update an existing key performance indicator. Contributor or Admin.
// @Tags kpis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "KPI ID"
// @Param request body models.KPIRequest true "KPI fields"
// @Success 200 {object} models.KPIResponse "Updated KPI"
// @Failure 404 {object} map[string]string "KPI not found"
// @Router /kpis/{id} [put]
func (h *KPIHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req models.KPIRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	kpi, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, kpi)
}

// Delete handles DELETE /kpis/{id}
// @Summary Delete KPI
// @Description Delete a key performance indicator. Admin only.
// @Tags kpis
// @Security ApiKeyAuth
// @Param id path int true "KPI ID"
// @Success 204 "KPI deleted"
// @Failure 404 {object} map[string]string "KPI not found"
// @Router /kpis/{id} [delete]
func (h *KPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
