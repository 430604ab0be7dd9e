package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/models"
)

type mockProjectService struct {
	projects []models.Project
	project  *models.Project
	err      error

	listedFeatured bool
	createdReq     *models.ProjectRequest
	updatedID      int
	deletedID      int
}

func (m *mockProjectService) List(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	m.listedFeatured = featuredOnly
	if m.err != nil {
		return nil, m.err
	}
	return m.projects, nil
}

func (m *mockProjectService) Get(ctx context.Context, id int) (*models.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockProjectService) Create(ctx context.Context, req *models.ProjectRequest) (*models.Project, error) {
	m.createdReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockProjectService) Update(ctx context.Context, id int, req *models.ProjectRequest) (*models.Project, error) {
	m.updatedID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

func (m *mockProjectService) Delete(ctx context.Context, id int) error {
	m.deletedID = id
	return m.err
}

func newProjectTestRouter(service *mockProjectService) chi.Router {
	logger, _ := zap.NewDevelopment()
	handler := NewProjectHandler(service, logger)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

// requestAs builds a request carrying the given actor's identity. A nil
// actor yields an anonymous request.
func requestAs(actor *models.User, method, target string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if actor != nil {
		req = req.WithContext(auth.ContextWithUser(req.Context(), actor))
	}
	return req
}

const validProjectBody = `{
	"title": "Portfolio Site",
	"slug": "portfolio-site",
	"description": "A personal portfolio website with project showcases",
	"is_featured": true
}`

func TestProjectHandler_WriteAuthorization(t *testing.T) {
	admin := &models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin}
	contributor := &models.User{ID: 2, Email: "contributor@example.com", Role: models.RoleContributor}
	viewer := &models.User{ID: 3, Email: "viewer@example.com", Role: models.RoleViewer}

	tests := []struct {
		name           string
		actor          *models.User
		method         string
		target         string
		body           string
		expectedStatus int
	}{
		{
			name:           "anonymous create",
			actor:          nil,
			method:         http.MethodPost,
			target:         "/projects/",
			body:           validProjectBody,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "viewer create",
			actor:          viewer,
			method:         http.MethodPost,
			target:         "/projects/",
			body:           validProjectBody,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "contributor create",
			actor:          contributor,
			method:         http.MethodPost,
			target:         "/projects/",
			body:           validProjectBody,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "admin create",
			actor:          admin,
			method:         http.MethodPost,
			target:         "/projects/",
			body:           validProjectBody,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "contributor update",
			actor:          contributor,
			method:         http.MethodPut,
			target:         "/projects/5",
			body:           validProjectBody,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "viewer update",
			actor:          viewer,
			method:         http.MethodPut,
			target:         "/projects/5",
			body:           validProjectBody,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "contributor delete",
			actor:          contributor,
			method:         http.MethodDelete,
			target:         "/projects/5",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin delete",
			actor:          admin,
			method:         http.MethodDelete,
			target:         "/projects/5",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "anonymous delete",
			actor:          nil,
			method:         http.MethodDelete,
			target:         "/projects/5",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockProjectService{
				project: &models.Project{ID: 5, Title: "Portfolio Site", Slug: "portfolio-site"},
			}
			router := newProjectTestRouter(service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, requestAs(tt.actor, tt.method, tt.target, tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			// Denied writes must never reach the service
			if tt.expectedStatus == http.StatusUnauthorized || tt.expectedStatus == http.StatusForbidden {
				assert.Nil(t, service.createdReq)
				assert.Zero(t, service.updatedID)
				assert.Zero(t, service.deletedID)
			}
		})
	}
}

func TestProjectHandler_List(t *testing.T) {
	t.Run("public read without identity", func(t *testing.T) {
		service := &mockProjectService{
			projects: []models.Project{
				{ID: 2, Title: "Second", Slug: "second"},
				{ID: 1, Title: "First", Slug: "first"},
			},
		}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(nil, http.MethodGet, "/projects/", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, service.listedFeatured)

		var projects []models.Project
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&projects))
		assert.Len(t, projects, 2)
	})

	t.Run("featured filter", func(t *testing.T) {
		service := &mockProjectService{projects: []models.Project{}}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(nil, http.MethodGet, "/projects/?featured=true", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, service.listedFeatured)
	})

	t.Run("database unavailable", func(t *testing.T) {
		service := &mockProjectService{err: models.ErrInfrastructure}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(nil, http.MethodGet, "/projects/", ""))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestProjectHandler_Get(t *testing.T) {
	t.Run("existing project", func(t *testing.T) {
		service := &mockProjectService{
			project: &models.Project{ID: 5, Title: "Portfolio Site", Slug: "portfolio-site"},
		}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(nil, http.MethodGet, "/projects/5", ""))

		assert.Equal(t, http.StatusOK, rec.Code)

		var project models.Project
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&project))
		assert.Equal(t, "portfolio-site", project.Slug)
	})

	t.Run("not found", func(t *testing.T) {
		service := &mockProjectService{err: models.ErrNotFound}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(nil, http.MethodGet, "/projects/999", ""))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := newProjectTestRouter(&mockProjectService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(nil, http.MethodGet, "/projects/abc", ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProjectHandler_Create(t *testing.T) {
	contributor := &models.User{ID: 2, Email: "contributor@example.com", Role: models.RoleContributor}

	t.Run("duplicate slug", func(t *testing.T) {
		service := &mockProjectService{err: models.ErrConflict}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(contributor, http.MethodPost, "/projects/", validProjectBody))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		service := &mockProjectService{err: models.NewValidationError("slug", "slug is required")}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(contributor, http.MethodPost, "/projects/", `{"title":"No Slug"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "slug is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		service := &mockProjectService{}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(contributor, http.MethodPost, "/projects/", `{"title":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, service.createdReq)
	})
}

func TestProjectHandler_Update(t *testing.T) {
	admin := &models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin}

	t.Run("not found", func(t *testing.T) {
		service := &mockProjectService{err: models.ErrNotFound}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(admin, http.MethodPut, "/projects/999", validProjectBody))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 999, service.updatedID)
	})
}

func TestProjectHandler_Delete(t *testing.T) {
	admin := &models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin}

	t.Run("not found", func(t *testing.T) {
		service := &mockProjectService{err: models.ErrNotFound}
		router := newProjectTestRouter(service)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, requestAs(admin, http.MethodDelete, "/projects/999", ""))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
