package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// setupProjectTestRepository creates a project repository with a mock database
func setupProjectTestRepository(t *testing.T) (*projectRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()
	repo := NewProjectRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func projectRows(projects ...*models.Project) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "slug", "description", "long_description",
		"image_url", "demo_url", "github_url", "download_url",
		"is_featured", "created_at", "updated_at",
	})
	for _, p := range projects {
		rows.AddRow(p.ID, p.Title, p.Slug, p.Description, p.LongDescription,
			p.ImageURL, p.DemoURL, p.GithubURL, p.DownloadURL,
			p.IsFeatured, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func TestProjectRepository_GetAll(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	featured := &models.Project{ID: 1, Title: "Featured Project", Slug: "featured-project", Description: "Description here", IsFeatured: true, CreatedAt: now, UpdatedAt: now}
	regular := &models.Project{ID: 2, Title: "Regular Project", Slug: "regular-project", Description: "Description here", CreatedAt: now, UpdatedAt: now}

	t.Run("all projects", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM projects ORDER BY created_at DESC`).
			WillReturnRows(projectRows(regular, featured))

		projects, err := repo.GetAll(context.Background(), false)

		require.NoError(t, err)
		assert.Len(t, projects, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("featured only", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM projects WHERE is_featured = \?`).
			WithArgs(true).
			WillReturnRows(projectRows(featured))

		projects, err := repo.GetAll(context.Background(), true)

		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, *featured, projects[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM projects`).
			WillReturnRows(projectRows())

		projects, err := repo.GetAll(context.Background(), false)

		require.NoError(t, err)
		assert.Empty(t, projects)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM projects`).
			WillReturnError(errors.New("connection refused"))

		projects, err := repo.GetAll(context.Background(), false)

		assert.ErrorIs(t, err, models.ErrInfrastructure)
		assert.Nil(t, projects)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_GetByID(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	stored := &models.Project{ID: 1, Title: "My Project", Slug: "my-project", Description: "Description here", CreatedAt: now, UpdatedAt: now}

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \?`).
			WithArgs(1).
			WillReturnRows(projectRows(stored))

		project, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, stored, project)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM projects WHERE id = \?`).
			WithArgs(99).
			WillReturnRows(projectRows())

		project, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, project)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO projects`).
			WithArgs("My Project", "my-project", "Description here", "", "", "", "", "", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(5, 1))

		project := &models.Project{Title: "My Project", Slug: "my-project", Description: "Description here"}
		err := repo.Create(context.Background(), project)

		require.NoError(t, err)
		assert.Equal(t, 5, project.ID)
		assert.False(t, project.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slug", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO projects`).
			WithArgs("My Project", "my-project", "Description here", "", "", "", "", "", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'my-project' for key 'uq_projects_slug'"})

		project := &models.Project{Title: "My Project", Slug: "my-project", Description: "Description here"}
		err := repo.Create(context.Background(), project)

		assert.ErrorIs(t, err, models.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE projects`).
			WithArgs("My Project", "my-project", "Description here", "", "", "", "", "", true, sqlmock.AnyArg(), 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		project := &models.Project{ID: 1, Title: "My Project", Slug: "my-project", Description: "Description here", IsFeatured: true}
		err := repo.Update(context.Background(), project)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE projects`).
			WithArgs("My Project", "my-project", "Description here", "", "", "", "", "", false, sqlmock.AnyArg(), 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		project := &models.Project{ID: 99, Title: "My Project", Slug: "my-project", Description: "Description here"}
		err := repo.Update(context.Background(), project)

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM projects`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupProjectTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM projects`).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 99), models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
