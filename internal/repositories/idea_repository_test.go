package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// setupIdeaTestRepository creates an idea repository with a mock database
func setupIdeaTestRepository(t *testing.T) (*ideaRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()
	repo := NewIdeaRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func ideaRows(ideas ...*models.Idea) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "status", "priority", "created_at", "updated_at",
	})
	for _, i := range ideas {
		rows.AddRow(i.ID, i.Title, i.Description, i.Status, i.Priority, i.CreatedAt, i.UpdatedAt)
	}
	return rows
}

func TestIdeaRepository_GetAll(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	urgent := &models.Idea{ID: 1, Title: "Urgent idea", Status: models.IdeaStatusNew, Priority: 5, CreatedAt: now, UpdatedAt: now}
	backlog := &models.Idea{ID: 2, Title: "Backlog idea", Status: models.IdeaStatusInProgress, Priority: 1, CreatedAt: now, UpdatedAt: now}

	t.Run("all ideas ordered by priority", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM ideas ORDER BY priority DESC, created_at DESC`).
			WillReturnRows(ideaRows(urgent, backlog))

		ideas, err := repo.GetAll(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, ideas, 2)
		assert.Equal(t, "Urgent idea", ideas[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status filter", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM ideas WHERE status = \? ORDER BY priority DESC, created_at DESC`).
			WithArgs(models.IdeaStatusNew).
			WillReturnRows(ideaRows(urgent))

		ideas, err := repo.GetAll(context.Background(), models.IdeaStatusNew)

		require.NoError(t, err)
		assert.Len(t, ideas, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM ideas`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetAll(context.Background(), "")

		assert.ErrorIs(t, err, models.ErrInfrastructure)
	})
}

func TestIdeaRepository_GetByID(t *testing.T) {
	t.Run("existing idea", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		now := time.Now().UTC().Truncate(time.Second)
		idea := &models.Idea{ID: 5, Title: "Found idea", Status: models.IdeaStatusNew, Priority: 3, CreatedAt: now, UpdatedAt: now}

		mock.ExpectQuery(`SELECT .+ FROM ideas WHERE id = \?`).
			WithArgs(5).
			WillReturnRows(ideaRows(idea))

		found, err := repo.GetByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, "Found idea", found.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM ideas WHERE id = \?`).
			WithArgs(999).
			WillReturnRows(ideaRows())

		_, err := repo.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestIdeaRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupIdeaTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO ideas`).
		WithArgs("New idea", "A description", models.IdeaStatusNew, 3, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	idea := &models.Idea{Title: "New idea", Description: "A description", Status: models.IdeaStatusNew, Priority: 3}
	err := repo.Create(context.Background(), idea)

	require.NoError(t, err)
	assert.Equal(t, 7, idea.ID)
	assert.False(t, idea.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdeaRepository_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE ideas SET`).
			WithArgs("Revised idea", "", models.IdeaStatusCompleted, 2, sqlmock.AnyArg(), 5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		idea := &models.Idea{ID: 5, Title: "Revised idea", Status: models.IdeaStatusCompleted, Priority: 2}
		err := repo.Update(context.Background(), idea)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE ideas SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &models.Idea{ID: 999, Title: "Missing"})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestIdeaRepository_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM ideas WHERE id = \?`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 5)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupIdeaTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM ideas WHERE id = \?`).
			WithArgs(999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
