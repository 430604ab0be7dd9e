package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

type mockExpiredSessionCleaner struct {
	mu      sync.Mutex
	deleted int64
	err     error
	calls   int
}

func (m *mockExpiredSessionCleaner) CleanupExpired(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return m.deleted, nil
}

func (m *mockExpiredSessionCleaner) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestNewSessionJanitor(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("accepts cron descriptors", func(t *testing.T) {
		janitor, err := NewSessionJanitor(&mockExpiredSessionCleaner{}, "@hourly", logger)
		require.NoError(t, err)
		assert.NotNil(t, janitor)
	})

	t.Run("accepts five-field expressions", func(t *testing.T) {
		_, err := NewSessionJanitor(&mockExpiredSessionCleaner{}, "*/15 * * * *", logger)
		assert.NoError(t, err)
	})

	t.Run("rejects malformed schedule", func(t *testing.T) {
		_, err := NewSessionJanitor(&mockExpiredSessionCleaner{}, "not-a-schedule", logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not-a-schedule")
	})
}

func TestSessionJanitor_RunOnce(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("cleans expired sessions", func(t *testing.T) {
		cleaner := &mockExpiredSessionCleaner{deleted: 4}
		janitor, err := NewSessionJanitor(cleaner, "@hourly", logger)
		require.NoError(t, err)

		janitor.runOnce()

		assert.Equal(t, 1, cleaner.callCount())
	})

	t.Run("cleanup failure is logged, not fatal", func(t *testing.T) {
		cleaner := &mockExpiredSessionCleaner{err: models.ErrInfrastructure}
		janitor, err := NewSessionJanitor(cleaner, "@hourly", logger)
		require.NoError(t, err)

		janitor.runOnce()
		janitor.runOnce()

		assert.Equal(t, 2, cleaner.callCount())
	})
}

func TestSessionJanitor_StartStop(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	cleaner := &mockExpiredSessionCleaner{}
	janitor, err := NewSessionJanitor(cleaner, "@hourly", logger)
	require.NoError(t, err)

	janitor.Start()
	janitor.Stop()

	// Stop returns only after any in-flight run has finished; no run was
	// due within the hourly schedule
	assert.Equal(t, 0, cleaner.callCount())
}
