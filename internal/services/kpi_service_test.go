package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/models"
)

// mockKPIRepository is a mock implementation of KPIRepository
type mockKPIRepository struct {
	kpis []models.KPI
	kpi  *models.KPI
	err  error
}

func (m *mockKPIRepository) GetAll(ctx context.Context, category string) ([]models.KPI, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.kpis, nil
}

func (m *mockKPIRepository) GetByID(ctx context.Context, id int) (*models.KPI, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.kpi, nil
}

func (m *mockKPIRepository) Create(ctx context.Context, kpi *models.KPI) error {
	if m.err != nil {
		return m.err
	}
	kpi.ID = 1
	return nil
}

func (m *mockKPIRepository) Update(ctx context.Context, kpi *models.KPI) error {
	return m.err
}

func (m *mockKPIRepository) Delete(ctx context.Context, id int) error {
	return m.err
}

func newTestKPIService(repo *mockKPIRepository) *kpiService {
	logger, _ := zap.NewDevelopment()
	return NewKPIService(repo, logger)
}

func TestKPIService_List(t *testing.T) {
	target := 200.0
	repo := &mockKPIRepository{kpis: []models.KPI{
		{ID: 1, Title: "Revenue", TargetValue: &target, CurrentValue: 50},
		{ID: 2, Title: "Leads", CurrentValue: 10},
	}}
	svc := newTestKPIService(repo)

	kpis, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, kpis, 2)
	assert.InDelta(t, 25, kpis[0].ProgressPercentage, 1e-9)
	assert.InDelta(t, 0, kpis[1].ProgressPercentage, 1e-9) // no target
}

func TestKPIService_Get(t *testing.T) {
	target := 100.0
	repo := &mockKPIRepository{kpi: &models.KPI{ID: 1, Title: "Revenue", TargetValue: &target, CurrentValue: 150}}
	svc := newTestKPIService(repo)

	kpi, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.InDelta(t, 100, kpi.ProgressPercentage, 1e-9) // clamped
}

func TestKPIService_Create(t *testing.T) {
	t.Run("success includes computed progress", func(t *testing.T) {
		target := 100.0
		svc := newTestKPIService(&mockKPIRepository{})

		kpi, err := svc.Create(context.Background(), &models.KPIRequest{Title: "Revenue", TargetValue: &target, CurrentValue: 30})

		require.NoError(t, err)
		assert.Equal(t, 1, kpi.ID)
		assert.InDelta(t, 30, kpi.ProgressPercentage, 1e-9)
	})

	t.Run("negative target rejected", func(t *testing.T) {
		target := -5.0
		svc := newTestKPIService(&mockKPIRepository{})

		kpi, err := svc.Create(context.Background(), &models.KPIRequest{Title: "Revenue", TargetValue: &target})

		assert.Error(t, err)
		assert.Nil(t, kpi)
	})
}

func TestKPIService_Update(t *testing.T) {
	t.Run("missing kpi propagates not found", func(t *testing.T) {
		svc := newTestKPIService(&mockKPIRepository{err: models.ErrNotFound})

		kpi, err := svc.Update(context.Background(), 99, &models.KPIRequest{Title: "Revenue"})

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, kpi)
	})
}
