package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMonthlyMetricsSyncService_syncMonthlyMetrics(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mockReporting *mocks.MockReportingService)
		validate func(t *testing.T, service *MonthlyMetricsSyncService)
	}{
		{
			name: "Agregação com sucesso deve armazenar o último resultado",
			setup: func(mockReporting *mocks.MockReportingService) {
				mockReporting.EXPECT().
					AggregateAllTenants(gomock.Any()).
					Return(&domain.BatchResult{
						Processed: 3,
						Succeeded: 3,
						Failed:    []domain.TenantFailure{},
						Duration:  "120ms",
					}, nil)
			},
			validate: func(t *testing.T, service *MonthlyMetricsSyncService) {
				assert.NotNil(t, service.lastResult)
				assert.Equal(t, 3, service.lastResult.Processed)
				assert.True(t, service.lastResult.AllSucceeded())
				assert.False(t, service.lastSyncStartedAt.IsZero())
				assert.False(t, service.lastSyncCompletedAt.IsZero())
				assert.False(t, service.syncRunning)
			},
		},
		{
			name: "Falhas parciais devem ficar registradas no resultado",
			setup: func(mockReporting *mocks.MockReportingService) {
				mockReporting.EXPECT().
					AggregateAllTenants(gomock.Any()).
					Return(&domain.BatchResult{
						Processed: 2,
						Succeeded: 1,
						Failed: []domain.TenantFailure{
							{TenantID: "ten002", Reason: "deadlock detected"},
						},
						Duration: "85ms",
					}, nil)
			},
			validate: func(t *testing.T, service *MonthlyMetricsSyncService) {
				assert.NotNil(t, service.lastResult)
				assert.False(t, service.lastResult.AllSucceeded())
				assert.Len(t, service.lastResult.Failed, 1)
				assert.Equal(t, "ten002", service.lastResult.Failed[0].TenantID)
			},
		},
		{
			name: "Erro do serviço de agregação não deve armazenar resultado",
			setup: func(mockReporting *mocks.MockReportingService) {
				mockReporting.EXPECT().
					AggregateAllTenants(gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, service *MonthlyMetricsSyncService) {
				assert.Nil(t, service.lastResult)
				assert.False(t, service.syncRunning)
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReporting := mocks.NewMockReportingService(ctrl)
			tt.setup(mockReporting)

			service := &MonthlyMetricsSyncService{
				config: MonthlyMetricsSyncConfig{
					CronSchedule:      "0 5 1 * *",
					MaxConcurrentJobs: 3,
					SyncEnabled:       true,
				},
				reportingService: mockReporting,
			}

			service.syncMonthlyMetrics(context.Background())

			tt.validate(t, service)
		})
	}
}

func TestMonthlyMetricsSyncService_syncMonthlyMetricsAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada esperada: a execução em andamento deve ser respeitada
	mockReporting := mocks.NewMockReportingService(ctrl)

	service := &MonthlyMetricsSyncService{
		reportingService: mockReporting,
		syncRunning:      true,
	}

	service.syncMonthlyMetrics(context.Background())

	assert.True(t, service.syncRunning)
	assert.Nil(t, service.lastResult)
}

func TestMonthlyMetricsSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporting := mocks.NewMockReportingService(ctrl)

	service := &MonthlyMetricsSyncService{
		config: MonthlyMetricsSyncConfig{
			CronSchedule: "0 5 1 * *",
			SyncEnabled:  false,
		},
		reportingService: mockReporting,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.NoError(t, err)
}

func TestMonthlyMetricsSyncService_GetStatus(t *testing.T) {
	startedAt := time.Date(2025, 4, 1, 5, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(2 * time.Minute)

	service := &MonthlyMetricsSyncService{
		config: MonthlyMetricsSyncConfig{
			CronSchedule:      "0 5 1 * *",
			MaxConcurrentJobs: 3,
			SyncEnabled:       true,
		},
		lastSyncStartedAt:   startedAt,
		lastSyncCompletedAt: completedAt,
		lastResult: &domain.BatchResult{
			Processed: 5,
			Succeeded: 5,
			Failed:    []domain.TenantFailure{},
			Duration:  "2m0s",
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 1 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, startedAt, status["last_sync_started_at"])
	assert.Equal(t, completedAt, status["last_sync_completed_at"])
	assert.Equal(t, service.lastResult, status["last_result"])
}
