package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/growthdesk/growthdesk-api/infrastructure/repository/mocks"
	"github.com/growthdesk/growthdesk-api/internal/config"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*MonthlyMetricsService, *mocks.MockTenantRepository, *mocks.MockClientRepository, *mocks.MockClientProductRepository, *mocks.MockMonthlyMetricRepository) {
	ctrl := gomock.NewController(t)

	tenantRepo := mocks.NewMockTenantRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	clientProductRepo := mocks.NewMockClientProductRepository(ctrl)
	monthlyMetricRepo := mocks.NewMockMonthlyMetricRepository(ctrl)

	appConfig := &config.Config{
		MonthlyMetricsSync: config.MonthlyMetricsSync{
			MaxConcurrentJobs: 2,
			TenantTimeoutSecs: 5,
		},
	}

	service := NewMonthlyMetricsService(tenantRepo, clientRepo, clientProductRepo, monthlyMetricRepo, appConfig)

	return service, tenantRepo, clientRepo, clientProductRepo, monthlyMetricRepo
}

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestAggregateTenant(t *testing.T) {
	reference := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name             string
		totalCustomers   int
		newCustomers     int
		priorActive      int
		activations      []*domain.ActivationEntry
		expectedChurned  int
		expectedRevenue  string
		expectedProducts int
	}{
		{
			name:           "base maior que o total gera churn positivo",
			totalCustomers: 3,
			newCustomers:   1,
			priorActive:    5,
			activations: []*domain.ActivationEntry{
				{ClientID: "cli001", ProductID: "prd001", Price: decimalPtr("1500.00")},
			},
			expectedChurned:  2,
			expectedRevenue:  "1500",
			expectedProducts: 1,
		},
		{
			name:             "crescimento não produz churn negativo",
			totalCustomers:   6,
			newCustomers:     2,
			priorActive:      5,
			activations:      []*domain.ActivationEntry{},
			expectedChurned:  0,
			expectedRevenue:  "0",
			expectedProducts: 0,
		},
		{
			name:           "receita usa o preço sugerido quando o acordado está ausente",
			totalCustomers: 2,
			newCustomers:   0,
			priorActive:    2,
			activations: []*domain.ActivationEntry{
				{ClientID: "cli001", ProductID: "prd001", Price: decimalPtr("1200.50")},
				{ClientID: "cli002", ProductID: "prd002", SuggestedPrice: decimalPtr("800.00")},
				{ClientID: "cli002", ProductID: "prd003"},
			},
			expectedChurned:  0,
			expectedRevenue:  "2000.5",
			expectedProducts: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, clientRepo, clientProductRepo, monthlyMetricRepo := newTestService(t)

			firstOfCurrent := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
			firstOfNext := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
			firstOfPrevious := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

			clientRepo.EXPECT().
				CountByTenant(gomock.Any(), "ten001").
				Return(tt.totalCustomers, nil)

			clientRepo.EXPECT().
				CountCreatedBetween(gomock.Any(), "ten001", firstOfCurrent, firstOfNext).
				Return(tt.newCustomers, nil)

			clientRepo.EXPECT().
				CountActiveCreatedBefore(gomock.Any(), "ten001", firstOfPrevious).
				Return(tt.priorActive, nil)

			clientProductRepo.EXPECT().
				ListActiveByTenant(gomock.Any(), "ten001").
				Return(tt.activations, nil)

			var saved *domain.MonthlyMetric
			monthlyMetricRepo.EXPECT().
				SaveOrUpdate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, metric *domain.MonthlyMetric) error {
					saved = metric
					return nil
				})

			metric, err := service.AggregateTenant(context.Background(), "ten001", reference)

			require.NoError(t, err)
			require.NotNil(t, metric)
			assert.Equal(t, 2025, metric.Year)
			assert.Equal(t, 3, metric.Month)
			assert.Equal(t, tt.expectedChurned, metric.ChurnedCustomers)
			assert.Equal(t, tt.newCustomers, metric.NewCustomers)
			assert.Equal(t, tt.totalCustomers, metric.TotalCustomers)
			assert.Equal(t, tt.expectedProducts, metric.TotalActiveProducts)
			assert.Equal(t, tt.expectedRevenue, metric.TotalRevenue.String())
			assert.Equal(t, saved, metric)
		})
	}
}

// A fronteira de mês é calculada em UTC independentemente do fuso do instante
func TestAggregateTenantUsesUTCMonthBoundary(t *testing.T) {
	service, _, clientRepo, clientProductRepo, monthlyMetricRepo := newTestService(t)

	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	// 23h de 31 de março em São Paulo já é 1º de abril em UTC
	reference := time.Date(2025, time.March, 31, 23, 0, 0, 0, saoPaulo)

	firstOfCurrent := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	firstOfNext := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	firstOfPrevious := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	clientRepo.EXPECT().CountByTenant(gomock.Any(), "ten001").Return(0, nil)
	clientRepo.EXPECT().CountCreatedBetween(gomock.Any(), "ten001", firstOfCurrent, firstOfNext).Return(0, nil)
	clientRepo.EXPECT().CountActiveCreatedBefore(gomock.Any(), "ten001", firstOfPrevious).Return(0, nil)
	clientProductRepo.EXPECT().ListActiveByTenant(gomock.Any(), "ten001").Return([]*domain.ActivationEntry{}, nil)
	monthlyMetricRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

	metric, err := service.AggregateTenant(context.Background(), "ten001", reference)

	require.NoError(t, err)
	assert.Equal(t, 2025, metric.Year)
	assert.Equal(t, 4, metric.Month)
}

func TestAggregateTenantRepositoryError(t *testing.T) {
	service, _, clientRepo, _, _ := newTestService(t)

	clientRepo.EXPECT().
		CountByTenant(gomock.Any(), "ten001").
		Return(0, errors.New("connection refused"))

	metric, err := service.AggregateTenant(context.Background(), "ten001", time.Now().UTC())

	require.Error(t, err)
	assert.Nil(t, metric)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAggregateAllTenants(t *testing.T) {
	tenants := []*domain.Tenant{
		{ID: "ten001", Name: "Agência Um", Status: domain.TenantStatusActive},
		{ID: "ten002", Name: "Agência Dois", Status: domain.TenantStatusActive},
		{ID: "ten003", Name: "Agência Três", Status: domain.TenantStatusActive},
	}

	t.Run("todos os tenants com sucesso", func(t *testing.T) {
		service, tenantRepo, clientRepo, clientProductRepo, monthlyMetricRepo := newTestService(t)

		tenantRepo.EXPECT().
			ListTenants(gomock.Any(), []domain.TenantStatus{domain.TenantStatusActive}).
			Return(tenants, nil)

		clientRepo.EXPECT().CountByTenant(gomock.Any(), gomock.Any()).Return(2, nil).Times(3)
		clientRepo.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil).Times(3)
		clientRepo.EXPECT().CountActiveCreatedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil).Times(3)
		clientProductRepo.EXPECT().ListActiveByTenant(gomock.Any(), gomock.Any()).Return([]*domain.ActivationEntry{}, nil).Times(3)
		monthlyMetricRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		result, err := service.AggregateAllTenants(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, result.Processed)
		assert.Equal(t, 3, result.Succeeded)
		assert.Empty(t, result.Failed)
		assert.True(t, result.AllSucceeded())
	})

	t.Run("falha de um tenant não interrompe os demais", func(t *testing.T) {
		service, tenantRepo, clientRepo, clientProductRepo, monthlyMetricRepo := newTestService(t)

		tenantRepo.EXPECT().
			ListTenants(gomock.Any(), []domain.TenantStatus{domain.TenantStatusActive}).
			Return(tenants, nil)

		clientRepo.EXPECT().
			CountByTenant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tenantID string) (int, error) {
				if tenantID == "ten002" {
					return 0, errors.New("deadlock detected")
				}
				return 2, nil
			}).
			Times(3)

		clientRepo.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil).Times(2)
		clientRepo.EXPECT().CountActiveCreatedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil).Times(2)
		clientProductRepo.EXPECT().ListActiveByTenant(gomock.Any(), gomock.Any()).Return([]*domain.ActivationEntry{}, nil).Times(2)
		monthlyMetricRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := service.AggregateAllTenants(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, result.Processed)
		assert.Equal(t, 2, result.Succeeded)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "ten002", result.Failed[0].TenantID)
		assert.Contains(t, result.Failed[0].Reason, "deadlock detected")
		assert.False(t, result.AllSucceeded())
	})

	t.Run("nenhum tenant ativo", func(t *testing.T) {
		service, tenantRepo, _, _, _ := newTestService(t)

		tenantRepo.EXPECT().
			ListTenants(gomock.Any(), []domain.TenantStatus{domain.TenantStatusActive}).
			Return([]*domain.Tenant{}, nil)

		result, err := service.AggregateAllTenants(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, result.Processed)
		assert.True(t, result.AllSucceeded())
	})

	t.Run("erro ao listar tenants aborta o lote", func(t *testing.T) {
		service, tenantRepo, _, _, _ := newTestService(t)

		tenantRepo.EXPECT().
			ListTenants(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		result, err := service.AggregateAllTenants(context.Background())

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestListMetrics(t *testing.T) {
	service, _, _, _, monthlyMetricRepo := newTestService(t)

	expected := []*domain.MonthlyMetric{
		{TenantID: "ten001", Year: 2025, Month: 3, TotalRevenue: decimal.RequireFromString("3200.00")},
		{TenantID: "ten001", Year: 2025, Month: 2, TotalRevenue: decimal.RequireFromString("2800.00")},
	}

	monthlyMetricRepo.EXPECT().
		ListByTenant(gomock.Any(), "ten001", uint64(12)).
		Return(expected, nil)

	metrics, err := service.ListMetrics(context.Background(), "ten001", 12)

	require.NoError(t, err)
	assert.Equal(t, expected, metrics)
}
