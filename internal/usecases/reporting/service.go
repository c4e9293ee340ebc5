package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/growthdesk/growthdesk-api/infrastructure/repository"
	"github.com/growthdesk/growthdesk-api/internal/config"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ReportingService agrega as métricas mensais de receita e churn dos tenants
type ReportingService interface {
	AggregateTenant(ctx context.Context, tenantID string, reference time.Time) (*domain.MonthlyMetric, error)
	AggregateAllTenants(ctx context.Context) (*domain.BatchResult, error)
	ListMetrics(ctx context.Context, tenantID string, limit uint64) ([]*domain.MonthlyMetric, error)
}

type MonthlyMetricsService struct {
	tenantRepo        repository.TenantRepository
	clientRepo        repository.ClientRepository
	clientProductRepo repository.ClientProductRepository
	monthlyMetricRepo repository.MonthlyMetricRepository
	maxConcurrentJobs int
	tenantTimeout     time.Duration
}

func NewMonthlyMetricsService(
	tenantRepo repository.TenantRepository,
	clientRepo repository.ClientRepository,
	clientProductRepo repository.ClientProductRepository,
	monthlyMetricRepo repository.MonthlyMetricRepository,
	appConfig *config.Config,
) *MonthlyMetricsService {
	return &MonthlyMetricsService{
		tenantRepo:        tenantRepo,
		clientRepo:        clientRepo,
		clientProductRepo: clientProductRepo,
		monthlyMetricRepo: monthlyMetricRepo,
		maxConcurrentJobs: appConfig.MonthlyMetricsSync.MaxConcurrentJobs,
		tenantTimeout:     time.Duration(appConfig.MonthlyMetricsSync.TenantTimeoutSecs) * time.Second,
	}
}

// AggregateTenant calcula e grava a linha de métricas do mês de referência
// para um tenant. As fronteiras de mês são sempre calculadas em UTC para que
// o mesmo instante produza o mesmo período em qualquer servidor.
func (s *MonthlyMetricsService) AggregateTenant(ctx context.Context, tenantID string, reference time.Time) (*domain.MonthlyMetric, error) {
	firstOfCurrent := utils.FirstDayOfMonth(reference)
	firstOfNext := firstOfCurrent.AddDate(0, 1, 0)
	firstOfPrevious := firstOfCurrent.AddDate(0, -1, 0)

	totalCustomers, err := s.clientRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar clientes do tenant: %w", err)
	}

	newCustomers, err := s.clientRepo.CountCreatedBetween(ctx, tenantID, firstOfCurrent, firstOfNext)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar clientes novos do período: %w", err)
	}

	// Base de churn: clientes ativos que já existiam antes do mês anterior.
	// A subtração contra o total atual pode ficar negativa em meses de
	// crescimento, por isso o clamp em zero.
	priorMonthActive, err := s.clientRepo.CountActiveCreatedBefore(ctx, tenantID, firstOfPrevious)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar base de clientes do mês anterior: %w", err)
	}

	churnedCustomers := priorMonthActive - totalCustomers
	if churnedCustomers < 0 {
		churnedCustomers = 0
	}

	activations, err := s.clientProductRepo.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ativações do tenant: %w", err)
	}

	totalRevenue := decimal.Zero
	for _, activation := range activations {
		totalRevenue = totalRevenue.Add(activation.MonthlyRevenue())
	}

	metric := &domain.MonthlyMetric{
		TenantID:            tenantID,
		Year:                firstOfCurrent.Year(),
		Month:               int(firstOfCurrent.Month()),
		TotalRevenue:        totalRevenue,
		NewCustomers:        newCustomers,
		ChurnedCustomers:    churnedCustomers,
		TotalCustomers:      totalCustomers,
		TotalActiveProducts: len(activations),
	}

	if err := s.monthlyMetricRepo.SaveOrUpdate(ctx, metric); err != nil {
		return nil, fmt.Errorf("erro ao salvar métricas mensais: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":       tenantID,
		"year":            metric.Year,
		"month":           metric.Month,
		"total_revenue":   metric.TotalRevenue.String(),
		"new_customers":   metric.NewCustomers,
		"churned":         metric.ChurnedCustomers,
		"total_customers": metric.TotalCustomers,
	}).Info("Métricas mensais do tenant salvas com sucesso")

	return metric, nil
}

// AggregateAllTenants processa todos os tenants ativos com um pool limitado
// de workers. A falha de um tenant é registrada no resultado e não
// interrompe os demais.
func (s *MonthlyMetricsService) AggregateAllTenants(ctx context.Context) (*domain.BatchResult, error) {
	startTime := time.Now()

	activeTenants, err := s.tenantRepo.ListTenants(ctx, []domain.TenantStatus{domain.TenantStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lista de tenants para agregação mensal: %w", err)
	}

	if len(activeTenants) == 0 {
		logrus.Info("Nenhum tenant ativo encontrado para agregação mensal")
		return &domain.BatchResult{Failed: []domain.TenantFailure{}, Duration: time.Since(startTime).String()}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_tenants":      len(activeTenants),
		"max_concurrent_jobs": s.maxConcurrentJobs,
	}).Info("Iniciando agregação mensal de métricas para todos os tenants ativos")

	reference := time.Now().UTC()

	semaphore := make(chan struct{}, s.maxConcurrentJobs)
	var wg sync.WaitGroup

	var mu sync.Mutex
	failed := make([]domain.TenantFailure, 0)

	for _, tenant := range activeTenants {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(tenant *domain.Tenant) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			tenantCtx, cancel := context.WithTimeout(ctx, s.tenantTimeout)
			defer cancel()

			if _, err := s.AggregateTenant(tenantCtx, tenant.ID, reference); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"tenant_id":   tenant.ID,
					"tenant_name": tenant.Name,
				}).Error("Erro ao agregar métricas mensais do tenant")

				mu.Lock()
				failed = append(failed, domain.TenantFailure{
					TenantID: tenant.ID,
					Reason:   err.Error(),
				})
				mu.Unlock()
			}
		}(tenant)
	}

	wg.Wait()

	result := &domain.BatchResult{
		Processed: len(activeTenants),
		Succeeded: len(activeTenants) - len(failed),
		Failed:    failed,
		Duration:  time.Since(startTime).String(),
	}

	logrus.WithFields(logrus.Fields{
		"processed": result.Processed,
		"succeeded": result.Succeeded,
		"failed":    len(result.Failed),
		"duration":  result.Duration,
	}).Info("Agregação mensal de métricas concluída")

	return result, nil
}

func (s *MonthlyMetricsService) ListMetrics(ctx context.Context, tenantID string, limit uint64) ([]*domain.MonthlyMetric, error) {
	metrics, err := s.monthlyMetricRepo.ListByTenant(ctx, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar métricas mensais: %w", err)
	}

	return metrics, nil
}
