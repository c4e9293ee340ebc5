package handler

import (
	"net/http"

	"github.com/growthdesk/growthdesk-api/internal/api/handler/router"
	"github.com/growthdesk/growthdesk-api/internal/config"
	"github.com/growthdesk/growthdesk-api/internal/scheduler"
	"github.com/growthdesk/growthdesk-api/internal/usecases/cataloging"
	"github.com/growthdesk/growthdesk-api/internal/usecases/clienting"
	"github.com/growthdesk/growthdesk-api/internal/usecases/onboarding"
	"github.com/growthdesk/growthdesk-api/internal/usecases/reporting"
	"github.com/growthdesk/growthdesk-api/internal/usecases/scoring"
	"github.com/growthdesk/growthdesk-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service reporting.ReportingService, syncService *scheduler.MonthlyMetricsSyncService, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			// Rota pública protegida por segredo compartilhado no query string
			Path:    "/v1/metrics/refresh",
			Method:  http.MethodPost,
			Handler: RefreshMetrics(service, cfg),
		},
		{
			Path:        "/v1/metrics/status",
			Method:      http.MethodGet,
			Handler:     GetMetricsSyncStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     ListMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Prospects(service scoring.ScoringService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/prospects/score",
			Method:      http.MethodPost,
			Handler:     ScoreProspects(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Clients(service clienting.ClientingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Products(service cataloging.CatalogingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// ClientProducts retorna as rotas de ativação de produtos por cliente
func ClientProducts(service cataloging.CatalogingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/products",
			Method:      http.MethodGet,
			Handler:     ListClientProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/products",
			Method:      http.MethodPost,
			Handler:     ActivateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/products/:product_id",
			Method:      http.MethodDelete,
			Handler:     DeactivateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Onboarding(service onboarding.OnboardingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/onboarding",
			Method:      http.MethodPut,
			Handler:     UpdateOnboarding(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
