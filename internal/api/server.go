package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/growthdesk/growthdesk-api/internal/api/handler"
	"github.com/growthdesk/growthdesk-api/internal/api/handler/router"
	"github.com/growthdesk/growthdesk-api/internal/config"
	"github.com/growthdesk/growthdesk-api/internal/scheduler"
	"github.com/growthdesk/growthdesk-api/internal/usecases/cataloging"
	"github.com/growthdesk/growthdesk-api/internal/usecases/clienting"
	"github.com/growthdesk/growthdesk-api/internal/usecases/onboarding"
	"github.com/growthdesk/growthdesk-api/internal/usecases/reporting"
	"github.com/growthdesk/growthdesk-api/internal/usecases/scoring"
	"github.com/growthdesk/growthdesk-api/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportingService reporting.ReportingService,
	scoringService scoring.ScoringService,
	clientingService clienting.ClientingService,
	catalogingService cataloging.CatalogingService,
	onboardingService onboarding.OnboardingService,
	monthlyMetricsSyncService *scheduler.MonthlyMetricsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MonthlyMetricsSyncService: monthlyMetricsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(reportingService, monthlyMetricsSyncService, config)...),
		router.WithRoutes(handler.Prospects(scoringService)...),
		router.WithRoutes(handler.Clients(clientingService)...),
		router.WithRoutes(handler.Products(catalogingService)...),
		router.WithRoutes(handler.ClientProducts(catalogingService)...),
		router.WithRoutes(handler.Onboarding(onboardingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
