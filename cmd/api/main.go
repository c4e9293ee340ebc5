package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/growthdesk/growthdesk-api/infrastructure/database/postgres"
	"github.com/growthdesk/growthdesk-api/infrastructure/repository"
	"github.com/growthdesk/growthdesk-api/internal/api"
	"github.com/growthdesk/growthdesk-api/internal/config"
	"github.com/growthdesk/growthdesk-api/internal/scheduler"
	"github.com/growthdesk/growthdesk-api/internal/usecases/cataloging"
	"github.com/growthdesk/growthdesk-api/internal/usecases/clienting"
	"github.com/growthdesk/growthdesk-api/internal/usecases/onboarding"
	"github.com/growthdesk/growthdesk-api/internal/usecases/reporting"
	"github.com/growthdesk/growthdesk-api/internal/usecases/scoring"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	clientProductRepo := repository.NewClientProductRepository(pgConn)
	monthlyMetricRepo := repository.NewMonthlyMetricRepository(pgConn)

	reportingService := reporting.NewMonthlyMetricsService(
		tenantRepo,
		clientRepo,
		clientProductRepo,
		monthlyMetricRepo,
		cfg,
	)

	scoringService := scoring.NewOpportunityScoringService()
	clientingService := clienting.NewService(clientRepo)
	catalogingService := cataloging.NewService(productRepo, clientRepo, clientProductRepo)
	onboardingService := onboarding.NewService(tenantRepo)

	// Inicializa o agendador da agregação mensal de métricas
	monthlyMetricsSyncService := scheduler.NewMonthlyMetricsSyncService(reportingService, cfg)

	if err := monthlyMetricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de agregação mensal de métricas")
	} else {
		logrus.Info("Agendador de agregação mensal de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		scoringService,
		clientingService,
		catalogingService,
		onboardingService,
		monthlyMetricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
