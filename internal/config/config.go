package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	MetricsRefresh     MetricsRefresh     `mapstructure:",squash"`
	MonthlyMetricsSync MonthlyMetricsSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda o segredo de assinatura dos JWTs emitidos pelo provedor de
// autenticação hospedado. A API apenas valida os tokens, nunca os emite.
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// MetricsRefresh protege o endpoint de disparo manual da agregação mensal
type MetricsRefresh struct {
	Secret string `mapstructure:"metrics_refresh_secret"`
}

type MonthlyMetricsSync struct {
	CronSchedule      string `mapstructure:"monthly_metrics_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"monthly_metrics_sync_max_concurrent_jobs"`
	TenantTimeoutSecs int    `mapstructure:"monthly_metrics_sync_tenant_timeout_seconds"`
	Enabled           bool   `mapstructure:"monthly_metrics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/growthdesk")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("METRICS_REFRESH_SECRET", "your_refresh_secret")

	// Defaults para a agregação mensal de métricas
	viper.SetDefault("MONTHLY_METRICS_SYNC_CRON", "0 5 1 * *")          // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_METRICS_SYNC_MAX_CONCURRENT_JOBS", 3)     // 3 tenants concorrentes
	viper.SetDefault("MONTHLY_METRICS_SYNC_TENANT_TIMEOUT_SECONDS", 30) // Timeout das consultas de um tenant
	viper.SetDefault("MONTHLY_METRICS_SYNC_ENABLED", false)             // Habilitar agregação agendada

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
