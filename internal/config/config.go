package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Reporting      Reporting      `mapstructure:",squash"`
	MonthCacheWarm MonthCacheWarm `mapstructure:",squash"`
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

type Redis struct {
	Addr       string        `mapstructure:"redis_addr"`
	TTLMinutes int           `mapstructure:"redis_ttl_minutes"`
	TTL        time.Duration `mapstructure:"-"`
	Enabled    bool          `mapstructure:"redis_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Reporting struct {
	MaxConcurrentMonths int `mapstructure:"reporting_max_concurrent_months"`
}

type MonthCacheWarm struct {
	CronSchedule  string `mapstructure:"month_cache_warm_cron"`
	MonthLookback int    `mapstructure:"month_cache_warm_month_lookback"`
	Enabled       bool   `mapstructure:"month_cache_warm_enabled"`
	RunOnStartup  bool   `mapstructure:"month_cache_warm_run_on_startup"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cakemanager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_TTL_MINUTES", 24*60) // Entradas expiram em 24h
	viper.SetDefault("REDIS_ENABLED", true)

	viper.SetDefault("REPORTING_MAX_CONCURRENT_MONTHS", 4) // Meses buscados em paralelo por intervalo

	// Defaults para reaquecimento do cache mensal
	viper.SetDefault("MONTH_CACHE_WARM_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("MONTH_CACHE_WARM_MONTH_LOOKBACK", 3) // 3 meses fechados mais recentes
	viper.SetDefault("MONTH_CACHE_WARM_ENABLED", false)
	viper.SetDefault("MONTH_CACHE_WARM_RUN_ON_STARTUP", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Redis.TTL = time.Duration(config.Redis.TTLMinutes) * time.Minute

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
