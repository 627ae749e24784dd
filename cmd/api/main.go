package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cake-manager-api/infrastructure/cache"
	"github.com/vfg2006/cake-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/cake-manager-api/infrastructure/repository"
	"github.com/vfg2006/cake-manager-api/internal/api"
	"github.com/vfg2006/cake-manager-api/internal/config"
	"github.com/vfg2006/cake-manager-api/internal/scheduler"
	"github.com/vfg2006/cake-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
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

	entryRepo := repository.NewEntryRepository(pgConn)
	dayExpenseRepo := repository.NewDayExpenseRepository(pgConn)
	generalExpenseRepo := repository.NewGeneralExpenseRepository(pgConn)
	analyticsMetaRepo := repository.NewAnalyticsMetaRepository(pgConn)

	store := redisStore(ctx, cfg.Redis)
	defer store.Close()

	monthCache := cache.NewMonthCache(store)

	reportingService := reporting.NewService(
		cfg,
		entryRepo,
		dayExpenseRepo,
		generalExpenseRepo,
		analyticsMetaRepo,
		monthCache,
	)

	// Inicializa o agendador de reaquecimento do cache mensal
	monthCacheWarmService := scheduler.NewMonthCacheWarmService(reportingService, cfg)

	// Inicia o agendador em background
	if err := monthCacheWarmService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reaquecimento do cache mensal")
	} else {
		logrus.Info("Agendador de reaquecimento do cache mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		monthCacheWarmService,
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

// redisStore cria o nível durável do cache mensal. Se o Redis estiver
// desabilitado ou indisponível, o cache segue apenas em memória.
func redisStore(ctx context.Context, redisConfig config.Redis) *cache.RedisStore {
	if !redisConfig.Enabled {
		logrus.Info("Redis desabilitado por configuração, cache mensal apenas em memória")
		return nil
	}

	store, err := cache.NewRedisStore(ctx, redisConfig.Addr, redisConfig.TTL)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao conectar ao Redis, cache mensal apenas em memória")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return store
}
