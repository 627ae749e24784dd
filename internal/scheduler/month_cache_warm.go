package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cake-manager-api/internal/config"
	"github.com/vfg2006/cake-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/cake-manager-api/pkg/utils"
)

// MonthCacheWarmConfig representa a configuração do agendador de reaquecimento do cache mensal
type MonthCacheWarmConfig struct {
	CronSchedule  string
	MonthLookback int
	SyncEnabled   bool
	RunOnStartup  bool
}

// MonthCacheWarmService gerencia o agendamento do reaquecimento do cache dos
// meses fechados mais recentes, para que o primeiro relatório do dia não
// pague o custo da busca fria
type MonthCacheWarmService struct {
	scheduler           *gocron.Scheduler
	config              MonthCacheWarmConfig
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthCacheWarmService cria uma nova instância do serviço de reaquecimento do cache mensal
func NewMonthCacheWarmService(
	reporter reporting.Reporter,
	appConfig *config.Config,
) *MonthCacheWarmService {
	// Criar a configuração com base na config global
	warmConfig := MonthCacheWarmConfig{
		CronSchedule:  appConfig.MonthCacheWarm.CronSchedule,
		MonthLookback: appConfig.MonthCacheWarm.MonthLookback,
		SyncEnabled:   appConfig.MonthCacheWarm.Enabled,
		RunOnStartup:  appConfig.MonthCacheWarm.RunOnStartup,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  warmConfig.CronSchedule,
		"month_lookback": warmConfig.MonthLookback,
		"sync_enabled":   warmConfig.SyncEnabled,
		"run_on_startup": warmConfig.RunOnStartup,
	}).Info("Configuração do agendador de reaquecimento do cache mensal carregada")

	return &MonthCacheWarmService{
		scheduler:   scheduler,
		config:      warmConfig,
		reporter:    reporter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MonthCacheWarmService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reaquecimento do cache mensal desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reaquecimento do cache mensal")

	// Agendar o reaquecimento
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmRecentMonths(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reaquecimento do cache mensal: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	if s.config.RunOnStartup {
		go s.warmRecentMonths(ctx)
	}

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reaquecimento do cache mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// warmRecentMonths reaquece o cache dos N meses fechados mais recentes
func (s *MonthCacheWarmService) warmRecentMonths(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reaquecimento do cache mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	months := s.getMonthsToWarm()

	logrus.WithFields(logrus.Fields{
		"months": months,
	}).Info("Iniciando reaquecimento do cache mensal")

	warmed := 0
	for _, ym := range months {
		if err := s.reporter.WarmMonth(ctx, ym); err != nil {
			logrus.WithError(err).WithField("ym", ym).Error("Erro ao reaquecer cache do mês")
			continue
		}
		warmed++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"months":   len(months),
		"warmed":   warmed,
	}).Info("Reaquecimento do cache mensal concluído")

	s.lastSyncCompletedAt = time.Now()
}

// getMonthsToWarm devolve os meses fechados mais recentes, do mais antigo para
// o mais novo. O mês corrente fica de fora: ele nunca é cacheado.
func (s *MonthCacheWarmService) getMonthsToWarm() []string {
	now := time.Now()
	// Ancorar no primeiro dia do mês evita o salto de AddDate em fins de mês
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	months := make([]string, 0, s.config.MonthLookback)
	for i := s.config.MonthLookback; i >= 1; i-- {
		months = append(months, utils.MonthKey(first.AddDate(0, -i, 0)))
	}
	return months
}

// TriggerManualSync inicia manualmente um reaquecimento do cache mensal
func (s *MonthCacheWarmService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reaquecimento do cache mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reaquecimento manual do cache mensal")
	go s.warmRecentMonths(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *MonthCacheWarmService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_month_lookback":    s.config.MonthLookback,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
