package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/internal/config"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// AccountSyncer é a parte do caso de uso de sincronização usada pelo agendador
type AccountSyncer interface {
	ListActiveAccounts(ctx context.Context) ([]*domain.AdAccount, error)
	SyncAccount(ctx context.Context, accountID string, days int) (*domain.SyncSummary, error)
}

// AdSyncConfig representa a configuração do agendador de sincronização de anúncios
type AdSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// RunReport resume a última execução completa
type RunReport struct {
	Accounts  int `json:"accounts"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Rejected  int `json:"rejected"`
}

// AdSyncService refaz periodicamente a sincronização de todas as contas ativas
type AdSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdSyncConfig
	syncer              AccountSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          RunReport
	sleep               func(time.Duration)
}

// NewAdSyncService cria uma nova instância do agendador de sincronização
func NewAdSyncService(syncer AccountSyncer, appConfig *config.Config) *AdSyncService {
	syncConfig := AdSyncConfig{
		CronSchedule:        appConfig.AdSync.CronSchedule,
		RequestDelaySeconds: appConfig.AdSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AdSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AdSync.Enabled,
	}

	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de anúncios carregada")

	return &AdSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		syncer:    syncer,
		sleep:     time.Sleep,
	}
}

// Start inicia o agendador
func (s *AdSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// tryStart marca a execução como em andamento; false se já havia uma
func (s *AdSyncService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *AdSyncService) finish(report RunReport) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReport = report
}

// syncAllAccounts sincroniza todas as contas ativas
func (s *AdSyncService) syncAllAccounts(ctx context.Context) {
	if !s.tryStart() {
		logrus.Info("Sincronização de anúncios já em andamento, ignorando")
		return
	}

	report := s.run(ctx)
	s.finish(report)
}

func (s *AdSyncService) run(ctx context.Context) RunReport {
	startTime := time.Now()
	logrus.Info("Iniciando sincronização de anúncios para todas as contas ativas")

	accounts, err := s.syncer.ListActiveAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para sincronização de anúncios")
		return RunReport{}
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de anúncios")
		return RunReport{}
	}

	var (
		mu     sync.Mutex
		report = RunReport{Accounts: len(accounts)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, account := range accounts {
		account := account
		g.Go(func() error {
			outcome := s.syncAccount(gctx, account)

			mu.Lock()
			switch outcome {
			case outcomeSucceeded:
				report.Succeeded++
			case outcomeFailed:
				report.Failed++
			default:
				report.Rejected++
			}
			mu.Unlock()

			if s.config.RequestDelaySeconds > 0 {
				s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
			}

			// Uma conta com falha não interrompe as outras
			return nil
		})
	}

	_ = g.Wait()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"accounts":  report.Accounts,
		"succeeded": report.Succeeded,
		"failed":    report.Failed,
		"rejected":  report.Rejected,
	}).Info("Sincronização de anúncios concluída")

	return report
}

type outcome int

const (
	outcomeRejected outcome = iota
	outcomeSucceeded
	outcomeFailed
)

func (s *AdSyncService) syncAccount(ctx context.Context, account *domain.AdAccount) outcome {
	logger := logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"platform":     account.Platform,
		"account_name": account.AccountName,
	})

	summary, err := s.syncer.SyncAccount(ctx, account.ID, 0)
	if err != nil {
		logger.WithError(err).Warn("Conta não sincronizada")
		return outcomeRejected
	}

	if !summary.OK {
		logger.WithField("error", summary.Error).Error("Erro ao sincronizar anúncios da conta")
		return outcomeFailed
	}

	return outcomeSucceeded
}

// TriggerManualSync inicia manualmente uma sincronização; false se já havia uma em andamento
func (s *AdSyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryStart() {
		logrus.Info("Sincronização de anúncios já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de anúncios")

	go func() {
		report := s.run(context.WithoutCancel(ctx))
		s.finish(report)
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *AdSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_report":       s.lastReport,
	}
}
