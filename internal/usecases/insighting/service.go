package insighting

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/infrastructure/repository"
	"github.com/vfg2006/ad-ops-api/internal/config"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/internal/usecases/adsync"
	"github.com/vfg2006/ad-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ad-ops-api/pkg/metrics"
)

var ErrInvalidDateWindow = errors.New("invalid date window")

// Service consulta as métricas direto na plataforma; nada é guardado localmente
type Service struct {
	cfg         *config.Config
	accountRepo repository.AdAccountRepository
	registry    *platform.Registry
	metrics     *metrics.AdSyncMetrics
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AdAccountRepository,
	registry *platform.Registry,
	syncMetrics *metrics.AdSyncMetrics,
) *Service {
	return &Service{
		cfg:         cfg,
		accountRepo: accountRepo,
		registry:    registry,
		metrics:     syncMetrics,
		now:         time.Now,
	}
}

var _ AdMetricsProvider = (*Service)(nil)

func (s *Service) GetAdMetrics(ctx context.Context, accountID string, query domain.MetricsQuery) (map[string]domain.MetricsResult, error) {
	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !s.registry.Capabilities(account.Platform).Metrics {
		return nil, adsync.NewSyncError(adsync.ErrOperationNotSupported, apiErrors.ErrUnsupportedOperation, account.ID, string(account.Platform))
	}

	client, ok := s.registry.Get(account.Platform)
	if !ok {
		return nil, adsync.NewSyncError(adsync.ErrPlatformNotImplemented, apiErrors.ErrUnsupportedPlatform, account.ID, string(account.Platform))
	}

	days := query.Days
	if days <= 0 && query.StartDate == "" && query.EndDate == "" {
		days = s.cfg.Metrics.DefaultDays
	}

	// Janela inválida é erro do pedido, não de cada anúncio
	if _, err := platform.ResolveWindow(days, query.StartDate, query.EndDate, s.now()); err != nil {
		return nil, adsync.NewSyncError(ErrInvalidDateWindow, apiErrors.ErrInvalidFormat, account.ID, err.Error())
	}

	adIDs := uniqueIDs(query.AdIDs)
	if len(adIDs) == 0 {
		return map[string]domain.MetricsResult{}, nil
	}

	results := client.GetMetrics(ctx, platform.MetricsParams{
		Token:     account.AccessToken,
		AccountID: account.AccountID,
		AdIDs:     adIDs,
		Days:      days,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	})

	results = platform.CompleteResults(adIDs, results)

	okCount, failed := 0, 0
	for _, r := range results {
		if r.OK {
			okCount++
		} else {
			failed++
		}
	}
	s.metrics.ObserveMetrics(string(account.Platform), okCount, failed)

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"platform":   account.Platform,
		"ads":        len(adIDs),
		"ok":         okCount,
		"failed":     failed,
	}).Debug("Métricas de anúncios obtidas")

	return results, nil
}

func (s *Service) loadAccount(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	if accountID == "" {
		return nil, adsync.NewSyncError(adsync.ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, adsync.NewSyncError(adsync.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if account == nil {
		return nil, adsync.NewSyncError(adsync.ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "")
	}

	if !account.IsActive {
		return nil, adsync.NewSyncError(adsync.ErrAccountInactive, apiErrors.ErrAccountInactive, account.ID, "")
	}

	return account, nil
}

// uniqueIDs remove vazios e repetidos mantendo a ordem
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))

	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
