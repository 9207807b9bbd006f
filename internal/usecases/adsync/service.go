package adsync

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/infrastructure/repository"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ad-ops-api/pkg/metrics"
	"github.com/vfg2006/ad-ops-api/pkg/utils"
)

type AdSyncService interface {
	SyncAccount(ctx context.Context, accountID string, days int) (*domain.SyncSummary, error)
	ListActiveAccounts(ctx context.Context) ([]*domain.AdAccount, error)
	ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error)
	ListAds(ctx context.Context, accountID string) ([]domain.Ad, error)
	PauseAd(ctx context.Context, accountID, adID string) (domain.ActionResult, error)
	ReactivateAd(ctx context.Context, accountID, adID string) (domain.ActionResult, error)
	ValidateToken(ctx context.Context, p domain.Platform, token, vendorAccountID string) (bool, error)
	Platforms() []domain.PlatformInfo
	AccountOwner(ctx context.Context, accountID string) (string, error)
}

type Service struct {
	accountRepo repository.AdAccountRepository
	store       repository.AdStore
	registry    *platform.Registry
	metrics     *metrics.AdSyncMetrics
	now         func() time.Time
}

func NewService(
	accountRepo repository.AdAccountRepository,
	store repository.AdStore,
	registry *platform.Registry,
	syncMetrics *metrics.AdSyncMetrics,
) *Service {
	return &Service{
		accountRepo: accountRepo,
		store:       store,
		registry:    registry,
		metrics:     syncMetrics,
		now:         time.Now,
	}
}

var _ AdSyncService = (*Service)(nil)

// SyncAccount executa a sincronização completa de uma conta, levando o status de
// pending/success/error para syncing e depois para success ou error.
// Uma falha da plataforma não é erro Go: vem no resumo com OK false.
func (s *Service) SyncAccount(ctx context.Context, accountID string, days int) (*domain.SyncSummary, error) {
	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	client, err := s.clientFor(account, func(c domain.Capabilities) bool { return c.Sync })
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"platform":   account.Platform,
	})

	if err := s.accountRepo.MarkSyncing(ctx, account.ID); err != nil {
		logger.WithError(err).Error("Erro ao marcar conta como em sincronização")
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, account.ID, err.Error())
	}

	runID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Warn("Falha ao gerar identificador da execução")
	}

	startedAt := s.now()
	logger.WithField("run_id", runID).Info("Iniciando sincronização da conta")

	result := client.SyncAds(ctx, s.store, platform.SyncParams{
		AccountRefID: account.ID,
		ClientID:     account.ClientID,
		Token:        account.AccessToken,
		AccountID:    account.AccountID,
		Days:         days,
	})

	finishedAt := s.now()

	// O status final é gravado mesmo que a requisição tenha sido cancelada
	statusCtx := context.WithoutCancel(ctx)
	if result.OK {
		err = s.accountRepo.MarkSyncSuccess(statusCtx, account.ID, finishedAt)
	} else {
		err = s.accountRepo.MarkSyncError(statusCtx, account.ID, result.Error)
	}
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar status final da sincronização")
	}

	duration := finishedAt.Sub(startedAt)
	s.metrics.ObserveSync(string(account.Platform), result.OK, result.Campaigns, result.Ads, result.Skipped, duration)

	summary := &domain.SyncSummary{
		RunID:      runID,
		AccountID:  account.ID,
		Platform:   account.Platform,
		OK:         result.OK,
		Campaigns:  result.Campaigns,
		Ads:        result.Ads,
		Skipped:    result.Skipped,
		Error:      result.Error,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		DurationMs: duration.Milliseconds(),
	}

	logger.WithFields(logrus.Fields{
		"run_id":    runID,
		"ok":        result.OK,
		"campaigns": result.Campaigns,
		"ads":       result.Ads,
		"skipped":   result.Skipped,
		"duration":  duration.String(),
	}).Info("Sincronização da conta concluída")

	return summary, nil
}

func (s *Service) ListActiveAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return accounts, nil
}

func (s *Service) ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.store.ListCampaigns(ctx, account.ID)
	if err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, account.ID, err.Error())
	}
	return campaigns, nil
}

func (s *Service) ListAds(ctx context.Context, accountID string) ([]domain.Ad, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ads, err := s.store.ListAds(ctx, account.ID)
	if err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, account.ID, err.Error())
	}
	return ads, nil
}

func (s *Service) PauseAd(ctx context.Context, accountID, adID string) (domain.ActionResult, error) {
	return s.changeAdStatus(ctx, accountID, adID,
		func(c domain.Capabilities) bool { return c.Pause },
		func(client platform.Client, params platform.StatusParams) domain.ActionResult {
			return client.PauseAd(ctx, params)
		})
}

func (s *Service) ReactivateAd(ctx context.Context, accountID, adID string) (domain.ActionResult, error) {
	return s.changeAdStatus(ctx, accountID, adID,
		func(c domain.Capabilities) bool { return c.Reactivate },
		func(client platform.Client, params platform.StatusParams) domain.ActionResult {
			return client.ReactivateAd(ctx, params)
		})
}

func (s *Service) changeAdStatus(
	ctx context.Context,
	accountID, adID string,
	supported func(domain.Capabilities) bool,
	call func(platform.Client, platform.StatusParams) domain.ActionResult,
) (domain.ActionResult, error) {
	if adID == "" {
		return domain.ActionResult{}, NewSyncError(ErrAdIDRequired, apiErrors.ErrMissingRequiredData, accountID, "")
	}

	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return domain.ActionResult{}, err
	}

	client, err := s.statusClient(account, supported)
	if err != nil {
		return domain.ActionResult{}, err
	}

	return call(client, platform.StatusParams{
		Token:     account.AccessToken,
		AccountID: account.AccountID,
		AdID:      adID,
	}), nil
}

// ValidateToken testa um token antes do cadastro da conta, sem tocar no banco
func (s *Service) ValidateToken(ctx context.Context, p domain.Platform, token, vendorAccountID string) (bool, error) {
	if !p.IsKnown() {
		return false, NewSyncError(ErrUnknownPlatform, apiErrors.ErrUnsupportedPlatform, "", string(p))
	}

	client, ok := s.registry.Get(p)
	if !ok {
		return false, NewSyncError(ErrPlatformNotImplemented, apiErrors.ErrUnsupportedPlatform, "", string(p))
	}

	return client.ValidateToken(ctx, token, vendorAccountID), nil
}

func (s *Service) Platforms() []domain.PlatformInfo {
	return s.registry.Platforms()
}

// AccountOwner devolve o cliente dono da conta, para a checagem de acesso
func (s *Service) AccountOwner(ctx context.Context, accountID string) (string, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	return account.ClientID, nil
}

func (s *Service) findAccount(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	if accountID == "" {
		return nil, NewSyncError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao buscar conta de anúncios")
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, err.Error())
	}

	if account == nil {
		return nil, NewSyncError(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "")
	}

	return account, nil
}

// loadAccount é findAccount exigindo conta ativa
func (s *Service) loadAccount(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !account.IsActive {
		return nil, NewSyncError(ErrAccountInactive, apiErrors.ErrAccountInactive, account.ID, "")
	}

	return account, nil
}

func (s *Service) clientFor(account *domain.AdAccount, supported func(domain.Capabilities) bool) (platform.Client, error) {
	if !supported(s.registry.Capabilities(account.Platform)) {
		return nil, NewSyncError(ErrOperationNotSupported, apiErrors.ErrUnsupportedOperation, account.ID, string(account.Platform))
	}

	client, ok := s.registry.Get(account.Platform)
	if !ok {
		return nil, NewSyncError(ErrPlatformNotImplemented, apiErrors.ErrUnsupportedPlatform, account.ID, string(account.Platform))
	}

	return client, nil
}

// statusClient usa o cliente registrado mesmo sem a capacidade anunciada:
// a própria plataforma devolve ok false quando a ação não está disponível
func (s *Service) statusClient(account *domain.AdAccount, supported func(domain.Capabilities) bool) (platform.Client, error) {
	if client, ok := s.registry.Get(account.Platform); ok {
		return client, nil
	}
	return s.clientFor(account, supported)
}

// CodeOf devolve o código de API de um erro do caso de uso
func CodeOf(err error) string {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Code
	}
	return apiErrors.ErrInternalServer
}
