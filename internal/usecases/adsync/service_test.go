package adsync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	platformmocks "github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform/mocks"
	"github.com/vfg2006/ad-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ad-ops-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	accountRepo *mocks.MockAdAccountRepository
	store       *mocks.MockAdStore
	meta        *platformmocks.MockClient
	google      *platformmocks.MockClient
	service     *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		accountRepo: mocks.NewMockAdAccountRepository(ctrl),
		store:       mocks.NewMockAdStore(ctrl),
		meta:        platformmocks.NewMockClient(ctrl),
		google:      platformmocks.NewMockClient(ctrl),
	}

	registry := platform.NewRegistry(map[domain.Platform]platform.Client{
		domain.PlatformMeta:   f.meta,
		domain.PlatformGoogle: f.google,
	})

	f.service = NewService(f.accountRepo, f.store, registry, metrics.NewAdSyncMetrics(nil))

	clock := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time {
		clock = clock.Add(1500 * time.Millisecond)
		return clock
	}

	return f
}

func testAccount(p domain.Platform) *domain.AdAccount {
	return &domain.AdAccount{
		ID:          "acc-1",
		ClientID:    "client-1",
		Platform:    p,
		AccountName: "Loja Centro",
		AccountID:   "act_123",
		AccessToken: "plain-token",
		IsActive:    true,
		SyncStatus:  domain.SyncStatusPending,
	}
}

func TestService_SyncAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().GetAccountByID(ctx, "acc-1").Return(testAccount(domain.PlatformMeta), nil)
	f.accountRepo.EXPECT().MarkSyncing(ctx, "acc-1").Return(nil)
	f.meta.EXPECT().
		SyncAds(ctx, f.store, platform.SyncParams{
			AccountRefID: "acc-1",
			ClientID:     "client-1",
			Token:        "plain-token",
			AccountID:    "act_123",
			Days:         30,
		}).
		Return(domain.SyncResult{OK: true, Campaigns: 2, Ads: 4, Skipped: 1})
	f.accountRepo.EXPECT().
		MarkSyncSuccess(gomock.Any(), "acc-1", time.Date(2025, 3, 15, 10, 0, 3, 0, time.UTC)).
		Return(nil)

	summary, err := f.service.SyncAccount(ctx, "acc-1", 30)
	require.NoError(t, err)

	assert.True(t, summary.OK)
	assert.Len(t, summary.RunID, 6)
	assert.Equal(t, "acc-1", summary.AccountID)
	assert.Equal(t, domain.PlatformMeta, summary.Platform)
	assert.Equal(t, 2, summary.Campaigns)
	assert.Equal(t, 4, summary.Ads)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, summary.Error)
	assert.Equal(t, int64(1500), summary.DurationMs)
}

func TestService_SyncAccountPlatformFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().GetAccountByID(ctx, "acc-1").Return(testAccount(domain.PlatformGoogle), nil)
	f.accountRepo.EXPECT().MarkSyncing(ctx, "acc-1").Return(nil)
	f.google.EXPECT().SyncAds(ctx, f.store, gomock.Any()).
		Return(domain.SyncResult{OK: false, Error: "failed to fetch campaigns: invalid token"})
	f.accountRepo.EXPECT().MarkSyncError(gomock.Any(), "acc-1", "failed to fetch campaigns: invalid token").Return(nil)

	summary, err := f.service.SyncAccount(ctx, "acc-1", 0)
	require.NoError(t, err)

	assert.False(t, summary.OK)
	assert.Equal(t, "failed to fetch campaigns: invalid token", summary.Error)
	assert.Zero(t, summary.Campaigns)
}

func TestService_SyncAccountStatusWriteFailureKeepsSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().GetAccountByID(ctx, "acc-1").Return(testAccount(domain.PlatformMeta), nil)
	f.accountRepo.EXPECT().MarkSyncing(ctx, "acc-1").Return(nil)
	f.meta.EXPECT().SyncAds(ctx, f.store, gomock.Any()).Return(domain.SyncResult{OK: true, Campaigns: 1, Ads: 1})
	f.accountRepo.EXPECT().MarkSyncSuccess(gomock.Any(), "acc-1", gomock.Any()).Return(errors.New("connection reset"))

	summary, err := f.service.SyncAccount(ctx, "acc-1", 0)
	require.NoError(t, err)
	assert.True(t, summary.OK)
}

func TestService_SyncAccountRejected(t *testing.T) {
	inactive := testAccount(domain.PlatformMeta)
	inactive.IsActive = false

	tests := []struct {
		name      string
		accountID string
		setup     func(f *fixture)
		wantErr   error
		wantCode  string
	}{
		{
			name:      "Sem ID da conta",
			accountID: "",
			setup:     func(f *fixture) {},
			wantErr:   ErrAccountIDRequired,
			wantCode:  apiErrors.ErrMissingRequiredData,
		},
		{
			name:      "Conta inexistente",
			accountID: "acc-1",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(nil, nil)
			},
			wantErr:  ErrAccountNotFound,
			wantCode: apiErrors.ErrResourceNotFound,
		},
		{
			name:      "Erro de banco ao buscar conta",
			accountID: "acc-1",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(nil, errors.New("db down"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
		{
			name:      "Conta desativada",
			accountID: "acc-1",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(inactive, nil)
			},
			wantErr:  ErrAccountInactive,
			wantCode: apiErrors.ErrAccountInactive,
		},
		{
			name:      "Plataforma sem suporte a sincronização",
			accountID: "acc-1",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(testAccount(domain.PlatformLinkedIn), nil)
			},
			wantErr:  ErrOperationNotSupported,
			wantCode: apiErrors.ErrUnsupportedOperation,
		},
		{
			name:      "Plataforma suportada mas sem cliente registrado",
			accountID: "acc-1",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(testAccount(domain.PlatformTikTok), nil)
			},
			wantErr:  ErrPlatformNotImplemented,
			wantCode: apiErrors.ErrUnsupportedPlatform,
		},
		{
			name:      "Falha ao marcar sincronização",
			accountID: "acc-1",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(testAccount(domain.PlatformMeta), nil)
				f.accountRepo.EXPECT().MarkSyncing(gomock.Any(), "acc-1").Return(errors.New("locked"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			summary, err := f.service.SyncAccount(context.Background(), tt.accountID, 0)

			assert.Nil(t, summary)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, CodeOf(err))
		})
	}
}

func TestService_PauseAd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().GetAccountByID(ctx, "acc-1").Return(testAccount(domain.PlatformMeta), nil)
	f.meta.EXPECT().
		PauseAd(ctx, platform.StatusParams{Token: "plain-token", AccountID: "act_123", AdID: "ad-9"}).
		Return(domain.ActionResult{OK: true})

	result, err := f.service.PauseAd(ctx, "acc-1", "ad-9")
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestService_ReactivateAdVendorFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().GetAccountByID(ctx, "acc-1").Return(testAccount(domain.PlatformMeta), nil)
	f.meta.EXPECT().ReactivateAd(ctx, gomock.Any()).
		Return(domain.ActionResult{OK: false, Error: "(#100) Invalid parameter"})

	result, err := f.service.ReactivateAd(ctx, "acc-1", "ad-9")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionResult{OK: false, Error: "(#100) Invalid parameter"}, result)
}

func TestService_PauseAdNotSupported(t *testing.T) {
	f := newFixture(t)

	f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(testAccount(domain.PlatformLinkedIn), nil)

	_, err := f.service.PauseAd(context.Background(), "acc-1", "ad-9")
	assert.ErrorIs(t, err, ErrOperationNotSupported)
	assert.Equal(t, apiErrors.ErrUnsupportedOperation, CodeOf(err))

	_, err = f.service.PauseAd(context.Background(), "acc-1", "")
	assert.ErrorIs(t, err, ErrAdIDRequired)
}

func TestService_StatusChangeReachesRegisteredClient(t *testing.T) {
	notImplemented := domain.ActionResult{
		OK:    false,
		Error: "Google Ads pause is not yet fully implemented; pause the ad in Google Ads",
	}

	tests := []struct {
		name   string
		setup  func(f *fixture)
		change func(s *Service) (domain.ActionResult, error)
	}{
		{
			name: "Pausar anúncio do Google",
			setup: func(f *fixture) {
				f.google.EXPECT().PauseAd(gomock.Any(), platform.StatusParams{Token: "plain-token", AccountID: "act_123", AdID: "ad-9"}).
					Return(notImplemented)
			},
			change: func(s *Service) (domain.ActionResult, error) {
				return s.PauseAd(context.Background(), "acc-1", "ad-9")
			},
		},
		{
			name: "Reativar anúncio do Google",
			setup: func(f *fixture) {
				f.google.EXPECT().ReactivateAd(gomock.Any(), gomock.Any()).Return(notImplemented)
			},
			change: func(s *Service) (domain.ActionResult, error) {
				return s.ReactivateAd(context.Background(), "acc-1", "ad-9")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(testAccount(domain.PlatformGoogle), nil)
			tt.setup(f)

			result, err := tt.change(f.service)

			require.NoError(t, err)
			assert.False(t, result.OK)
			assert.Contains(t, result.Error, "not yet fully implemented")
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.meta.EXPECT().ValidateToken(ctx, "tok", "act_1").Return(true)

	valid, err := f.service.ValidateToken(ctx, domain.PlatformMeta, "tok", "act_1")
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = f.service.ValidateToken(ctx, domain.Platform("snapchat"), "tok", "x")
	assert.ErrorIs(t, err, ErrUnknownPlatform)

	_, err = f.service.ValidateToken(ctx, domain.PlatformLinkedIn, "tok", "x")
	assert.ErrorIs(t, err, ErrPlatformNotImplemented)
}

func TestService_ListAds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inactive := testAccount(domain.PlatformMeta)
	inactive.IsActive = false

	ads := []domain.Ad{{AdID: "ad-1", AdAccountRefID: "acc-1"}}
	f.accountRepo.EXPECT().GetAccountByID(ctx, "acc-1").Return(inactive, nil)
	f.store.EXPECT().ListAds(ctx, "acc-1").Return(ads, nil)

	got, err := f.service.ListAds(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, ads, got)

	f.accountRepo.EXPECT().GetAccountByID(ctx, "missing").Return(nil, nil)
	_, err = f.service.ListCampaigns(ctx, "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestService_Platforms(t *testing.T) {
	f := newFixture(t)

	infos := f.service.Platforms()
	require.Len(t, infos, len(domain.KnownPlatforms))

	byPlatform := map[domain.Platform]domain.PlatformInfo{}
	for _, info := range infos {
		byPlatform[info.Platform] = info
	}

	assert.True(t, byPlatform[domain.PlatformMeta].Implemented)
	assert.False(t, byPlatform[domain.PlatformTikTok].Implemented)
	assert.False(t, byPlatform[domain.PlatformGoogle].Capabilities.Pause)
	assert.Equal(t, domain.Capabilities{}, byPlatform[domain.PlatformLinkedIn].Capabilities)
}

func TestService_AccountOwner(t *testing.T) {
	f := newFixture(t)

	f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(testAccount(domain.PlatformMeta), nil)

	owner, err := f.service.AccountOwner(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "client-1", owner)
}
