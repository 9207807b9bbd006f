package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-ops-api/internal/config"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(t *testing.T, enabled bool, cron string) (*AdSyncService, *mocks.MockAccountSyncer) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockAccountSyncer(ctrl)

	cfg := &config.Config{}
	cfg.AdSync.CronSchedule = cron
	cfg.AdSync.MaxConcurrentJobs = 2
	cfg.AdSync.RequestDelaySeconds = 1
	cfg.AdSync.Enabled = enabled

	service := NewAdSyncService(syncer, cfg)
	service.sleep = func(time.Duration) {}

	return service, syncer
}

func TestAdSyncService_run(t *testing.T) {
	service, syncer := newTestScheduler(t, true, "0 5 * * *")
	ctx := context.Background()

	accounts := []*domain.AdAccount{
		{ID: "acc-ok", Platform: domain.PlatformMeta},
		{ID: "acc-fail", Platform: domain.PlatformGoogle},
		{ID: "acc-linkedin", Platform: domain.PlatformLinkedIn},
	}

	syncer.EXPECT().ListActiveAccounts(ctx).Return(accounts, nil)
	syncer.EXPECT().SyncAccount(gomock.Any(), "acc-ok", 0).
		Return(&domain.SyncSummary{OK: true, Campaigns: 2, Ads: 4, Skipped: 1}, nil)
	syncer.EXPECT().SyncAccount(gomock.Any(), "acc-fail", 0).
		Return(&domain.SyncSummary{OK: false, Error: "invalid token"}, nil)
	syncer.EXPECT().SyncAccount(gomock.Any(), "acc-linkedin", 0).
		Return(nil, errors.New("operation not supported by platform"))

	report := service.run(ctx)

	assert.Equal(t, RunReport{Accounts: 3, Succeeded: 1, Failed: 1, Rejected: 1}, report)
}

func TestAdSyncService_runListError(t *testing.T) {
	service, syncer := newTestScheduler(t, true, "0 5 * * *")

	syncer.EXPECT().ListActiveAccounts(gomock.Any()).Return(nil, errors.New("db down"))

	assert.Equal(t, RunReport{}, service.run(context.Background()))
}

func TestAdSyncService_syncAllAccountsSkipsWhenRunning(t *testing.T) {
	service, _ := newTestScheduler(t, true, "0 5 * * *")
	service.syncRunning = true

	// Sem chamadas esperadas no mock: nada pode ser executado
	service.syncAllAccounts(context.Background())
	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestAdSyncService_TriggerManualSync(t *testing.T) {
	service, syncer := newTestScheduler(t, false, "")

	done := make(chan struct{})
	syncer.EXPECT().ListActiveAccounts(gomock.Any()).DoAndReturn(func(context.Context) ([]*domain.AdAccount, error) {
		defer close(done)
		return []*domain.AdAccount{}, nil
	})

	require.True(t, service.TriggerManualSync(context.Background()))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("manual sync did not run")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAdSyncService_Start(t *testing.T) {
	disabled, _ := newTestScheduler(t, false, "not a cron")
	assert.NoError(t, disabled.Start(context.Background()))

	invalid, _ := newTestScheduler(t, true, "not a cron")
	assert.Error(t, invalid.Start(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	valid, _ := newTestScheduler(t, true, "0 5 * * *")
	require.NoError(t, valid.Start(ctx))

	status := valid.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_max_concurrent"])
}
