package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-ops-api/infrastructure/database"
	"github.com/vfg2006/ad-ops-api/internal/config"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/pkg/secret"
)

func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	ctx := context.Background()

	conn, err := database.NewConnection(ctx, config.Database{
		Driver: database.DriverSQLite,
		DSN:    "file::memory:?_time_format=sqlite",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, database.Migrate(ctx, conn))

	return conn
}

func newTestCipher(t *testing.T) *secret.Cipher {
	t.Helper()

	c, err := secret.NewCipher("test-key")
	require.NoError(t, err)

	return c
}

func seedAccount(t *testing.T, repo AdAccountRepository, accountID string) *domain.AdAccount {
	t.Helper()

	acc := &domain.AdAccount{
		ClientID:    "client-1",
		Platform:    domain.PlatformMeta,
		AccountName: "Loja Centro",
		AccountID:   accountID,
		AccessToken: "EAAB-" + accountID,
		IsActive:    true,
	}
	require.NoError(t, repo.SaveOrUpdate(context.Background(), acc))

	return acc
}

func TestAdAccountRepository_SaveAndGet(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))
	ctx := context.Background()

	acc := seedAccount(t, repo, "1234")
	require.NotEmpty(t, acc.ID)

	got, err := repo.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "client-1", got.ClientID)
	assert.Equal(t, domain.PlatformMeta, got.Platform)
	assert.Equal(t, "1234", got.AccountID)
	assert.Equal(t, "EAAB-1234", got.AccessToken)
	assert.True(t, got.IsActive)
	assert.Equal(t, domain.SyncStatusPending, got.SyncStatus)
	assert.Nil(t, got.LastSyncAt)
	assert.Nil(t, got.SyncError)
}

func TestAdAccountRepository_TokenEncryptedAtRest(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))

	acc := seedAccount(t, repo, "999")

	var stored string
	err := conn.QueryRow("SELECT access_token FROM ad_accounts WHERE id = ?", acc.ID).Scan(&stored)
	require.NoError(t, err)

	assert.NotEqual(t, "EAAB-999", stored)
	assert.NotContains(t, stored, "EAAB")
}

func TestAdAccountRepository_GetUnknown(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))

	got, err := repo.GetAccountByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAdAccountRepository_UpsertRotatesToken(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))
	ctx := context.Background()

	first := seedAccount(t, repo, "1234")

	rotated := &domain.AdAccount{
		ClientID:    "client-1",
		Platform:    domain.PlatformMeta,
		AccountName: "Loja Centro",
		AccountID:   "1234",
		AccessToken: "EAAB-new",
		IsActive:    true,
	}
	require.NoError(t, repo.SaveOrUpdate(ctx, rotated))

	got, err := repo.GetAccountByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "EAAB-new", got.AccessToken)

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM ad_accounts").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAdAccountRepository_RejectsUnknownPlatform(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))

	err := repo.SaveOrUpdate(context.Background(), &domain.AdAccount{
		ClientID:  "client-1",
		Platform:  domain.Platform("snapchat"),
		AccountID: "1",
	})
	assert.Error(t, err)
}

func TestAdAccountRepository_SyncStateTransitions(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))
	ctx := context.Background()

	acc := seedAccount(t, repo, "1234")

	require.NoError(t, repo.MarkSyncing(ctx, acc.ID))
	got, err := repo.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusSyncing, got.SyncStatus)
	assert.Nil(t, got.LastSyncAt)

	require.NoError(t, repo.MarkSyncError(ctx, acc.ID, "token expired"))
	got, err = repo.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusError, got.SyncStatus)
	require.NotNil(t, got.SyncError)
	assert.Equal(t, "token expired", *got.SyncError)
	assert.Nil(t, got.LastSyncAt)

	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkSyncSuccess(ctx, acc.ID, at))
	got, err = repo.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusSuccess, got.SyncStatus)
	assert.Nil(t, got.SyncError)
	require.NotNil(t, got.LastSyncAt)
	assert.True(t, at.Equal(*got.LastSyncAt))
}

func TestAdAccountRepository_MarkUnknownAccount(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))

	err := repo.MarkSyncing(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAdAccountNotFound)
}

func TestAdAccountRepository_ListActiveAccounts(t *testing.T) {
	conn := newTestConnection(t)
	repo := NewAdAccountRepository(conn, newTestCipher(t))
	ctx := context.Background()

	seedAccount(t, repo, "1")
	seedAccount(t, repo, "2")
	require.NoError(t, repo.SaveOrUpdate(ctx, &domain.AdAccount{
		ClientID:    "client-2",
		Platform:    domain.PlatformTikTok,
		AccountID:   "3",
		AccessToken: "tt",
		IsActive:    false,
	}))

	accounts, err := repo.ListActiveAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	for _, acc := range accounts {
		assert.True(t, acc.IsActive)
		assert.Equal(t, "EAAB-"+acc.AccountID, acc.AccessToken)
	}
}

func testCampaign(id, refID string) domain.Campaign {
	return domain.Campaign{
		CampaignID:     id,
		Name:           "Campaign " + id,
		Objective:      "OUTCOME_SALES",
		AdAccountID:    "1234",
		AdAccountRefID: refID,
		ClientID:       "client-1",
	}
}

func testAd(id, campaignID, refID string) domain.Ad {
	thumb := "https://cdn.example.com/" + id + ".jpg"

	return domain.Ad{
		AdID:                  id,
		AdName:                "Ad " + id,
		EffectiveStatus:       domain.AdStatusActive,
		CreativeID:            "cr-" + id,
		CreativeThumb:         &thumb,
		CampaignID:            campaignID,
		AdsetID:               "as-" + id,
		AdsetOptimizationGoal: "OFFSITE_CONVERSIONS",
		Objective:             "OUTCOME_SALES",
		AdAccountID:           "1234",
		AdAccountRefID:        refID,
		ClientID:              "client-1",
	}
}

func TestAdStore_SaveAndList(t *testing.T) {
	conn := newTestConnection(t)
	accounts := NewAdAccountRepository(conn, newTestCipher(t))
	store := NewAdStore(conn)
	ctx := context.Background()

	acc := seedAccount(t, accounts, "1234")

	require.NoError(t, store.SaveCampaign(ctx, testCampaign("c1", acc.ID)))
	require.NoError(t, store.SaveAd(ctx, testAd("a1", "c1", acc.ID)))

	noThumb := testAd("a2", "c1", acc.ID)
	noThumb.CreativeThumb = nil
	noThumb.EffectiveStatus = domain.AdStatusPaused
	require.NoError(t, store.SaveAd(ctx, noThumb))

	campaigns, err := store.ListCampaigns(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "OUTCOME_SALES", campaigns[0].Objective)

	ads, err := store.ListAds(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, ads, 2)

	byID := map[string]domain.Ad{}
	for _, ad := range ads {
		byID[ad.AdID] = ad
	}

	require.NotNil(t, byID["a1"].CreativeThumb)
	assert.Equal(t, "https://cdn.example.com/a1.jpg", *byID["a1"].CreativeThumb)
	assert.Nil(t, byID["a2"].CreativeThumb)
	assert.Equal(t, domain.AdStatusPaused, byID["a2"].EffectiveStatus)
}

func TestAdStore_UpsertIsIdempotent(t *testing.T) {
	conn := newTestConnection(t)
	accounts := NewAdAccountRepository(conn, newTestCipher(t))
	store := NewAdStore(conn)
	ctx := context.Background()

	acc := seedAccount(t, accounts, "1234")

	for i := 0; i < 2; i++ {
		require.NoError(t, store.SaveCampaign(ctx, testCampaign("c1", acc.ID)))
		require.NoError(t, store.SaveAd(ctx, testAd("a1", "c1", acc.ID)))
	}

	renamed := testCampaign("c1", acc.ID)
	renamed.Name = "Renamed"
	require.NoError(t, store.SaveCampaign(ctx, renamed))

	campaigns, err := store.ListCampaigns(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "Renamed", campaigns[0].Name)

	ads, err := store.ListAds(ctx, acc.ID)
	require.NoError(t, err)
	assert.Len(t, ads, 1)
}

func TestAdStore_DeleteAccountDataIsScoped(t *testing.T) {
	conn := newTestConnection(t)
	accounts := NewAdAccountRepository(conn, newTestCipher(t))
	store := NewAdStore(conn)
	ctx := context.Background()

	first := seedAccount(t, accounts, "1")
	second := seedAccount(t, accounts, "2")

	require.NoError(t, store.SaveCampaign(ctx, testCampaign("c1", first.ID)))
	require.NoError(t, store.SaveAd(ctx, testAd("a1", "c1", first.ID)))
	require.NoError(t, store.SaveCampaign(ctx, testCampaign("c2", second.ID)))
	require.NoError(t, store.SaveAd(ctx, testAd("a2", "c2", second.ID)))

	require.NoError(t, store.DeleteAccountData(ctx, first.ID))

	campaigns, err := store.ListCampaigns(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, campaigns)

	ads, err := store.ListAds(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, ads)

	campaigns, err = store.ListCampaigns(ctx, second.ID)
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)

	ads, err = store.ListAds(ctx, second.ID)
	require.NoError(t, err)
	assert.Len(t, ads, 1)
}

func TestAdStore_SharedVendorAccountKeepsOwnerScope(t *testing.T) {
	conn := newTestConnection(t)
	accounts := NewAdAccountRepository(conn, newTestCipher(t))
	store := NewAdStore(conn)
	ctx := context.Background()

	owner := seedAccount(t, accounts, "1234")

	other := &domain.AdAccount{
		ClientID:    "client-2",
		Platform:    domain.PlatformMeta,
		AccountName: "Loja Norte",
		AccountID:   "1234",
		AccessToken: "EAAB-other",
		IsActive:    true,
	}
	require.NoError(t, accounts.SaveOrUpdate(ctx, other))
	require.NotEqual(t, owner.ID, other.ID)

	require.NoError(t, store.SaveCampaign(ctx, testCampaign("c1", owner.ID)))
	require.NoError(t, store.SaveAd(ctx, testAd("a1", "c1", owner.ID)))

	err := store.SaveCampaign(ctx, testCampaign("c1", other.ID))
	assert.ErrorIs(t, err, ErrOwnedByOtherAccount)
	err = store.SaveAd(ctx, testAd("a1", "c1", other.ID))
	assert.ErrorIs(t, err, ErrOwnedByOtherAccount)

	campaigns, err := store.ListCampaigns(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)

	ads, err := store.ListAds(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, owner.ID, ads[0].AdAccountRefID)

	ads, err = store.ListAds(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, ads)
}
