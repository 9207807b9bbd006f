package meta

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

type memStore struct {
	mu        sync.Mutex
	campaigns map[string]domain.Campaign
	ads       map[string]domain.Ad
	failAds   map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		campaigns: map[string]domain.Campaign{},
		ads:       map[string]domain.Ad{},
		failAds:   map[string]bool{},
	}
}

func (m *memStore) DeleteAccountData(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.campaigns {
		if c.AdAccountRefID == ref {
			delete(m.campaigns, id)
		}
	}
	for id, a := range m.ads {
		if a.AdAccountRefID == ref {
			delete(m.ads, id)
		}
	}
	return nil
}

func (m *memStore) SaveCampaign(_ context.Context, c domain.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaigns[c.CampaignID] = c
	return nil
}

func (m *memStore) SaveAd(_ context.Context, a domain.Ad) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAds[a.AdID] {
		return errors.New("constraint failed")
	}
	m.ads[a.AdID] = a
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func revokedToken(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"message": "Error validating access token: The session has been invalidated",
			"type":    "OAuthException",
			"code":    190,
		},
	})
}

type graphAPI struct {
	server *httptest.Server
	// último time_range recebido no endpoint de insights
	timeRange string
	statuses  map[string]string
	// filtro updated_since recebido na última listagem de anúncios
	updatedSince string
}

func newGraphAPI(t *testing.T) *graphAPI {
	t.Helper()

	api := &graphAPI{statuses: map[string]string{}}
	mux := http.NewServeMux()

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			revokedToken(w)
			return false
		}
		return true
	}

	mux.HandleFunc("GET /v22.0/act_123", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": "act_123", "account_id": "123", "name": "Loja"})
	})

	mux.HandleFunc("GET /v22.0/act_123/campaigns", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if r.URL.Query().Get("after") == "page2" {
			writeJSON(w, http.StatusOK, map[string]any{
				"data": []map[string]any{
					{"id": "c3", "name": "Leads", "objective": "OUTCOME_LEADS", "effective_status": "PAUSED"},
				},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{
				{"id": "c1", "name": "Vendas", "objective": "OUTCOME_SALES", "effective_status": "ACTIVE"},
				{"id": "c2", "name": "Tráfego", "objective": "OUTCOME_TRAFFIC", "effective_status": "ACTIVE"},
			},
			"paging": map[string]any{"next": api.server.URL + "/v22.0/act_123/campaigns?after=page2"},
		})
	})

	mux.HandleFunc("GET /v22.0/act_123/ads", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		api.updatedSince = r.URL.Query().Get("updated_since")
		if api.updatedSince != "" {
			// A Graph API devolve só o que foi editado depois do filtro
			writeJSON(w, http.StatusOK, map[string]any{
				"data": []map[string]any{
					{"id": "a1", "name": "Ad 1", "effective_status": "ACTIVE", "campaign_id": "c1", "adset_id": "s1"},
				},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{
				{
					"id": "a1", "name": "Ad 1", "effective_status": "ACTIVE", "campaign_id": "c1", "adset_id": "s1",
					"adset":    map[string]any{"id": "s1", "optimization_goal": "OFFSITE_CONVERSIONS"},
					"creative": map[string]any{"id": "cr1", "thumbnail_url": "https://cdn/1.jpg"},
				},
				{"id": "a2", "name": "Ad 2", "effective_status": "ADSET_PAUSED", "campaign_id": "c1", "adset_id": "s1"},
				{"id": "a3", "name": "Ad 3", "effective_status": "ACTIVE", "campaign_id": "c2", "adset_id": "s2"},
				{"id": "a4", "name": "Ad 4", "effective_status": "ACTIVE", "campaign_id": "c2", "adset_id": "s2"},
				{"id": "a5", "name": "Ad 5", "effective_status": "ACTIVE", "campaign_id": "c3", "adset_id": "s3"},
			},
		})
	})

	mux.HandleFunc("GET /v22.0/act_123/insights", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		api.timeRange = r.URL.Query().Get("time_range")
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{
				{
					"ad_id": "a1", "spend": "100.50", "impressions": "10000", "clicks": "250",
					"ctr": "2.5", "cpc": "0.402", "cpm": "10.05", "reach": "8000", "frequency": "1.25",
					"actions": []map[string]any{
						{"action_type": "link_click", "value": "250"},
						{"action_type": "purchase", "value": "4"},
						{"action_type": "offsite_conversion.fb_pixel_purchase", "value": "4"},
						{"action_type": "lead", "value": "1"},
					},
					"action_values": []map[string]any{
						{"action_type": "purchase", "value": "820.00"},
					},
				},
			},
		})
	})

	mux.HandleFunc("POST /v22.0/{adID}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_ = r.ParseForm()
		adID := r.PathValue("adID")
		if adID == "locked" {
			writeJSON(w, http.StatusOK, map[string]any{"success": false})
			return
		}
		api.statuses[adID] = r.PostForm.Get("status")
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)

	return api
}

func newIntegrator(api *graphAPI) *MetaIntegrator {
	integrator := New(metaclient.NewClient(api.server.URL+"/v22.0", 5*time.Second))
	integrator.now = func() time.Time { return time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC) }
	return integrator
}

func TestMetaIntegrator_ValidateToken(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)

	assert.True(t, integrator.ValidateToken(context.Background(), "good-token", "123"))
	assert.True(t, integrator.ValidateToken(context.Background(), "good-token", "act_123"))
	assert.False(t, integrator.ValidateToken(context.Background(), "revoked", "123"))
}

func TestMetaIntegrator_ValidateTokenUnreachable(t *testing.T) {
	integrator := New(metaclient.NewClient("http://127.0.0.1:1", time.Second))

	assert.False(t, integrator.ValidateToken(context.Background(), "good-token", "123"))
}

func TestMetaIntegrator_SyncAds(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)
	store := newMemStore()

	params := platform.SyncParams{
		AccountRefID: "ref-1",
		ClientID:     "client-1",
		Token:        "good-token",
		AccountID:    "123",
	}

	result := integrator.SyncAds(context.Background(), store, params)

	assert.Equal(t, domain.SyncResult{OK: true, Campaigns: 2, Ads: 4, Skipped: 1}, result)
	require.Len(t, store.campaigns, 2)
	require.Len(t, store.ads, 4)

	a1 := store.ads["a1"]
	assert.Equal(t, domain.AdStatusActive, a1.EffectiveStatus)
	assert.Equal(t, "OUTCOME_SALES", a1.Objective)
	assert.Equal(t, "OFFSITE_CONVERSIONS", a1.AdsetOptimizationGoal)
	assert.Equal(t, "cr1", a1.CreativeID)
	require.NotNil(t, a1.CreativeThumb)
	assert.Equal(t, "https://cdn/1.jpg", *a1.CreativeThumb)

	assert.Equal(t, domain.AdStatusPaused, store.ads["a2"].EffectiveStatus)
	assert.Nil(t, store.ads["a2"].CreativeThumb)

	for _, ad := range store.ads {
		_, ok := store.campaigns[ad.CampaignID]
		assert.True(t, ok, "ad %s without campaign", ad.AdID)
	}

	// Segunda execução com os mesmos dados deixa as mesmas contagens
	again := integrator.SyncAds(context.Background(), store, params)
	assert.Equal(t, result, again)
	assert.Len(t, store.campaigns, 2)
	assert.Len(t, store.ads, 4)
}

func TestMetaIntegrator_SyncAdsWithDaysKeepsUnchangedAds(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)
	store := newMemStore()

	params := platform.SyncParams{
		AccountRefID: "ref-1",
		ClientID:     "client-1",
		Token:        "good-token",
		AccountID:    "123",
	}
	require.True(t, integrator.SyncAds(context.Background(), store, params).OK)
	require.Len(t, store.ads, 4)

	params.Days = 7
	result := integrator.SyncAds(context.Background(), store, params)

	assert.Equal(t, domain.SyncResult{OK: true, Campaigns: 2, Ads: 4, Skipped: 1}, result)
	assert.Empty(t, api.updatedSince)
	for _, id := range []string{"a1", "a3", "a4"} {
		ad, ok := store.ads[id]
		require.True(t, ok, "ad %s removido", id)
		assert.Equal(t, domain.AdStatusActive, ad.EffectiveStatus)
	}
	assert.Contains(t, store.ads, "a2")
}

func TestMetaIntegrator_SyncAdsStoreErrorSkips(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)
	store := newMemStore()
	store.failAds["a3"] = true

	result := integrator.SyncAds(context.Background(), store, platform.SyncParams{
		AccountRefID: "ref-1", Token: "good-token", AccountID: "123",
	})

	assert.True(t, result.OK)
	assert.Equal(t, 3, result.Ads)
	assert.Equal(t, 2, result.Skipped)
}

func TestMetaIntegrator_SyncAdsRevokedToken(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)

	result := integrator.SyncAds(context.Background(), newMemStore(), platform.SyncParams{
		AccountRefID: "ref-1", Token: "revoked", AccountID: "123",
	})

	assert.False(t, result.OK)
	assert.Zero(t, result.Campaigns)
	assert.Contains(t, result.Error, "Error validating access token")
	assert.Contains(t, result.Error, "token expired")
}

func TestMetaIntegrator_GetMetrics(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)

	results := integrator.GetMetrics(context.Background(), platform.MetricsParams{
		Token:     "good-token",
		AccountID: "123",
		AdIDs:     []string{"a1", "a2"},
		Days:      7,
	})

	require.Len(t, results, 2)
	assert.JSONEq(t, `{"since":"2025-03-08","until":"2025-03-14"}`, api.timeRange)

	a1 := results["a1"]
	require.True(t, a1.OK)
	require.NotNil(t, a1.Metrics)
	assert.Equal(t, 100.5, a1.Metrics.Spend)
	assert.Equal(t, int64(10000), a1.Metrics.Impressions)
	assert.Equal(t, int64(250), a1.Metrics.Clicks)
	assert.Equal(t, 2.5, a1.Metrics.CTR)
	assert.Equal(t, 0.4, a1.Metrics.CPC)
	assert.Equal(t, 10.05, a1.Metrics.CPM)
	assert.Equal(t, 5.0, a1.Metrics.Conversions)
	assert.Equal(t, 820.0, a1.Metrics.ConversionValue)
	assert.Equal(t, 20.1, a1.Metrics.CostPerConversion)
	assert.Equal(t, int64(8000), a1.Metrics.Extras["reach"])

	assert.Equal(t, domain.MetricsResult{OK: false, Error: domain.NoDataMessage}, results["a2"])
}

func TestMetaIntegrator_GetMetricsExplicitDates(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)

	integrator.GetMetrics(context.Background(), platform.MetricsParams{
		Token:     "good-token",
		AccountID: "123",
		AdIDs:     []string{"a1"},
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
	})

	assert.JSONEq(t, `{"since":"2025-01-01","until":"2025-01-31"}`, api.timeRange)
}

func TestMetaIntegrator_GetMetricsFailureKeepsEveryID(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)

	results := integrator.GetMetrics(context.Background(), platform.MetricsParams{
		Token:     "revoked",
		AccountID: "123",
		AdIDs:     []string{"a1", "a2", "a3"},
		Days:      7,
	})

	require.Len(t, results, 3)
	for id, r := range results {
		assert.False(t, r.OK, id)
		assert.Contains(t, r.Error, "Error validating access token")
	}
}

func TestMetaIntegrator_PauseAndReactivate(t *testing.T) {
	api := newGraphAPI(t)
	integrator := newIntegrator(api)
	ctx := context.Background()

	result := integrator.PauseAd(ctx, platform.StatusParams{Token: "good-token", AdID: "a1"})
	assert.Equal(t, domain.ActionResult{OK: true}, result)
	assert.Equal(t, "PAUSED", api.statuses["a1"])

	result = integrator.ReactivateAd(ctx, platform.StatusParams{Token: "good-token", AdID: "a1"})
	assert.True(t, result.OK)
	assert.Equal(t, "ACTIVE", api.statuses["a1"])

	result = integrator.PauseAd(ctx, platform.StatusParams{Token: "good-token", AdID: "locked"})
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Error)

	result = integrator.PauseAd(ctx, platform.StatusParams{Token: "revoked", AdID: "a1"})
	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "Error validating access token")

	result = integrator.PauseAd(ctx, platform.StatusParams{Token: "good-token"})
	assert.False(t, result.OK)
}

func TestNormalizeAdStatus(t *testing.T) {
	assert.Equal(t, domain.AdStatusActive, NormalizeAdStatus("ACTIVE"))
	assert.Equal(t, domain.AdStatusPaused, NormalizeAdStatus("PAUSED"))
	assert.Equal(t, domain.AdStatusPaused, NormalizeAdStatus("CAMPAIGN_PAUSED"))
	assert.Equal(t, domain.AdStatus(""), NormalizeAdStatus("DELETED"))
	assert.Equal(t, domain.AdStatus(""), NormalizeAdStatus("DISAPPROVED"))
}
