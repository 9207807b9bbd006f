package meta

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

const (
	vendor = "meta"

	// O filtro ad.id IN aceita listas grandes, mas lotes menores evitam URLs enormes
	insightsBatchSize = 50

	statusActive = "ACTIVE"
	statusPaused = "PAUSED"
)

type MetaIntegrator struct {
	Client metaclient.Client
	now    func() time.Time
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
		now:    time.Now,
	}
}

var _ platform.Client = (*MetaIntegrator)(nil)

func (s *MetaIntegrator) ValidateToken(ctx context.Context, token, accountID string) (valid bool) {
	defer platform.Recover(vendor, "validate token", func(error) { valid = false })

	account, err := s.Client.GetAdAccount(ctx, token, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("meta: token validation failed")
		return false
	}

	return account != nil && account.ID != ""
}

func (s *MetaIntegrator) SyncAds(ctx context.Context, store platform.Store, params platform.SyncParams) (result domain.SyncResult) {
	defer platform.Recover(vendor, "sync", func(err error) { result = domain.FailedSync(err) })

	return platform.RunSync(ctx, vendor, store, params, &adSource{
		client: s.Client,
		params: params,
	})
}

func (s *MetaIntegrator) GetMetrics(ctx context.Context, params platform.MetricsParams) (results map[string]domain.MetricsResult) {
	defer platform.Recover(vendor, "metrics", func(err error) { results = platform.FailAll(params.AdIDs, err) })

	if len(params.AdIDs) == 0 {
		return map[string]domain.MetricsResult{}
	}

	window, err := platform.ResolveWindow(params.Days, params.StartDate, params.EndDate, s.now())
	if err != nil {
		return platform.FailAll(params.AdIDs, err)
	}

	partial := make(map[string]domain.MetricsResult, len(params.AdIDs))

	for _, batch := range platform.Chunk(params.AdIDs, insightsBatchSize) {
		insights, err := s.Client.GetAdInsights(ctx, params.Token, params.AccountID, batch, window)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": params.AccountID,
				"ads":        len(batch),
				"error":      err.Error(),
			}).Error("meta: failed to get ad insights")
			platform.FailRemaining(batch, partial, err)
			continue
		}

		for i := range insights {
			partial[insights[i].AdID] = domain.MetricsOK(NormalizeInsight(&insights[i]))
		}
	}

	return platform.CompleteResults(params.AdIDs, partial)
}

func (s *MetaIntegrator) PauseAd(ctx context.Context, params platform.StatusParams) domain.ActionResult {
	return s.updateStatus(ctx, params, statusPaused)
}

func (s *MetaIntegrator) ReactivateAd(ctx context.Context, params platform.StatusParams) domain.ActionResult {
	return s.updateStatus(ctx, params, statusActive)
}

func (s *MetaIntegrator) updateStatus(ctx context.Context, params platform.StatusParams, status string) (result domain.ActionResult) {
	defer platform.Recover(vendor, "status update", func(err error) { result = domain.FailedAction(err) })

	if params.AdID == "" {
		return domain.FailedAction(errors.New("ad id is required"))
	}

	if err := s.Client.UpdateAdStatus(ctx, params.Token, params.AdID, status); err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":  params.AdID,
			"status": status,
			"error":  err.Error(),
		}).Error("meta: failed to update ad status")
		return domain.FailedAction(err)
	}

	logrus.WithFields(logrus.Fields{
		"ad_id":  params.AdID,
		"status": status,
	}).Info("meta: ad status updated")

	return domain.ActionResult{OK: true}
}

type adSource struct {
	client metaclient.Client
	params platform.SyncParams
}

func (a *adSource) FetchCampaigns(ctx context.Context) ([]platform.CampaignRecord, error) {
	campaigns, err := a.client.GetCampaigns(ctx, a.params.Token, a.params.AccountID)
	if err != nil {
		return nil, err
	}

	records := make([]platform.CampaignRecord, 0, len(campaigns))
	for _, c := range campaigns {
		records = append(records, platform.CampaignRecord{
			ID:        c.ID,
			Name:      c.Name,
			Objective: c.Objective,
			Active:    c.EffectiveStatus == statusActive,
		})
	}

	return records, nil
}

func (a *adSource) FetchAds(ctx context.Context) ([]platform.AdRecord, error) {
	ads, err := a.client.GetAds(ctx, a.params.Token, a.params.AccountID)
	if err != nil {
		return nil, err
	}

	records := make([]platform.AdRecord, 0, len(ads))
	for _, ad := range ads {
		records = append(records, FactoryAdRecord(ad))
	}

	return records, nil
}

func FactoryAdRecord(ad metadomain.Ad) platform.AdRecord {
	record := platform.AdRecord{
		ID:         ad.ID,
		Name:       ad.Name,
		Status:     NormalizeAdStatus(ad.EffectiveStatus),
		CampaignID: ad.CampaignID,
		AdsetID:    ad.AdsetID,
	}

	if ad.Adset != nil {
		if record.AdsetID == "" {
			record.AdsetID = ad.Adset.ID
		}
		record.OptimizationGoal = ad.Adset.OptimizationGoal
	}

	if ad.Creative != nil {
		record.CreativeID = ad.Creative.ID
		if ad.Creative.ThumbnailURL != "" {
			thumb := ad.Creative.ThumbnailURL
			record.CreativeThumb = &thumb
		}
	}

	return record
}

// NormalizeAdStatus devolve "" para status que não entram na sincronização (DELETED, ARCHIVED, DISAPPROVED...)
func NormalizeAdStatus(effectiveStatus string) domain.AdStatus {
	switch effectiveStatus {
	case "ACTIVE":
		return domain.AdStatusActive
	case "PAUSED", "ADSET_PAUSED", "CAMPAIGN_PAUSED":
		return domain.AdStatusPaused
	}
	return ""
}
