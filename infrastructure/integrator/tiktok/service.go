package tiktok

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	tiktokdomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

const (
	vendor = "tiktok"

	reportBatchSize = 100

	statusEnable  = "ENABLE"
	statusDisable = "DISABLE"
)

type TikTokIntegrator struct {
	Client tiktokclient.Client
	now    func() time.Time
}

func New(client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		Client: client,
		now:    time.Now,
	}
}

var _ platform.Client = (*TikTokIntegrator)(nil)

func (s *TikTokIntegrator) ValidateToken(ctx context.Context, token, accountID string) (valid bool) {
	defer platform.Recover(vendor, "validate token", func(error) { valid = false })

	advertisers, err := s.Client.GetAdvertisers(ctx, token, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"advertiser_id": accountID,
			"error":         err.Error(),
		}).Warn("tiktok: token validation failed")
		return false
	}

	return len(advertisers) > 0
}

func (s *TikTokIntegrator) SyncAds(ctx context.Context, store platform.Store, params platform.SyncParams) (result domain.SyncResult) {
	defer platform.Recover(vendor, "sync", func(err error) { result = domain.FailedSync(err) })

	return platform.RunSync(ctx, vendor, store, params, &adSource{client: s.Client, params: params})
}

func (s *TikTokIntegrator) GetMetrics(ctx context.Context, params platform.MetricsParams) (results map[string]domain.MetricsResult) {
	defer platform.Recover(vendor, "metrics", func(err error) { results = platform.FailAll(params.AdIDs, err) })

	if len(params.AdIDs) == 0 {
		return map[string]domain.MetricsResult{}
	}

	window, err := platform.ResolveWindow(params.Days, params.StartDate, params.EndDate, s.now())
	if err != nil {
		return platform.FailAll(params.AdIDs, err)
	}

	partial := make(map[string]domain.MetricsResult, len(params.AdIDs))

	for _, batch := range platform.Chunk(params.AdIDs, reportBatchSize) {
		rows, err := s.Client.GetAdReport(ctx, params.Token, params.AccountID, batch, window)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"advertiser_id": params.AccountID,
				"ads":           len(batch),
				"error":         err.Error(),
			}).Error("tiktok: failed to get ad report")
			platform.FailRemaining(batch, partial, err)
			continue
		}

		for i := range rows {
			adID := rows[i].Dimensions["ad_id"]
			if adID == "" {
				continue
			}
			partial[adID] = domain.MetricsOK(NormalizeReport(&rows[i]))
		}
	}

	return platform.CompleteResults(params.AdIDs, partial)
}

func (s *TikTokIntegrator) PauseAd(ctx context.Context, params platform.StatusParams) domain.ActionResult {
	return s.updateStatus(ctx, params, statusDisable)
}

func (s *TikTokIntegrator) ReactivateAd(ctx context.Context, params platform.StatusParams) domain.ActionResult {
	return s.updateStatus(ctx, params, statusEnable)
}

func (s *TikTokIntegrator) updateStatus(ctx context.Context, params platform.StatusParams, status string) (result domain.ActionResult) {
	defer platform.Recover(vendor, "status update", func(err error) { result = domain.FailedAction(err) })

	if params.AdID == "" || params.AccountID == "" {
		return domain.FailedAction(errors.New("ad id and advertiser id are required"))
	}

	if err := s.Client.UpdateAdStatus(ctx, params.Token, params.AccountID, params.AdID, status); err != nil {
		logrus.WithFields(logrus.Fields{
			"advertiser_id": params.AccountID,
			"ad_id":         params.AdID,
			"status":        status,
			"error":         err.Error(),
		}).Error("tiktok: failed to update ad status")
		return domain.FailedAction(err)
	}

	return domain.ActionResult{OK: true}
}

type adSource struct {
	client tiktokclient.Client
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
			ID:        c.CampaignID,
			Name:      c.CampaignName,
			Objective: c.ObjectiveType,
			Active:    c.OperationStatus == statusEnable,
		})
	}

	return records, nil
}

// FetchAds cruza os anúncios com os ad groups para obter a meta de otimização
func (a *adSource) FetchAds(ctx context.Context) ([]platform.AdRecord, error) {
	groups, err := a.client.GetAdGroups(ctx, a.params.Token, a.params.AccountID)
	if err != nil {
		return nil, err
	}

	goals := make(map[string]string, len(groups))
	for _, g := range groups {
		goals[g.AdgroupID] = g.OptimizationGoal
	}

	ads, err := a.client.GetAds(ctx, a.params.Token, a.params.AccountID)
	if err != nil {
		return nil, err
	}

	records := make([]platform.AdRecord, 0, len(ads))
	for _, ad := range ads {
		record := FactoryAdRecord(ad)
		record.OptimizationGoal = goals[ad.AdgroupID]
		records = append(records, record)
	}

	return records, nil
}

func FactoryAdRecord(ad tiktokdomain.Ad) platform.AdRecord {
	record := platform.AdRecord{
		ID:         ad.AdID,
		Name:       ad.AdName,
		Status:     NormalizeAdStatus(ad.OperationStatus),
		CampaignID: ad.CampaignID,
		AdsetID:    ad.AdgroupID,
		CreativeID: ad.VideoID,
	}

	if record.CreativeID == "" && len(ad.ImageIDs) > 0 {
		record.CreativeID = ad.ImageIDs[0]
	}

	return record
}

func NormalizeAdStatus(status string) domain.AdStatus {
	switch status {
	case statusEnable:
		return domain.AdStatusActive
	case statusDisable:
		return domain.AdStatusPaused
	}
	return ""
}
