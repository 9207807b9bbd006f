package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

const (
	vendor = "google"

	metricsBatchSize = 20

	campaignsQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type
FROM campaign
WHERE campaign.status != 'REMOVED'`

	adsQuery = `SELECT ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.ad.type, ad_group_ad.status,
ad_group.id, ad_group.type, campaign.id
FROM ad_group_ad
WHERE ad_group_ad.status != 'REMOVED'`

	metricsQuery = `SELECT ad_group_ad.ad.id, metrics.cost_micros, metrics.impressions, metrics.clicks,
metrics.conversions, metrics.conversions_value, metrics.interactions, metrics.video_views
FROM ad_group_ad
WHERE segments.date BETWEEN '%s' AND '%s' AND ad_group_ad.ad.id IN (%s)`
)

type GoogleIntegrator struct {
	Client googleclient.Client
	now    func() time.Time
}

func New(client googleclient.Client) *GoogleIntegrator {
	return &GoogleIntegrator{
		Client: client,
		now:    time.Now,
	}
}

var _ platform.Client = (*GoogleIntegrator)(nil)

func (s *GoogleIntegrator) ValidateToken(ctx context.Context, token, accountID string) (valid bool) {
	defer platform.Recover(vendor, "validate token", func(error) { valid = false })

	customers, err := s.Client.ListAccessibleCustomers(ctx, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("google: token validation failed")
		return false
	}

	if len(customers) == 0 {
		logrus.WithField("account_id", accountID).Warn("google: token has no accessible customers")
		return false
	}

	return true
}

func (s *GoogleIntegrator) SyncAds(ctx context.Context, store platform.Store, params platform.SyncParams) (result domain.SyncResult) {
	defer platform.Recover(vendor, "sync", func(err error) { result = domain.FailedSync(err) })

	return platform.RunSync(ctx, vendor, store, params, &adSource{client: s.Client, params: params})
}

func (s *GoogleIntegrator) GetMetrics(ctx context.Context, params platform.MetricsParams) (results map[string]domain.MetricsResult) {
	defer platform.Recover(vendor, "metrics", func(err error) { results = platform.FailAll(params.AdIDs, err) })

	if len(params.AdIDs) == 0 {
		return map[string]domain.MetricsResult{}
	}

	window, err := platform.ResolveWindow(params.Days, params.StartDate, params.EndDate, s.now())
	if err != nil {
		return platform.FailAll(params.AdIDs, err)
	}

	partial := make(map[string]domain.MetricsResult, len(params.AdIDs))

	valid := make([]string, 0, len(params.AdIDs))
	for _, id := range params.AdIDs {
		if !isNumeric(id) {
			partial[id] = domain.MetricsFailed(fmt.Sprintf("invalid Google Ads ad id %q", id))
			continue
		}
		valid = append(valid, id)
	}

	for _, batch := range platform.Chunk(valid, metricsBatchSize) {
		query := fmt.Sprintf(metricsQuery, window.StartDate(), window.EndDate(), strings.Join(batch, ","))

		rows, err := s.Client.Search(ctx, params.Token, params.AccountID, query)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": params.AccountID,
				"ads":        len(batch),
				"error":      err.Error(),
			}).Error("google: failed to get ad metrics")
			platform.FailRemaining(batch, partial, err)
			continue
		}

		// Um anúncio pode aparecer em mais de uma linha (um por ad group); soma tudo
		totals := make(map[string]*googledomain.Metrics, len(batch))
		for _, row := range rows {
			if row.AdGroupAd == nil || row.Metrics == nil {
				continue
			}

			id := row.AdGroupAd.Ad.ID
			if totals[id] == nil {
				totals[id] = &googledomain.Metrics{}
			}
			totals[id].Add(row.Metrics)
		}

		for id, m := range totals {
			partial[id] = domain.MetricsOK(NormalizeMetrics(m))
		}
	}

	return platform.CompleteResults(params.AdIDs, partial)
}

// PauseAd não chama a API: mudar status exige o resource name do ad_group_ad, que não é persistido
func (s *GoogleIntegrator) PauseAd(_ context.Context, params platform.StatusParams) domain.ActionResult {
	logrus.WithField("ad_id", params.AdID).Warn("google: pause requested but not supported")
	return domain.FailedAction(errors.New("Google Ads pause is not yet fully implemented; pause the ad in Google Ads"))
}

func (s *GoogleIntegrator) ReactivateAd(_ context.Context, params platform.StatusParams) domain.ActionResult {
	logrus.WithField("ad_id", params.AdID).Warn("google: reactivate requested but not supported")
	return domain.FailedAction(errors.New("Google Ads reactivate is not yet fully implemented; enable the ad in Google Ads"))
}

type adSource struct {
	client googleclient.Client
	params platform.SyncParams
}

func (a *adSource) FetchCampaigns(ctx context.Context) ([]platform.CampaignRecord, error) {
	rows, err := a.client.Search(ctx, a.params.Token, a.params.AccountID, campaignsQuery)
	if err != nil {
		return nil, err
	}

	records := make([]platform.CampaignRecord, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}
		records = append(records, platform.CampaignRecord{
			ID:        row.Campaign.ID,
			Name:      row.Campaign.Name,
			Objective: row.Campaign.AdvertisingChannelType,
			Active:    row.Campaign.Status == "ENABLED",
		})
	}

	return records, nil
}

func (a *adSource) FetchAds(ctx context.Context) ([]platform.AdRecord, error) {
	rows, err := a.client.Search(ctx, a.params.Token, a.params.AccountID, adsQuery)
	if err != nil {
		return nil, err
	}

	records := make([]platform.AdRecord, 0, len(rows))
	for _, row := range rows {
		if row.AdGroupAd == nil {
			continue
		}
		records = append(records, FactoryAdRecord(row))
	}

	return records, nil
}

func FactoryAdRecord(row googledomain.SearchRow) platform.AdRecord {
	ad := row.AdGroupAd.Ad

	name := ad.Name
	if name == "" {
		name = fmt.Sprintf("%s %s", ad.Type, ad.ID)
	}

	record := platform.AdRecord{
		ID:         ad.ID,
		Name:       strings.TrimSpace(name),
		Status:     NormalizeAdStatus(row.AdGroupAd.Status),
		CreativeID: ad.ID,
	}

	if row.Campaign != nil {
		record.CampaignID = row.Campaign.ID
	}

	if row.AdGroup != nil {
		record.AdsetID = row.AdGroup.ID
		record.OptimizationGoal = row.AdGroup.Type
	}

	return record
}

func NormalizeAdStatus(status string) domain.AdStatus {
	switch status {
	case "ENABLED":
		return domain.AdStatusActive
	case "PAUSED":
		return domain.AdStatusPaused
	}
	return ""
}

func isNumeric(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
