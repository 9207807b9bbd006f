package pinterest

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	pinterestdomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/pinterest/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/pinterest/pinterestclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

const (
	vendor = "pinterest"

	analyticsBatchSize = 20

	statusActive = "ACTIVE"
	statusPaused = "PAUSED"
)

type PinterestIntegrator struct {
	Client pinterestclient.Client
	now    func() time.Time
}

func New(client pinterestclient.Client) *PinterestIntegrator {
	return &PinterestIntegrator{
		Client: client,
		now:    time.Now,
	}
}

var _ platform.Client = (*PinterestIntegrator)(nil)

func (s *PinterestIntegrator) ValidateToken(ctx context.Context, token, accountID string) (valid bool) {
	defer platform.Recover(vendor, "validate token", func(error) { valid = false })

	account, err := s.Client.GetAdAccount(ctx, token, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("pinterest: token validation failed")
		return false
	}

	return account != nil && account.ID != ""
}

func (s *PinterestIntegrator) SyncAds(ctx context.Context, store platform.Store, params platform.SyncParams) (result domain.SyncResult) {
	defer platform.Recover(vendor, "sync", func(err error) { result = domain.FailedSync(err) })

	return platform.RunSync(ctx, vendor, store, params, &adSource{client: s.Client, params: params})
}

func (s *PinterestIntegrator) GetMetrics(ctx context.Context, params platform.MetricsParams) (results map[string]domain.MetricsResult) {
	defer platform.Recover(vendor, "metrics", func(err error) { results = platform.FailAll(params.AdIDs, err) })

	if len(params.AdIDs) == 0 {
		return map[string]domain.MetricsResult{}
	}

	window, err := platform.ResolveWindow(params.Days, params.StartDate, params.EndDate, s.now())
	if err != nil {
		return platform.FailAll(params.AdIDs, err)
	}

	partial := make(map[string]domain.MetricsResult, len(params.AdIDs))

	for _, batch := range platform.Chunk(params.AdIDs, analyticsBatchSize) {
		rows, err := s.Client.GetAdGroupAnalytics(ctx, params.Token, params.AccountID, batch, window)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": params.AccountID,
				"ads":        len(batch),
				"error":      err.Error(),
			}).Error("pinterest: failed to get ad group analytics")
			platform.FailRemaining(batch, partial, err)
			continue
		}

		for i := range rows {
			partial[rows[i].AdGroupID] = domain.MetricsOK(NormalizeAnalytics(&rows[i]))
		}
	}

	return platform.CompleteResults(params.AdIDs, partial)
}

func (s *PinterestIntegrator) PauseAd(ctx context.Context, params platform.StatusParams) domain.ActionResult {
	return s.updateStatus(ctx, params, statusPaused)
}

func (s *PinterestIntegrator) ReactivateAd(ctx context.Context, params platform.StatusParams) domain.ActionResult {
	return s.updateStatus(ctx, params, statusActive)
}

func (s *PinterestIntegrator) updateStatus(ctx context.Context, params platform.StatusParams, status string) (result domain.ActionResult) {
	defer platform.Recover(vendor, "status update", func(err error) { result = domain.FailedAction(err) })

	if params.AdID == "" || params.AccountID == "" {
		return domain.FailedAction(errors.New("ad id and ad account id are required"))
	}

	if err := s.Client.UpdateAdGroupStatus(ctx, params.Token, params.AccountID, params.AdID, status); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": params.AccountID,
			"ad_id":      params.AdID,
			"status":     status,
			"error":      err.Error(),
		}).Error("pinterest: failed to update ad group status")
		return domain.FailedAction(err)
	}

	return domain.ActionResult{OK: true}
}

type adSource struct {
	client pinterestclient.Client
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
			Objective: c.ObjectiveType,
			Active:    c.Status == statusActive,
		})
	}

	return records, nil
}

// FetchAds usa os ad groups: no Pinterest eles são a menor unidade com status e métricas próprias
func (a *adSource) FetchAds(ctx context.Context) ([]platform.AdRecord, error) {
	groups, err := a.client.GetAdGroups(ctx, a.params.Token, a.params.AccountID)
	if err != nil {
		return nil, err
	}

	records := make([]platform.AdRecord, 0, len(groups))
	for _, g := range groups {
		records = append(records, FactoryAdRecord(g))
	}

	return records, nil
}

func FactoryAdRecord(g pinterestdomain.AdGroup) platform.AdRecord {
	return platform.AdRecord{
		ID:               g.ID,
		Name:             g.Name,
		Status:           NormalizeAdStatus(g.Status),
		CampaignID:       g.CampaignID,
		AdsetID:          g.ID,
		OptimizationGoal: g.BillableEvent,
	}
}

func NormalizeAdStatus(status string) domain.AdStatus {
	switch status {
	case statusActive:
		return domain.AdStatusActive
	case statusPaused:
		return domain.AdStatusPaused
	}
	return ""
}
