package platform

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

// CampaignRecord é uma campanha já traduzida do formato do fornecedor
type CampaignRecord struct {
	ID        string
	Name      string
	Objective string
	// Active indica se o status da campanha no fornecedor é considerado ativo
	Active bool
}

// AdRecord é um anúncio já traduzido do formato do fornecedor.
// Status vazio significa um status que não é sincronizado (removido, arquivado, reprovado).
type AdRecord struct {
	ID               string
	Name             string
	Status           domain.AdStatus
	CampaignID       string
	AdsetID          string
	OptimizationGoal string
	CreativeID       string
	CreativeThumb    *string
}

// AdSource busca campanhas e anúncios de uma conta em uma plataforma
type AdSource interface {
	FetchCampaigns(ctx context.Context) ([]CampaignRecord, error)
	FetchAds(ctx context.Context) ([]AdRecord, error)
}

// RunSync aplica a política de sincronização completa de uma conta:
// apaga o escopo da conta, grava campanhas ativas e depois os anúncios dessas campanhas.
// Qualquer falha de busca aborta a sincronização sem desfazer o que já foi gravado.
func RunSync(ctx context.Context, vendor string, store Store, params SyncParams, source AdSource) domain.SyncResult {
	logger := logrus.WithFields(logrus.Fields{
		"platform":       vendor,
		"account_id":     params.AccountID,
		"account_ref_id": params.AccountRefID,
	})

	if err := store.DeleteAccountData(ctx, params.AccountRefID); err != nil {
		logger.WithError(err).Error(vendor + ": failed to clear account data")
		return domain.FailedSync(errors.Wrap(err, "failed to clear account data"))
	}

	campaigns, err := source.FetchCampaigns(ctx)
	if err != nil {
		logger.WithError(err).Error(vendor + ": failed to fetch campaigns")
		return domain.FailedSync(errors.Wrap(err, "failed to fetch campaigns"))
	}

	objectives := make(map[string]string, len(campaigns))
	result := domain.SyncResult{OK: true}

	for _, c := range campaigns {
		if !c.Active {
			continue
		}

		err := store.SaveCampaign(ctx, domain.Campaign{
			CampaignID:     c.ID,
			Name:           c.Name,
			Objective:      c.Objective,
			AdAccountID:    params.AccountID,
			AdAccountRefID: params.AccountRefID,
			ClientID:       params.ClientID,
		})
		if err != nil {
			// Sem a campanha gravada os anúncios dela também ficam de fora
			logger.WithError(err).WithField("campaign_id", c.ID).Warn(vendor + ": failed to save campaign")
			continue
		}

		objectives[c.ID] = c.Objective
		result.Campaigns++
	}

	ads, err := source.FetchAds(ctx)
	if err != nil {
		logger.WithError(err).Error(vendor + ": failed to fetch ads")
		return domain.FailedSync(errors.Wrap(err, "failed to fetch ads"))
	}

	for _, a := range ads {
		objective, ok := objectives[a.CampaignID]
		if !ok || a.Status == "" {
			result.Skipped++
			continue
		}

		err := store.SaveAd(ctx, domain.Ad{
			AdID:                  a.ID,
			AdName:                a.Name,
			EffectiveStatus:       a.Status,
			CreativeID:            a.CreativeID,
			CreativeThumb:         a.CreativeThumb,
			CampaignID:            a.CampaignID,
			AdsetID:               a.AdsetID,
			AdsetOptimizationGoal: a.OptimizationGoal,
			Objective:             objective,
			AdAccountID:           params.AccountID,
			AdAccountRefID:        params.AccountRefID,
			ClientID:              params.ClientID,
		})
		if err != nil {
			logger.WithError(err).WithField("ad_id", a.ID).Warn(vendor + ": failed to save ad")
			result.Skipped++
			continue
		}

		result.Ads++
	}

	logger.WithFields(logrus.Fields{
		"campaigns": result.Campaigns,
		"ads":       result.Ads,
		"skipped":   result.Skipped,
	}).Info(vendor + ": sync finished")

	return result
}
