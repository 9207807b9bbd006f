package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-ops-api/infrastructure/database"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

const (
	campaignsTable = "campaigns"
	activeAdsTable = "active_ads"
)

var campaignColumns = []string{
	"campaign_id",
	"name",
	"objective",
	"ad_account_id",
	"ad_account_ref_id",
	"client_id",
}

var adColumns = []string{
	"ad_id",
	"ad_name",
	"effective_status",
	"creative_id",
	"creative_thumb",
	"campaign_id",
	"adset_id",
	"adset_optimization_goal",
	"objective",
	"ad_account_id",
	"ad_account_ref_id",
	"client_id",
}

// ErrOwnedByOtherAccount indica que o id da plataforma já está gravado em outra conta local
var ErrOwnedByOtherAccount = errors.New("row belongs to another ad account")

// AdStore grava e lê campanhas e anúncios sincronizados, sempre no escopo de uma conta local
type AdStore interface {
	DeleteAccountData(ctx context.Context, accountRefID string) error
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error
	SaveAd(ctx context.Context, ad domain.Ad) error
	ListCampaigns(ctx context.Context, accountRefID string) ([]domain.Campaign, error)
	ListAds(ctx context.Context, accountRefID string) ([]domain.Ad, error)
}

type adStore struct {
	conn *database.Connection
}

func NewAdStore(conn *database.Connection) AdStore {
	return &adStore{
		conn: conn,
	}
}

// DeleteAccountData remove anúncios e campanhas da conta, nessa ordem por causa das referências
func (s *adStore) DeleteAccountData(ctx context.Context, accountRefID string) error {
	for _, table := range []string{activeAdsTable, campaignsTable} {
		query, args, err := s.conn.Builder().
			Delete(table).
			Where(squirrel.Eq{"ad_account_ref_id": accountRefID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return wrapDBError(err)
		}
	}

	return nil
}

func (s *adStore) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	query, args, err := s.conn.Builder().
		Insert(campaignsTable).
		Columns(append(campaignColumns, "updated_at")...).
		Values(
			campaign.CampaignID,
			campaign.Name,
			campaign.Objective,
			campaign.AdAccountID,
			campaign.AdAccountRefID,
			campaign.ClientID,
			time.Now().UTC(),
		).
		Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				name = EXCLUDED.name,
				objective = EXCLUDED.objective,
				ad_account_id = EXCLUDED.ad_account_id,
				client_id = EXCLUDED.client_id,
				updated_at = EXCLUDED.updated_at
			WHERE campaigns.ad_account_ref_id = EXCLUDED.ad_account_ref_id
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return s.execUpsert(ctx, query, args)
}

func (s *adStore) SaveAd(ctx context.Context, ad domain.Ad) error {
	query, args, err := s.conn.Builder().
		Insert(activeAdsTable).
		Columns(append(adColumns, "updated_at")...).
		Values(
			ad.AdID,
			ad.AdName,
			string(ad.EffectiveStatus),
			ad.CreativeID,
			ad.CreativeThumb,
			ad.CampaignID,
			ad.AdsetID,
			ad.AdsetOptimizationGoal,
			ad.Objective,
			ad.AdAccountID,
			ad.AdAccountRefID,
			ad.ClientID,
			time.Now().UTC(),
		).
		Suffix(`
			ON CONFLICT (ad_id) DO UPDATE SET
				ad_name = EXCLUDED.ad_name,
				effective_status = EXCLUDED.effective_status,
				creative_id = EXCLUDED.creative_id,
				creative_thumb = EXCLUDED.creative_thumb,
				campaign_id = EXCLUDED.campaign_id,
				adset_id = EXCLUDED.adset_id,
				adset_optimization_goal = EXCLUDED.adset_optimization_goal,
				objective = EXCLUDED.objective,
				ad_account_id = EXCLUDED.ad_account_id,
				client_id = EXCLUDED.client_id,
				updated_at = EXCLUDED.updated_at
			WHERE active_ads.ad_account_ref_id = EXCLUDED.ad_account_ref_id
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return s.execUpsert(ctx, query, args)
}

// execUpsert falha quando o conflito é com uma linha de outra conta local, que fica intocada
func (s *adStore) execUpsert(ctx context.Context, query string, args []interface{}) error {
	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return wrapDBError(err)
	}
	if affected == 0 {
		return ErrOwnedByOtherAccount
	}

	return nil
}

func (s *adStore) ListCampaigns(ctx context.Context, accountRefID string) ([]domain.Campaign, error) {
	query, args, err := s.conn.Builder().
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"ad_account_ref_id": accountRefID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)

	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(
			&c.CampaignID,
			&c.Name,
			&c.Objective,
			&c.AdAccountID,
			&c.AdAccountRefID,
			&c.ClientID,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a campanha: %w", err)
		}

		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return campaigns, nil
}

func (s *adStore) ListAds(ctx context.Context, accountRefID string) ([]domain.Ad, error) {
	query, args, err := s.conn.Builder().
		Select(adColumns...).
		From(activeAdsTable).
		Where(squirrel.Eq{"ad_account_ref_id": accountRefID}).
		OrderBy("campaign_id ASC", "ad_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	ads := make([]domain.Ad, 0)

	for rows.Next() {
		var (
			ad     domain.Ad
			status string
			thumb  sql.NullString
		)

		if err := rows.Scan(
			&ad.AdID,
			&ad.AdName,
			&status,
			&ad.CreativeID,
			&thumb,
			&ad.CampaignID,
			&ad.AdsetID,
			&ad.AdsetOptimizationGoal,
			&ad.Objective,
			&ad.AdAccountID,
			&ad.AdAccountRefID,
			&ad.ClientID,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o anúncio: %w", err)
		}

		ad.EffectiveStatus = domain.AdStatus(status)
		if thumb.Valid {
			t := thumb.String
			ad.CreativeThumb = &t
		}

		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return ads, nil
}
