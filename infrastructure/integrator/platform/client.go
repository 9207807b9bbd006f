package platform

import (
	"context"

	"github.com/vfg2006/ad-ops-api/internal/domain"
)

// Client é o contrato comum das integrações com plataformas de anúncio.
// Nenhum método devolve error: falhas esperadas viram ok:false com a mensagem do fornecedor.
type Client interface {
	ValidateToken(ctx context.Context, token, accountID string) bool
	SyncAds(ctx context.Context, store Store, params SyncParams) domain.SyncResult
	GetMetrics(ctx context.Context, params MetricsParams) map[string]domain.MetricsResult
	PauseAd(ctx context.Context, params StatusParams) domain.ActionResult
	ReactivateAd(ctx context.Context, params StatusParams) domain.ActionResult
}

// Store é a parte do repositório que a sincronização escreve
type Store interface {
	DeleteAccountData(ctx context.Context, accountRefID string) error
	SaveCampaign(ctx context.Context, campaign domain.Campaign) error
	SaveAd(ctx context.Context, ad domain.Ad) error
}

type SyncParams struct {
	// AccountRefID é o id local da AdAccount; todas as escritas ficam nesse escopo
	AccountRefID string
	ClientID     string
	Token        string
	// AccountID é o id da conta na plataforma
	AccountID string
	// Days é informativo: a sincronização sempre busca todos os anúncios da conta
	Days int
}

type MetricsParams struct {
	Token     string
	AccountID string
	AdIDs     []string
	Days      int
	StartDate string
	EndDate   string
}

type StatusParams struct {
	Token     string
	AccountID string
	AdID      string
}
