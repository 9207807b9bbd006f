package domain

type AdStatus string

const (
	AdStatusActive AdStatus = "ACTIVE"
	AdStatusPaused AdStatus = "PAUSED"
)

// Campaign é uma campanha da plataforma; Objective fica no vocabulário do fornecedor
type Campaign struct {
	CampaignID     string `json:"campaign_id"`
	Name           string `json:"name"`
	Objective      string `json:"objective"`
	AdAccountID    string `json:"ad_account_id"`
	AdAccountRefID string `json:"ad_account_ref_id"`
	ClientID       string `json:"client_id"`
}

// Ad é um anúncio da plataforma (ou ad group, no caso do Pinterest)
type Ad struct {
	AdID                  string   `json:"ad_id"`
	AdName                string   `json:"ad_name"`
	EffectiveStatus       AdStatus `json:"effective_status"`
	CreativeID            string   `json:"creative_id"`
	CreativeThumb         *string  `json:"creative_thumb"`
	CampaignID            string   `json:"campaign_id"`
	AdsetID               string   `json:"adset_id"`
	AdsetOptimizationGoal string   `json:"adset_optimization_goal"`
	Objective             string   `json:"objective"`
	AdAccountID           string   `json:"ad_account_id"`
	AdAccountRefID        string   `json:"ad_account_ref_id"`
	ClientID              string   `json:"client_id"`
}
