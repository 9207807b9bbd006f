package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
}

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Objective       string `json:"objective"`
	EffectiveStatus string `json:"effective_status"`
}

type AdSet struct {
	ID               string `json:"id"`
	OptimizationGoal string `json:"optimization_goal"`
}

type Creative struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type Ad struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	EffectiveStatus string    `json:"effective_status"`
	CampaignID      string    `json:"campaign_id"`
	AdsetID         string    `json:"adset_id"`
	Adset           *AdSet    `json:"adset,omitempty"`
	Creative        *Creative `json:"creative,omitempty"`
}

type CampaignsResponse struct {
	Data   []Campaign `json:"data"`
	Paging Paging     `json:"paging"`
}

type AdsResponse struct {
	Data   []Ad   `json:"data"`
	Paging Paging `json:"paging"`
}

type StatusUpdateResponse struct {
	Success bool `json:"success"`
}
