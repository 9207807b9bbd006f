package tiktokdomain

// Envelope é o formato de toda resposta da Business API; code != 0 é erro mesmo com HTTP 200
type Envelope[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Data      T      `json:"data"`
}

type PageInfo struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
}

type Advertiser struct {
	AdvertiserID string `json:"advertiser_id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Currency     string `json:"currency"`
}

type AdvertiserList struct {
	List []Advertiser `json:"list"`
}

type Campaign struct {
	CampaignID      string `json:"campaign_id"`
	CampaignName    string `json:"campaign_name"`
	ObjectiveType   string `json:"objective_type"`
	OperationStatus string `json:"operation_status"`
}

type AdGroup struct {
	AdgroupID        string `json:"adgroup_id"`
	AdgroupName      string `json:"adgroup_name"`
	CampaignID       string `json:"campaign_id"`
	OptimizationGoal string `json:"optimization_goal"`
}

type Ad struct {
	AdID            string   `json:"ad_id"`
	AdName          string   `json:"ad_name"`
	CampaignID      string   `json:"campaign_id"`
	AdgroupID       string   `json:"adgroup_id"`
	OperationStatus string   `json:"operation_status"`
	VideoID         string   `json:"video_id"`
	ImageIDs        []string `json:"image_ids"`
}

type CampaignPage struct {
	List     []Campaign `json:"list"`
	PageInfo PageInfo   `json:"page_info"`
}

type AdGroupPage struct {
	List     []AdGroup `json:"list"`
	PageInfo PageInfo  `json:"page_info"`
}

type AdPage struct {
	List     []Ad     `json:"list"`
	PageInfo PageInfo `json:"page_info"`
}

// ReportRow traz métricas como string, no formato do relatório integrado
type ReportRow struct {
	Dimensions map[string]string `json:"dimensions"`
	Metrics    map[string]string `json:"metrics"`
}

type ReportPage struct {
	List     []ReportRow `json:"list"`
	PageInfo PageInfo    `json:"page_info"`
}

type StatusUpdateRequest struct {
	AdvertiserID    string   `json:"advertiser_id"`
	AdIDs           []string `json:"ad_ids"`
	OperationStatus string   `json:"operation_status"`
}

type StatusUpdateResult struct {
	AdIDs  []string `json:"ad_ids"`
	Status string   `json:"status"`
}

type Filter struct {
	FieldName   string `json:"field_name"`
	FilterType  string `json:"filter_type"`
	FilterValue string `json:"filter_value"`
}
