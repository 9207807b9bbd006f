package pinterestdomain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) String() string {
	if e.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

type AdAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type Campaign struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	ObjectiveType string `json:"objective_type"`
}

// AdGroup faz o papel de conjunto de anúncios e de anúncio na sincronização
type AdGroup struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CampaignID    string `json:"campaign_id"`
	Status        string `json:"status"`
	BillableEvent string `json:"billable_event"`
}

type CampaignsPage struct {
	Items    []Campaign `json:"items"`
	Bookmark *string    `json:"bookmark"`
}

type AdGroupsPage struct {
	Items    []AdGroup `json:"items"`
	Bookmark *string   `json:"bookmark"`
}

// AdGroupAnalytics é uma linha do relatório com granularity=TOTAL
type AdGroupAnalytics struct {
	AdGroupID                       string          `json:"AD_GROUP_ID"`
	SpendInMicroDollar              decimal.Decimal `json:"SPEND_IN_MICRO_DOLLAR"`
	Impressions                     decimal.Decimal `json:"IMPRESSION_1"`
	Clicks                          decimal.Decimal `json:"CLICKTHROUGH_1"`
	CTR                             decimal.Decimal `json:"CTR"`
	CPCInMicroDollar                decimal.Decimal `json:"CPC_IN_MICRO_DOLLAR"`
	CPMInMicroDollar                decimal.Decimal `json:"CPM_IN_MICRO_DOLLAR"`
	TotalConversions                decimal.Decimal `json:"TOTAL_CONVERSIONS"`
	TotalCheckoutValueInMicroDollar decimal.Decimal `json:"TOTAL_CHECKOUT_VALUE_IN_MICRO_DOLLAR"`
	Saves                           decimal.Decimal `json:"SAVE_1"`
	Engagement                      decimal.Decimal `json:"ENGAGEMENT_1"`
}

type AdGroupStatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateException struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type UpdateItem struct {
	Data       *AdGroupStatusUpdate `json:"data"`
	Exceptions []UpdateException    `json:"exceptions"`
}

type UpdateResponse struct {
	Items []UpdateItem `json:"items"`
}
