package googledomain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *ErrorResponse) String() string {
	if e.Error.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s)", e.Error.Message, e.Error.Status)
}

type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []SearchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// SearchRow é uma linha de resultado GAQL; só vêm preenchidos os recursos pedidos no SELECT
type SearchRow struct {
	Campaign  *Campaign  `json:"campaign,omitempty"`
	AdGroup   *AdGroup   `json:"adGroup,omitempty"`
	AdGroupAd *AdGroupAd `json:"adGroupAd,omitempty"`
	Metrics   *Metrics   `json:"metrics,omitempty"`
}

type Campaign struct {
	ResourceName           string `json:"resourceName"`
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

type AdGroup struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
}

type AdGroupAd struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
	Ad           Ad     `json:"ad"`
}

type Ad struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Metrics usa decimal porque a API manda int64 como string e double como número
type Metrics struct {
	CostMicros       decimal.Decimal `json:"costMicros"`
	Impressions      decimal.Decimal `json:"impressions"`
	Clicks           decimal.Decimal `json:"clicks"`
	Conversions      decimal.Decimal `json:"conversions"`
	ConversionsValue decimal.Decimal `json:"conversionsValue"`
	VideoViews       decimal.Decimal `json:"videoViews"`
	Interactions     decimal.Decimal `json:"interactions"`
}

func (m *Metrics) Add(other *Metrics) {
	if other == nil {
		return
	}
	m.CostMicros = m.CostMicros.Add(other.CostMicros)
	m.Impressions = m.Impressions.Add(other.Impressions)
	m.Clicks = m.Clicks.Add(other.Clicks)
	m.Conversions = m.Conversions.Add(other.Conversions)
	m.ConversionsValue = m.ConversionsValue.Add(other.ConversionsValue)
	m.VideoViews = m.VideoViews.Add(other.VideoViews)
	m.Interactions = m.Interactions.Add(other.Interactions)
}
