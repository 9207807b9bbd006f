package domain

import (
	"time"
)

// NoDataMessage é o erro devolvido para anúncios sem dados no período
const NoDataMessage = "No data available for this period"

// NormalizedMetrics é o formato comum de métricas para todas as plataformas.
// Spend e valores monetários já estão em unidades de moeda (nunca micros).
type NormalizedMetrics struct {
	Spend             float64        `json:"spend"`
	Impressions       int64          `json:"impressions"`
	Clicks            int64          `json:"clicks"`
	CTR               float64        `json:"ctr"`
	CPC               float64        `json:"cpc"`
	CPM               float64        `json:"cpm"`
	Conversions       float64        `json:"conversions"`
	ConversionValue   float64        `json:"conversion_value"`
	CostPerConversion float64        `json:"cost_per_conversion"`
	Extras            map[string]any `json:"extras,omitempty"`
}

// MetricsResult é o resultado de um anúncio; nunca é persistido
type MetricsResult struct {
	OK      bool               `json:"ok"`
	Metrics *NormalizedMetrics `json:"metrics,omitempty"`
	Error   string             `json:"error,omitempty"`
}

func MetricsOK(m *NormalizedMetrics) MetricsResult {
	return MetricsResult{OK: true, Metrics: m}
}

func MetricsFailed(msg string) MetricsResult {
	return MetricsResult{OK: false, Error: msg}
}

// DateWindow é o intervalo de datas (inclusive) usado nos relatórios das plataformas
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func (w DateWindow) StartDate() string {
	return w.Start.Format(time.DateOnly)
}

func (w DateWindow) EndDate() string {
	return w.End.Format(time.DateOnly)
}

// Days retorna a quantidade de dias do intervalo, contando início e fim
func (w DateWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// MetricsQuery é o pedido de métricas feito pela camada de API
type MetricsQuery struct {
	AdIDs     []string
	Days      int
	StartDate string
	EndDate   string
}
