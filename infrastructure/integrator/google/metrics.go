package google

import (
	"github.com/shopspring/decimal"
	googledomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

var thousand = decimal.NewFromInt(1000)

// NormalizeMetrics converte micros para moeda; CTR segue o formato da Google (fração, não porcentagem)
func NormalizeMetrics(m *googledomain.Metrics) *domain.NormalizedMetrics {
	spend := platform.MicrosToCurrency(m.CostMicros)
	spendDec := platform.MicrosToDecimal(m.CostMicros)

	ctr := 0.0
	if !m.Impressions.IsZero() {
		ctr = m.Clicks.Div(m.Impressions).Round(4).InexactFloat64()
	}

	return &domain.NormalizedMetrics{
		Spend:             spend,
		Impressions:       m.Impressions.IntPart(),
		Clicks:            m.Clicks.IntPart(),
		CTR:               ctr,
		CPC:               platform.Ratio(spendDec, m.Clicks),
		CPM:               platform.Ratio(spendDec.Mul(thousand), m.Impressions),
		Conversions:       m.Conversions.Round(2).InexactFloat64(),
		ConversionValue:   m.ConversionsValue.Round(2).InexactFloat64(),
		CostPerConversion: platform.Ratio(spendDec, m.Conversions),
		Extras: map[string]any{
			"interactions": m.Interactions.IntPart(),
			"video_views":  m.VideoViews.IntPart(),
		},
	}
}
