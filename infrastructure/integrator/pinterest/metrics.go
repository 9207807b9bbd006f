package pinterest

import (
	pinterestdomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/pinterest/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

func NormalizeAnalytics(row *pinterestdomain.AdGroupAnalytics) *domain.NormalizedMetrics {
	spend := platform.MicrosToDecimal(row.SpendInMicroDollar)

	return &domain.NormalizedMetrics{
		Spend:             platform.MicrosToCurrency(row.SpendInMicroDollar),
		Impressions:       row.Impressions.IntPart(),
		Clicks:            row.Clicks.IntPart(),
		CTR:               row.CTR.Round(4).InexactFloat64(),
		CPC:               platform.MicrosToCurrency(row.CPCInMicroDollar),
		CPM:               platform.MicrosToCurrency(row.CPMInMicroDollar),
		Conversions:       row.TotalConversions.Round(2).InexactFloat64(),
		ConversionValue:   platform.MicrosToCurrency(row.TotalCheckoutValueInMicroDollar),
		CostPerConversion: platform.Ratio(spend, row.TotalConversions),
		Extras: map[string]any{
			"saves":      row.Saves.IntPart(),
			"engagement": row.Engagement.IntPart(),
		},
	}
}
