package tiktok

import (
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	tiktokdomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

// NormalizeReport converte uma linha do relatório integrado. O TikTok já reporta em moeda e o CTR em percentual.
func NormalizeReport(row *tiktokdomain.ReportRow) *domain.NormalizedMetrics {
	metric := func(name string) string { return row.Metrics[name] }

	spend := platform.ParseDecimal(metric("spend"))
	conversions := platform.ParseDecimal(metric("conversion"))
	payments := platform.ParseDecimal(metric("complete_payment"))
	conversionValue := payments.Mul(platform.ParseDecimal(metric("value_per_complete_payment")))

	return &domain.NormalizedMetrics{
		Spend:             spend.Round(2).InexactFloat64(),
		Impressions:       platform.ParseDecimal(metric("impressions")).IntPart(),
		Clicks:            platform.ParseDecimal(metric("clicks")).IntPart(),
		CTR:               platform.ParseDecimal(metric("ctr")).Round(4).InexactFloat64(),
		CPC:               platform.ParseDecimal(metric("cpc")).Round(2).InexactFloat64(),
		CPM:               platform.ParseDecimal(metric("cpm")).Round(2).InexactFloat64(),
		Conversions:       conversions.Round(2).InexactFloat64(),
		ConversionValue:   conversionValue.Round(2).InexactFloat64(),
		CostPerConversion: platform.Ratio(spend, conversions),
		Extras: map[string]any{
			"reach":            platform.ParseDecimal(metric("reach")).IntPart(),
			"complete_payment": payments.IntPart(),
			"video_views":      platform.ParseDecimal(metric("video_play_actions")).IntPart(),
		},
	}
}
