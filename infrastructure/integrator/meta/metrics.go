package meta

import (
	metadomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

// NormalizeInsight traduz uma linha de insights do Meta; spend já vem na moeda da conta
func NormalizeInsight(in *metadomain.AdInsight) *domain.NormalizedMetrics {
	spend := platform.ParseDecimal(in.Spend)

	purchases, hasPurchases := metadomain.FirstAction(in.Actions, metadomain.PurchaseActionTypes)
	leads, hasLeads := metadomain.FirstAction(in.Actions, metadomain.LeadActionTypes)
	purchaseValue, _ := metadomain.FirstAction(in.ActionValues, metadomain.PurchaseActionTypes)

	conversions := platform.ParseDecimal(purchases).Add(platform.ParseDecimal(leads))

	extras := map[string]any{
		"reach":     platform.ParseDecimal(in.Reach).IntPart(),
		"frequency": platform.ParseDecimal(in.Frequency).Round(2).InexactFloat64(),
	}
	if hasPurchases {
		extras["purchases"] = platform.ParseDecimal(purchases).InexactFloat64()
	}
	if hasLeads {
		extras["leads"] = platform.ParseDecimal(leads).InexactFloat64()
	}
	if len(in.Actions) > 0 {
		actions := make(map[string]float64, len(in.Actions))
		for _, a := range in.Actions {
			actions[a.ActionType] = platform.ParseDecimal(a.Value).InexactFloat64()
		}
		extras["actions"] = actions
	}

	return &domain.NormalizedMetrics{
		Spend:             spend.Round(2).InexactFloat64(),
		Impressions:       platform.ParseDecimal(in.Impressions).IntPart(),
		Clicks:            platform.ParseDecimal(in.Clicks).IntPart(),
		CTR:               platform.ParseDecimal(in.CTR).Round(2).InexactFloat64(),
		CPC:               platform.ParseDecimal(in.CPC).Round(2).InexactFloat64(),
		CPM:               platform.ParseDecimal(in.CPM).Round(2).InexactFloat64(),
		Conversions:       conversions.InexactFloat64(),
		ConversionValue:   platform.ParseDecimal(purchaseValue).Round(2).InexactFloat64(),
		CostPerConversion: platform.Ratio(spend, conversions),
		Extras:            extras,
	}
}
