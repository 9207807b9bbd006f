package metadomain

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight é uma linha do relatório de insights com level=ad; números chegam como string
type AdInsight struct {
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	CTR          string   `json:"ctr"`
	CPC          string   `json:"cpc"`
	CPM          string   `json:"cpm"`
	Reach        string   `json:"reach"`
	Frequency    string   `json:"frequency"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

type InsightsResponse struct {
	Data   []AdInsight `json:"data"`
	Paging Paging      `json:"paging"`
}

// Os três tipos de compra se sobrepõem; vale o primeiro encontrado nesta ordem
var PurchaseActionTypes = []string{
	"omni_purchase",
	"purchase",
	"offsite_conversion.fb_pixel_purchase",
}

var LeadActionTypes = []string{
	"lead",
	"onsite_conversion.lead_grouped",
	"offsite_conversion.fb_pixel_lead",
}

// FirstAction devolve o valor do primeiro tipo de ação presente, seguindo a ordem de prioridade
func FirstAction(actions []Action, priority []string) (string, bool) {
	for _, actionType := range priority {
		for _, a := range actions {
			if a.ActionType == actionType {
				return a.Value, true
			}
		}
	}
	return "", false
}
