package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ad-ops-api/pkg/log"
)

const maxMetricsAds = 500

type metricsRequest struct {
	AdIDs     []string `json:"ad_ids" validate:"required,min=1,max=500,dive,required"`
	Days      int      `json:"days" validate:"gte=0,lte=365"`
	StartDate string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// GetAdMetrics consulta as métricas ao vivo dos anúncios informados.
// Os ids são enviados em lotes sequenciais de chunkSize e o resultado é mesclado.
func GetAdMetrics(owners AccountOwnerFinder, service insighting.AdMetricsProvider, chunkSize int) http.Handler {
	if chunkSize <= 0 {
		chunkSize = maxMetricsAds
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body metricsRequest
		if err := decodeJSONBody(r, &body); err != nil {
			writeError(w, r, err)
			return
		}

		if (body.StartDate == "") != (body.EndDate == "") {
			writeError(w, r, &requestError{
				code:    apiErrors.ErrMissingRequiredData,
				message: "Falha na validação",
				details: map[string]string{"start_date": "must be sent with end_date"},
			})
			return
		}

		if !authorizeAccount(w, r, owners, id) {
			return
		}

		results := make(map[string]domain.MetricsResult, len(body.AdIDs))
		for _, chunk := range platform.Chunk(body.AdIDs, chunkSize) {
			partial, err := service.GetAdMetrics(r.Context(), id, domain.MetricsQuery{
				AdIDs:     chunk,
				Days:      body.Days,
				StartDate: body.StartDate,
				EndDate:   body.EndDate,
			})
			if err != nil {
				writeError(w, r, err)
				return
			}

			for adID, result := range partial {
				results[adID] = result
			}
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"ads":        len(results),
		}).Info("metrics: métricas consultadas")

		writeJSON(w, http.StatusOK, results)
	})
}
