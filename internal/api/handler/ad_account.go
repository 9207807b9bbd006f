package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/internal/usecases/adsync"
	"github.com/vfg2006/ad-ops-api/pkg/log"
)

const maxSyncDays = 365

// SyncAdAccount executa a sincronização completa de uma conta.
// O parâmetro opcional days é validado e registrado, mas não restringe a busca:
// a conta é apagada e recarregada por inteiro.
func SyncAdAccount(service adsync.AdSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, err := parseQueryInt(r, "days", 0, 0, maxSyncDays)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if !authorizeAccount(w, r, service, id) {
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"days":       days,
		}).Info("sync: iniciando sincronização da conta")

		summary, err := service.SyncAccount(r.Context(), id, days)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"run_id":     summary.RunID,
			"ok":         summary.OK,
			"campaigns":  summary.Campaigns,
			"ads":        summary.Ads,
		}).Info("sync: sincronização finalizada")

		writeJSON(w, http.StatusOK, summary)
	})
}

func ListAccountAds(service adsync.AdSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !authorizeAccount(w, r, service, id) {
			return
		}

		ads, err := service.ListAds(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if ads == nil {
			ads = []domain.Ad{}
		}

		writeJSON(w, http.StatusOK, ads)
	})
}

func ListAccountCampaigns(service adsync.AdSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if !authorizeAccount(w, r, service, id) {
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if campaigns == nil {
			campaigns = []domain.Campaign{}
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}

// PauseAd pausa o anúncio na plataforma. Falhas do fornecedor voltam como ok:false com status 200.
func PauseAd(service adsync.AdSyncService) http.Handler {
	return changeAdStatus(service, "pause", service.PauseAd)
}

func ReactivateAd(service adsync.AdSyncService) http.Handler {
	return changeAdStatus(service, "reactivate", service.ReactivateAd)
}

type statusChange func(ctx context.Context, accountID, adID string) (domain.ActionResult, error)

func changeAdStatus(service adsync.AdSyncService, action string, call statusChange) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		adID := params.ByName("ad_id")

		if !authorizeAccount(w, r, service, id) {
			return
		}

		result, err := call(r.Context(), id, adID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		fields := log.Fields{
			"account_id": id,
			"ad_id":      adID,
			"action":     action,
		}
		if result.OK {
			log.ForContext(r.Context()).WithFields(fields).Info("ads: status do anúncio alterado")
		} else {
			log.ForContext(r.Context()).WithFields(fields).WithField("error", result.Error).Warn("ads: plataforma recusou a alteração de status")
		}

		writeJSON(w, http.StatusOK, result)
	})
}
