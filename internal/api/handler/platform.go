package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/internal/usecases/adsync"
	"github.com/vfg2006/ad-ops-api/pkg/log"
)

type validateTokenRequest struct {
	Token     string `json:"token" validate:"required"`
	AccountID string `json:"account_id" validate:"required"`
}

type validateTokenResponse struct {
	Platform domain.Platform `json:"platform"`
	Valid    bool            `json:"valid"`
}

func ListPlatforms(service adsync.AdSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Platforms())
	})
}

// ValidatePlatformToken testa as credenciais antes do cadastro da conta
func ValidatePlatformToken(service adsync.AdSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := domain.Platform(httprouter.ParamsFromContext(r.Context()).ByName("platform"))

		var body validateTokenRequest
		if err := decodeJSONBody(r, &body); err != nil {
			writeError(w, r, err)
			return
		}

		valid, err := service.ValidateToken(r.Context(), p, body.Token, body.AccountID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"platform":   p,
			"account_id": body.AccountID,
			"valid":      valid,
		}).Info("platforms: token validado")

		writeJSON(w, http.StatusOK, validateTokenResponse{Platform: p, Valid: valid})
	})
}
