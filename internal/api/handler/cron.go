package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/pkg/apiErrors"
)

const CronJobTypeAdSync = "ad-sync"

// ManualSyncer é o agendador que pode ser disparado pela API
type ManualSyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	AdSyncService ManualSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeAdSync:
			if services.AdSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de anúncios não disponível", nil)
				return
			}

			started := services.AdSyncService.TriggerManualSync(r.Context())

			message := "Cron job iniciada com sucesso"
			status := http.StatusAccepted
			if !started {
				message = "Cron job já está em execução"
				status = http.StatusConflict
			}

			writeJSON(w, status, map[string]any{
				"message": message,
				"type":    cronType,
				"started": started,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ad-sync", nil)
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AdSyncService != nil {
			status[CronJobTypeAdSync] = services.AdSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
