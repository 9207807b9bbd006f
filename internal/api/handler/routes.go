package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ad-ops-api/internal/api/handler/router"
	"github.com/vfg2006/ad-ops-api/internal/usecases/adsync"
	"github.com/vfg2006/ad-ops-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-ops-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}

func Platforms(service adsync.AdSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/platforms",
			Method:      http.MethodGet,
			Handler:     ListPlatforms(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/platforms/:platform/validate-token",
			Method:      http.MethodPost,
			Handler:     ValidatePlatformToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdAccounts(service adsync.AdSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ad-accounts/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncAdAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ad-accounts/:id/ads",
			Method:      http.MethodGet,
			Handler:     ListAccountAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ad-accounts/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListAccountCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ad-accounts/:id/ads/:ad_id/pause",
			Method:      http.MethodPost,
			Handler:     PauseAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ad-accounts/:id/ads/:ad_id/reactivate",
			Method:      http.MethodPost,
			Handler:     ReactivateAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdMetrics(owners AccountOwnerFinder, service insighting.AdMetricsProvider, chunkSize int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ad-accounts/:id/metrics",
			Method:      http.MethodPost,
			Handler:     GetAdMetrics(owners, service, chunkSize),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AgencyOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AgencyOnly()},
		},
	}
}
