package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/infrastructure/database"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/google"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/pinterest"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/pinterest/pinterestclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/ad-ops-api/infrastructure/repository"
	"github.com/vfg2006/ad-ops-api/internal/api"
	"github.com/vfg2006/ad-ops-api/internal/config"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/internal/scheduler"
	"github.com/vfg2006/ad-ops-api/internal/usecases/adsync"
	"github.com/vfg2006/ad-ops-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-ops-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-ops-api/pkg/log"
	"github.com/vfg2006/ad-ops-api/pkg/metrics"
	"github.com/vfg2006/ad-ops-api/pkg/secret"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg)
	defer conn.Close()

	cipher, err := secret.NewCipher(cfg.Security.TokenEncryptionKey)
	if err != nil {
		logrus.WithError(err).Fatal("Chave de criptografia de tokens inválida")
	}

	accountRepo := repository.NewAdAccountRepository(conn, cipher)
	adStore := repository.NewAdStore(conn)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	syncMetrics := metrics.NewAdSyncMetrics(registry)

	platforms := platform.NewRegistry(platformClients(cfg))

	adSyncService := adsync.NewService(accountRepo, adStore, platforms, syncMetrics)
	metricsService := insighting.NewService(cfg, accountRepo, platforms, syncMetrics)

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a autenticação")
	}

	adSyncCron := scheduler.NewAdSyncService(adSyncService, cfg)
	if err := adSyncCron.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de anúncios")
	}

	server, err := api.New(cfg, api.Dependencies{
		DB:            conn,
		Gatherer:      registry,
		AdSync:        adSyncService,
		Metrics:       metricsService,
		Authenticator: authenticator,
		AdSyncCron:    adSyncCron,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// platformClients monta os clientes das plataformas com integração.
// Plataformas conhecidas sem cliente ficam registradas como não implementadas.
func platformClients(cfg *config.Config) map[domain.Platform]platform.Client {
	timeout := cfg.HTTP.VendorTimeout

	clients := map[domain.Platform]platform.Client{
		domain.PlatformMeta:      meta.New(metaclient.NewClient(cfg.Meta.URL, timeout)),
		domain.PlatformPinterest: pinterest.New(pinterestclient.NewClient(cfg.Pinterest.BaseURL, timeout)),
		domain.PlatformTikTok:    tiktok.New(tiktokclient.NewClient(cfg.TikTok.BaseURL, timeout)),
	}

	if cfg.Google.DeveloperToken == "" {
		logrus.Warn("GOOGLE_ADS_DEVELOPER_TOKEN não configurado, integração Google Ads desativada")
		return clients
	}

	clients[domain.PlatformGoogle] = google.New(googleclient.NewClient(googleclient.ClientOpts{
		BaseURL:         cfg.Google.BaseURL,
		Version:         cfg.Google.Version,
		DeveloperToken:  cfg.Google.DeveloperToken,
		LoginCustomerID: cfg.Google.LoginCustomerID,
		Timeout:         timeout,
	}))

	return clients
}

// dbconn cria a conexão com o banco e aplica as migrations quando habilitado
func dbconn(ctx context.Context, cfg *config.Config) *database.Connection {
	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	if cfg.Database.Migrate {
		if err := database.Migrate(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	logrus.WithField("driver", conn.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
