package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Security  Security  `mapstructure:",squash"`
	HTTP      HTTP      `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	Google    Google    `mapstructure:",squash"`
	Pinterest Pinterest `mapstructure:",squash"`
	TikTok    TikTok    `mapstructure:",squash"`
	AdSync    AdSync    `mapstructure:",squash"`
	Metrics   Metrics   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`

	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	// Migrate executa as migrations do goose ao iniciar
	Migrate bool `mapstructure:"database_migrate"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Security struct {
	TokenEncryptionKey string `mapstructure:"token_encryption_key"`
}

type HTTP struct {
	VendorTimeout time.Duration `mapstructure:"vendor_request_timeout"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"meta_url"`
	Version string `mapstructure:"meta_version"`
}

type Google struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
}

type Pinterest struct {
	BaseURL string `mapstructure:"pinterest_base_url"`
}

type TikTok struct {
	BaseURL string `mapstructure:"tiktok_base_url"`
}

type AdSync struct {
	CronSchedule        string `mapstructure:"ad_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"ad_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"ad_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"ad_sync_enabled"`
}

type Metrics struct {
	DefaultDays int `mapstructure:"metrics_default_days"`
	ChunkSize   int `mapstructure:"metrics_chunk_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("TOKEN_ENCRYPTION_KEY", "your_encryption_key") // ONLY LOCAL

	viper.SetDefault("VENDOR_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("PINTEREST_BASE_URL", "https://api.pinterest.com/v5")
	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")

	// Defaults para sincronização agendada de anúncios
	viper.SetDefault("AD_SYNC_CRON", "0 2 * * *")        // Todos os dias às 2h da manhã
	viper.SetDefault("AD_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("AD_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 contas em paralelo
	viper.SetDefault("AD_SYNC_ENABLED", false)           // Habilitar sincronização agendada

	viper.SetDefault("METRICS_DEFAULT_DAYS", 7)
	viper.SetDefault("METRICS_CHUNK_SIZE", 20)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Finalize()

	return config, nil
}

// Finalize calcula os campos derivados da configuração
func (c *Config) Finalize() {
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	switch c.Database.Driver {
	case "sqlite":
		c.Database.DSN = c.Database.URL
	default:
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	}

	if c.Metrics.DefaultDays <= 0 {
		c.Metrics.DefaultDays = 7
	}

	if c.AdSync.MaxConcurrentJobs <= 0 {
		c.AdSync.MaxConcurrentJobs = 1
	}

	if c.Google.DeveloperToken == "" {
		logrus.Warn("GOOGLE_ADS_DEVELOPER_TOKEN não configurado; chamadas ao Google Ads serão rejeitadas")
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
