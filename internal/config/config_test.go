package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Finalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantDSN string
	}{
		{
			name: "postgres monta a URL completa",
			cfg: Config{Database: Database{
				Driver:   "postgres",
				User:     "adops",
				Password: "secret",
				URL:      "db:5432/adops?sslmode=disable",
			}},
			wantDSN: "postgres://adops:secret@db:5432/adops?sslmode=disable",
		},
		{
			name:    "sqlite usa a URL como veio",
			cfg:     Config{Database: Database{Driver: "sqlite", URL: "file:adops.db?_time_format=sqlite"}},
			wantDSN: "file:adops.db?_time_format=sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Meta = Meta{BaseURL: "https://graph.facebook.com", Version: "v22.0"}

			cfg.Finalize()

			assert.Equal(t, tt.wantDSN, cfg.Database.DSN)
			assert.Equal(t, "https://graph.facebook.com/v22.0", cfg.Meta.URL)
			assert.Equal(t, 7, cfg.Metrics.DefaultDays)
			assert.Equal(t, 1, cfg.AdSync.MaxConcurrentJobs)
		})
	}
}

func TestConfig_FinalizeKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Metrics: Metrics{DefaultDays: 30},
		AdSync:  AdSync{MaxConcurrentJobs: 5},
	}

	cfg.Finalize()

	assert.Equal(t, 30, cfg.Metrics.DefaultDays)
	assert.Equal(t, 5, cfg.AdSync.MaxConcurrentJobs)
}
