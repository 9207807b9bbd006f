package domain

import (
	"time"
)

// SyncResult é o retorno de uma sincronização completa de uma conta em uma plataforma
type SyncResult struct {
	OK        bool   `json:"ok"`
	Campaigns int    `json:"campaigns"`
	Ads       int    `json:"ads"`
	Skipped   int    `json:"skipped"`
	Error     string `json:"error,omitempty"`
}

// FailedSync monta o resultado de uma sincronização abortada
func FailedSync(err error) SyncResult {
	msg := "unknown sync error"
	if err != nil {
		msg = err.Error()
	}

	return SyncResult{OK: false, Error: msg}
}

// SyncSummary é o resumo de uma execução do orquestrador para uma conta
type SyncSummary struct {
	RunID      string    `json:"run_id"`
	AccountID  string    `json:"account_id"`
	Platform   Platform  `json:"platform"`
	OK         bool      `json:"ok"`
	Campaigns  int       `json:"campaigns"`
	Ads        int       `json:"ads"`
	Skipped    int       `json:"skipped"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	DurationMs int64     `json:"duration_ms"`
}

// ActionResult é o retorno de pausar ou reativar um anúncio
type ActionResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func FailedAction(err error) ActionResult {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	return ActionResult{OK: false, Error: msg}
}
