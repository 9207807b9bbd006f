package domain

import (
	"time"
)

type Platform string

const (
	PlatformMeta      Platform = "meta"
	PlatformGoogle    Platform = "google"
	PlatformPinterest Platform = "pinterest"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
)

// KnownPlatforms lista todas as plataformas aceitas no cadastro de contas,
// inclusive as que ainda não possuem integração
var KnownPlatforms = []Platform{
	PlatformMeta,
	PlatformGoogle,
	PlatformPinterest,
	PlatformTikTok,
	PlatformLinkedIn,
}

func (p Platform) IsKnown() bool {
	for _, known := range KnownPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

// AdAccount representa um conjunto de credenciais de uma plataforma vinculado a um cliente.
// AccessToken já vem decifrado pelo repositório.
type AdAccount struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Platform    Platform   `json:"platform"`
	AccountName string     `json:"account_name"`
	AccountID   string     `json:"account_id"`
	AccessToken string     `json:"-"`
	IsActive    bool       `json:"is_active"`
	LastSyncAt  *time.Time `json:"last_sync_at"`
	SyncStatus  SyncStatus `json:"sync_status"`
	SyncError   *string    `json:"sync_error"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type AdAccountResponse struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Platform    Platform   `json:"platform"`
	AccountName string     `json:"account_name"`
	AccountID   string     `json:"account_id"`
	IsActive    bool       `json:"is_active"`
	LastSyncAt  *time.Time `json:"last_sync_at"`
	SyncStatus  SyncStatus `json:"sync_status"`
	SyncError   *string    `json:"sync_error"`
}

func (a *AdAccount) ToResponse() *AdAccountResponse {
	return &AdAccountResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		Platform:    a.Platform,
		AccountName: a.AccountName,
		AccountID:   a.AccountID,
		IsActive:    a.IsActive,
		LastSyncAt:  a.LastSyncAt,
		SyncStatus:  a.SyncStatus,
		SyncError:   a.SyncError,
	}
}

// Capabilities indica o que cada plataforma suporta, independente de existir implementação
type Capabilities struct {
	Sync       bool `json:"sync_supported"`
	Metrics    bool `json:"metrics_supported"`
	Pause      bool `json:"pause_supported"`
	Reactivate bool `json:"reactivate_supported"`
}

type PlatformInfo struct {
	Platform     Platform     `json:"platform"`
	Implemented  bool         `json:"implemented"`
	Capabilities Capabilities `json:"capabilities"`
}
