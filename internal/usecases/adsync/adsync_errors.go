package adsync

import (
	"errors"
	"fmt"
)

// Erros específicos para sincronização e operações em anúncios
var (
	// Erros de validação
	ErrAccountIDRequired = errors.New("ad account ID is required")
	ErrAdIDRequired      = errors.New("ad ID is required")
	ErrUnknownPlatform   = errors.New("unknown platform")

	// Erros de estado da conta
	ErrAccountNotFound = errors.New("ad account not found")
	ErrAccountInactive = errors.New("ad account is inactive")

	// Erros de plataforma
	ErrPlatformNotImplemented = errors.New("platform integration is not implemented")
	ErrOperationNotSupported  = errors.New("operation not supported by platform")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// SyncError é um erro com contexto adicional para a conta envolvida
type SyncError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, accountID string, details string) *SyncError {
	return &SyncError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
