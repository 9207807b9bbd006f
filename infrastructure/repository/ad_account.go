package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/infrastructure/database"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/pkg/secret"
	"github.com/vfg2006/ad-ops-api/pkg/utils"
)

const adAccountsTable = "ad_accounts"

var adAccountColumns = []string{
	"id",
	"client_id",
	"platform",
	"account_name",
	"account_id",
	"access_token",
	"is_active",
	"last_sync_at",
	"sync_status",
	"sync_error",
	"created_at",
	"updated_at",
}

var ErrAdAccountNotFound = errors.New("ad account not found")

type AdAccountRepository interface {
	GetAccountByID(ctx context.Context, id string) (*domain.AdAccount, error)
	ListActiveAccounts(ctx context.Context) ([]*domain.AdAccount, error)
	SaveOrUpdate(ctx context.Context, account *domain.AdAccount) error
	MarkSyncing(ctx context.Context, id string) error
	MarkSyncSuccess(ctx context.Context, id string, at time.Time) error
	MarkSyncError(ctx context.Context, id string, message string) error
}

type adAccountRepository struct {
	conn   *database.Connection
	cipher *secret.Cipher
}

// NewAdAccountRepository cria o repositório de contas; o cipher decifra os tokens ao ler
func NewAdAccountRepository(conn *database.Connection, cipher *secret.Cipher) AdAccountRepository {
	return &adAccountRepository{
		conn:   conn,
		cipher: cipher,
	}
}

func (r *adAccountRepository) GetAccountByID(ctx context.Context, id string) (*domain.AdAccount, error) {
	query, args, err := r.conn.Builder().
		Select(adAccountColumns...).
		From(adAccountsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	acc, err := r.deserializeAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (r *adAccountRepository) ListActiveAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	query, args, err := r.conn.Builder().
		Select(adAccountColumns...).
		From(adAccountsTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("client_id ASC", "platform ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)

	for rows.Next() {
		acc, err := r.deserializeAccount(rows)
		if err != nil {
			// Uma conta com token ilegível não pode impedir a listagem das demais
			logrus.WithError(err).Warn("ad_accounts: skipping unreadable account")
			continue
		}

		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (r *adAccountRepository) SaveOrUpdate(ctx context.Context, account *domain.AdAccount) error {
	if account == nil {
		return errors.New("account is required")
	}

	if !account.Platform.IsKnown() {
		return fmt.Errorf("unknown platform: %s", account.Platform)
	}

	if account.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("failed to generate id: %w", err)
		}
		account.ID = id
	}

	encrypted, err := r.cipher.Encrypt(account.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	if account.SyncStatus == "" {
		account.SyncStatus = domain.SyncStatusPending
	}

	query, args, err := r.conn.Builder().
		Insert(adAccountsTable).
		Columns(adAccountColumns...).
		Values(
			account.ID,
			account.ClientID,
			string(account.Platform),
			account.AccountName,
			account.AccountID,
			encrypted,
			account.IsActive,
			account.LastSyncAt,
			string(account.SyncStatus),
			account.SyncError,
			account.CreatedAt,
			account.UpdatedAt,
		).
		Suffix(`
			ON CONFLICT (client_id, platform, account_id) DO UPDATE SET
				account_name = EXCLUDED.account_name,
				access_token = EXCLUDED.access_token,
				is_active = EXCLUDED.is_active,
				updated_at = EXCLUDED.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (r *adAccountRepository) MarkSyncing(ctx context.Context, id string) error {
	return r.updateSyncState(ctx, id, map[string]any{
		"sync_status": string(domain.SyncStatusSyncing),
	})
}

// MarkSyncSuccess é a única transição que grava last_sync_at
func (r *adAccountRepository) MarkSyncSuccess(ctx context.Context, id string, at time.Time) error {
	return r.updateSyncState(ctx, id, map[string]any{
		"sync_status":  string(domain.SyncStatusSuccess),
		"sync_error":   nil,
		"last_sync_at": at.UTC(),
	})
}

func (r *adAccountRepository) MarkSyncError(ctx context.Context, id string, message string) error {
	return r.updateSyncState(ctx, id, map[string]any{
		"sync_status": string(domain.SyncStatusError),
		"sync_error":  message,
	})
}

func (r *adAccountRepository) updateSyncState(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return errors.New("ID is required")
	}

	fields["updated_at"] = time.Now().UTC()

	query, args, err := r.conn.Builder().
		Update(adAccountsTable).
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAdAccountNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *adAccountRepository) deserializeAccount(row rowScanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	var (
		platform   string
		status     string
		token      string
		lastSyncAt sql.NullTime
		syncError  sql.NullString
	)

	if err := row.Scan(
		&acc.ID,
		&acc.ClientID,
		&platform,
		&acc.AccountName,
		&acc.AccountID,
		&token,
		&acc.IsActive,
		&lastSyncAt,
		&status,
		&syncError,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.Platform = domain.Platform(platform)
	acc.SyncStatus = domain.SyncStatus(status)

	if lastSyncAt.Valid {
		t := lastSyncAt.Time
		acc.LastSyncAt = &t
	}

	if syncError.Valid {
		msg := syncError.String
		acc.SyncError = &msg
	}

	decrypted, err := r.cipher.Decrypt(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token for account %s: %w", acc.ID, err)
	}
	acc.AccessToken = decrypted

	return acc, nil
}

func wrapDBError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}
