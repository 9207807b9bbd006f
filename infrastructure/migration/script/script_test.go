package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestReadAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contas.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"client_id":"client-1","platform":"meta","account_name":"Loja","account_id":"act_1","access_token":"tok"}
	]`), 0o600))

	accounts, err := readAccounts(path)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "act_1", accounts[0].AccountID)

	_, err = readAccounts(filepath.Join(t.TempDir(), "inexistente.json"))
	assert.Error(t, err)
}

func TestImportAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdAccountRepository(ctrl)

	repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, account *domain.AdAccount) error {
		assert.Equal(t, domain.PlatformTikTok, account.Platform)
		assert.Equal(t, "tok", account.AccessToken)
		assert.False(t, account.IsActive)
		return nil
	})
	repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(assert.AnError)

	success, failed := importAccounts(context.Background(), repo, []Account{
		{ClientID: "client-1", Platform: "tiktok", AccountID: "adv-1", AccessToken: "tok", Inactive: true},
		{ClientID: "client-1", Platform: "orkut", AccountID: "x", AccessToken: "tok"},
		{ClientID: "client-1", Platform: "meta", AccountID: "act_2"},
	})

	assert.Equal(t, 1, success)
	assert.Equal(t, 2, failed)
}
