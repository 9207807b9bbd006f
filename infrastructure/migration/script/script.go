// Command script importa contas de anúncios de um arquivo JSON.
// Os tokens são cifrados pelo repositório antes de chegar ao banco.
//
//	go run ./infrastructure/migration/script contas.json
package main

import (
	"context"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/infrastructure/database"
	"github.com/vfg2006/ad-ops-api/infrastructure/repository"
	"github.com/vfg2006/ad-ops-api/internal/config"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/pkg/log"
	"github.com/vfg2006/ad-ops-api/pkg/secret"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Account struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	Platform    string `json:"platform"`
	AccountName string `json:"account_name"`
	AccountID   string `json:"account_id"`
	AccessToken string `json:"access_token"`
	Inactive    bool   `json:"inactive"`
}

func main() {
	if len(os.Args) < 2 {
		logrus.Fatal("uso: script <arquivo.json>")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	accounts, err := readAccounts(os.Args[1])
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler arquivo de contas")
	}

	ctx := context.Background()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar migrations")
	}

	cipher, err := secret.NewCipher(cfg.Security.TokenEncryptionKey)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na chave de criptografia de tokens")
	}

	success, failed := importAccounts(ctx, repository.NewAdAccountRepository(conn, cipher), accounts)
	if failed > 0 {
		os.Exit(1)
	}

	logrus.WithField("accounts", success).Info("Importação finalizada")
}

func readAccounts(path string) ([]Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func importAccounts(ctx context.Context, repo repository.AdAccountRepository, accounts []Account) (successCount, errorCount int) {
	logrus.Infof("Iniciando importação de %d contas de anúncios...", len(accounts))
	startTime := time.Now()

	for i, a := range accounts {
		fields := logrus.Fields{
			"index":      i + 1,
			"platform":   a.Platform,
			"account_id": a.AccountID,
		}

		if a.ClientID == "" || a.AccountID == "" || a.AccessToken == "" {
			logrus.WithFields(fields).Error("ERRO: client_id, account_id e access_token são obrigatórios")
			errorCount++
			continue
		}

		account := &domain.AdAccount{
			ID:          a.ID,
			ClientID:    a.ClientID,
			Platform:    domain.Platform(a.Platform),
			AccountName: a.AccountName,
			AccountID:   a.AccountID,
			AccessToken: a.AccessToken,
			IsActive:    !a.Inactive,
		}

		if err := repo.SaveOrUpdate(ctx, account); err != nil {
			logrus.WithFields(fields).WithError(err).Error("ERRO ao inserir conta")
			errorCount++
			continue
		}

		successCount++
		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d contas processadas", i+1, len(accounts))
		}
	}

	logrus.Infof("Importação concluída em %v. Sucesso: %d, Erros: %d", time.Since(startTime), successCount, errorCount)

	return successCount, errorCount
}
