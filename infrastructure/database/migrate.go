package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrate aplica todas as migrations pendentes no banco da conexão
func Migrate(ctx context.Context, conn *Connection) error {
	if conn == nil || conn.DB == nil {
		return fmt.Errorf("db is required")
	}

	dialect := "postgres"
	if conn.Driver == DriverSQLite {
		dialect = "sqlite3"
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(logrus.StandardLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn.DB, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, conn.DB)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	logrus.WithField("version", version).Info("Migrations aplicadas com sucesso")

	return nil
}
