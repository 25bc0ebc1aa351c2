package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Run применяет все pending миграции из встроенной файловой системы
func Run(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrations: set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("migrations: apply migrations: %w", err)
	}

	return nil
}

// Version возвращает текущую версию схемы
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("migrations: get version: %w", err)
	}
	return version, nil
}
