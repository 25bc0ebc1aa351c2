package reservation

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов к БД.
// Реализуется *sql.DB; в тестах подменяется моком.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
