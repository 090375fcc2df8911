package store

import (
	"database/sql"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/migrations"
)

// DB wraps the raw sql.DB connection together with the backend-specific
// error classifier used to decide whether failed operations are retryable.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator classifies driver-level errors for a specific database
// backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the embedded goose migrations. Only meaningful for the
// PostgreSQL backend; the SQLite backend bootstraps its schema inline.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
