package store

import (
	"context"
	"fmt"

	"github.com/adilzhm/travel-diary/internal/config"
	"github.com/adilzhm/travel-diary/internal/logger"
)

// Storages bundles every repository behind one value so the service layer
// takes a single dependency.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
	TripRepository TripRepository

	db *DB
}

// NewStorages connects to the configured backend and constructs the
// repositories on top of it. PostgreSQL is preferred when a DSN is set and
// gets its schema from the embedded goose migrations; otherwise a local
// SQLite file is used, bootstrapped inline.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch {
	case cfg.DB.DSN != "":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to postgres: %w", err)
		}
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
	case cfg.DB.SQLitePath != "":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to sqlite: %w", err)
		}
	default:
		return nil, fmt.Errorf("no database backend configured")
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		TripRepository: NewTripRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
