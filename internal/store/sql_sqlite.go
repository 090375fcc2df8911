package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adilzhm/travel-diary/internal/config"
	"github.com/adilzhm/travel-diary/internal/logger"
)

// sqliteSchema mirrors the goose migrations for single-node deployments.
// SQLite leaves foreign keys unenforced at its default settings; the orphan
// sweep worker compensates by removing posts whose owner row is gone.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    email         TEXT     NOT NULL,
    full_name     TEXT     NOT NULL,
    bio           TEXT     NOT NULL DEFAULT '',
    password_hash TEXT     NOT NULL,
    profile_image TEXT     NOT NULL DEFAULT '',
    is_admin      BOOLEAN  NOT NULL DEFAULT 0,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_users_email ON users (email);

CREATE TABLE IF NOT EXISTS diary_posts (
    post_id     INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id     INTEGER  NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    destination TEXT     NOT NULL,
    date        DATETIME NOT NULL,
    description TEXT     NOT NULL DEFAULT '',
    itinerary   TEXT     NOT NULL DEFAULT '',
    image       TEXT     NOT NULL DEFAULT '',
    visibility  TEXT     NOT NULL DEFAULT 'public'
        CHECK (visibility IN ('public', 'private')),
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_diary_posts_user_id ON diary_posts (user_id);

CREATE TABLE IF NOT EXISTS trips (
    trip_id     INTEGER PRIMARY KEY AUTOINCREMENT,
    destination TEXT     NOT NULL,
    date        DATETIME NOT NULL,
    description TEXT     NOT NULL DEFAULT '',
    price       REAL     NOT NULL DEFAULT 0,
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS trip_bookings (
    user_id    INTEGER  NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    trip_id    INTEGER  NOT NULL REFERENCES trips (trip_id),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (user_id, trip_id)
);
`

// NewConnectSQLite opens (creating if necessary) a local SQLite database
// file, bootstraps the schema, and returns the wrapped [*DB].
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.SQLitePath); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
		return nil, fmt.Errorf("error bootstrapping sqlite schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
