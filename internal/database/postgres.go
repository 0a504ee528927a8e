package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravisharma-09/TSAP-Club/internal/config"
	"github.com/ravisharma-09/TSAP-Club/internal/logger"
)

// DB est le pool global. Nil quand aucune base n'est configurée: le serveur
// fonctionne alors en mode mémoire.
var DB *pgxpool.Pool

func ConnectPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	logger.Success("Connexion PostgreSQL établie")

	DB = pool

	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT false,
	join_date     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at    TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS sessions (
	id         SERIAL PRIMARY KEY,
	user_id    TEXT NOT NULL REFERENCES users(id),
	token      TEXT NOT NULL UNIQUE,
	ip_address TEXT,
	user_agent TEXT,
	is_active  BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ NOT NULL,
	deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS members (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	cf_handle    TEXT,
	lc_handle    TEXT,
	cc_handle    TEXT,
	total_solved INTEGER NOT NULL DEFAULT 0,
	joined_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS club_store (
	path       TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// EnsureSchema crée les tables manquantes au démarrage
func EnsureSchema(ctx context.Context) error {
	if DB == nil {
		return nil
	}
	if _, err := DB.Exec(ctx, schema); err != nil {
		return fmt.Errorf("unable to ensure schema: %w", err)
	}
	return nil
}
