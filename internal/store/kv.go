// Package store regroupe la persistance du club: documents JSON par chemin,
// liste des membres, politique de bootstrap. Toute la persistance est
// best-effort: sans base configurée, les écritures sont des no-ops et les
// lectures retournent des valeurs par défaut.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KV lit et écrit des structures JSON arbitraires par chemin
// (ex: "club/data", "club/activity") dans une table jsonb
type KV struct {
	pool *pgxpool.Pool
}

// NewKV accepte un pool nil: le store devient alors muet (écritures no-op,
// lectures vides)
func NewKV(pool *pgxpool.Pool) *KV {
	return &KV{pool: pool}
}

// Get lit la valeur au chemin donné. Retourne false sans erreur quand le
// chemin n'existe pas ou qu'aucune base n'est configurée.
func (kv *KV) Get(ctx context.Context, path string, dest interface{}) (bool, error) {
	if kv.pool == nil {
		return false, nil
	}

	var raw []byte
	err := kv.pool.QueryRow(ctx,
		`SELECT value FROM club_store WHERE path=$1`,
		path,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lecture de %q impossible: %w", path, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("valeur de %q illisible: %w", path, err)
	}
	return true, nil
}

// Put écrit la valeur au chemin donné (upsert). No-op sans base.
func (kv *KV) Put(ctx context.Context, path string, value interface{}) error {
	if kv.pool == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("valeur de %q non sérialisable: %w", path, err)
	}

	_, err = kv.pool.Exec(ctx,
		`INSERT INTO club_store(path, value, updated_at)
		 VALUES($1, $2, NOW())
		 ON CONFLICT (path) DO UPDATE SET value=$2, updated_at=NOW()`,
		path, raw,
	)
	if err != nil {
		return fmt.Errorf("écriture de %q impossible: %w", path, err)
	}
	return nil
}
