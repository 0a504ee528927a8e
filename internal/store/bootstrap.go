package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravisharma-09/TSAP-Club/internal/logger"
)

// Bootstrap applique la politique de démarrage, explicitement et à un seul
// endroit plutôt qu'éparpillée dans les handlers:
//   - le premier utilisateur inscrit devient admin (voir FirstUserIsAdmin,
//     consulté à la création de compte)
//   - un membre de démonstration est créé si la liste est vide
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, members *Members) error {
	count, err := members.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		seed := SampleMembers()[0]
		if err := members.Upsert(ctx, seed); err != nil {
			return err
		}
		logger.Info("membre de démonstration créé: %s", seed.Name)
	}
	return nil
}

// FirstUserIsAdmin indique si le prochain compte créé doit être admin:
// vrai uniquement quand aucun utilisateur n'existe encore
func FirstUserIsAdmin(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	if pool == nil {
		return false, nil
	}

	var count int
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return true, nil
		}
		return false, err
	}
	return count == 0, nil
}
