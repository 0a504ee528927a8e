package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/ravisharma-09/TSAP-Club/internal/utils"
)

// Members est le store des membres du club. Avec un pool nil il fonctionne
// en mémoire, pré-rempli avec des membres d'exemple.
type Members struct {
	pool *pgxpool.Pool

	mu    sync.Mutex
	local map[string]model.Member // mode mémoire uniquement
}

func NewMembers(pool *pgxpool.Pool) *Members {
	m := &Members{pool: pool}
	if pool == nil {
		m.local = make(map[string]model.Member)
		for _, sample := range SampleMembers() {
			m.local[sample.ID] = sample
		}
	}
	return m
}

// SampleMembers retourne les membres d'exemple servis en mode mémoire
func SampleMembers() []model.Member {
	now := time.Now()
	return []model.Member{
		{
			ID:       "member_1",
			Name:     "Ravi Sharma",
			Handles:  model.HandleSet{Codeforces: "tourist_fan_42", Leetcode: "ravi42"},
			JoinedAt: now,
		},
		{
			ID:       "member_2",
			Name:     "Ananya Gupta",
			Handles:  model.HandleSet{Codeforces: "ananya_g", Codechef: "ananya_g"},
			JoinedAt: now,
		},
	}
}

// List retourne tous les membres
func (s *Members) List(ctx context.Context) ([]model.Member, error) {
	if s.pool == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]model.Member, 0, len(s.local))
		for _, m := range s.local {
			out = append(out, m)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return out, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, name, cf_handle, lc_handle, cc_handle, total_solved, joined_at, updated_at
		 FROM members ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		var cf, lc, cc sql.NullString
		if err := rows.Scan(
			&m.ID, &m.Name,
			&cf, &lc, &cc,
			&m.TotalSolved, &m.JoinedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("could not scan member row: %w", err)
		}
		m.Handles = model.HandleSet{
			Codeforces: utils.NullStringToString(cf),
			Leetcode:   utils.NullStringToString(lc),
			Codechef:   utils.NullStringToString(cc),
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetByID retourne un membre, ou (nil, nil) s'il n'existe pas
func (s *Members) GetByID(ctx context.Context, id string) (*model.Member, error) {
	if s.pool == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if m, ok := s.local[id]; ok {
			return &m, nil
		}
		return nil, nil
	}

	members, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, nil
}

// Upsert insère ou met à jour un membre
func (s *Members) Upsert(ctx context.Context, m model.Member) error {
	m.UpdatedAt = time.Now()
	if m.JoinedAt.IsZero() {
		m.JoinedAt = m.UpdatedAt
	}

	if s.pool == nil {
		s.mu.Lock()
		s.local[m.ID] = m
		s.mu.Unlock()
		return nil
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO members(id, name, cf_handle, lc_handle, cc_handle, total_solved, joined_at, updated_at)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (id) DO UPDATE
		 SET name=$2, cf_handle=$3, lc_handle=$4, cc_handle=$5, total_solved=$6, updated_at=$8`,
		m.ID, m.Name,
		m.Handles.Codeforces, m.Handles.Leetcode, m.Handles.Codechef,
		m.TotalSolved, m.JoinedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not upsert member: %w", err)
	}
	return nil
}

// Count retourne le nombre de membres
func (s *Members) Count(ctx context.Context) (int, error) {
	members, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(members), nil
}
