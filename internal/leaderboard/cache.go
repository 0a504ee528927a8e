// Package leaderboard maintient le classement Codeforces du club en cache,
// avec rafraîchissement single-flight déclenché par les lectures.
package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ravisharma-09/TSAP-Club/internal/logger"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/ravisharma-09/TSAP-Club/internal/platform"
)

// MemberSource liste les membres du club (implémenté par store.Members)
type MemberSource interface {
	List(ctx context.Context) ([]model.Member, error)
}

// Cache est le classement complet du club, singleton de durée de vie du
// processus. Deux états: idle et refreshing. Un refresh demandé pendant
// qu'un autre est en cours est un no-op: les lecteurs reçoivent toujours
// le dernier instantané connu, jamais une attente.
type Cache struct {
	members MemberSource
	fetcher platform.Fetcher

	staleAfter   time.Duration // fenêtre de péremption avant refresh (15 min)
	fetchDelay   time.Duration // pause entre deux membres, par respect du rate limit
	fetchTimeout time.Duration // borne par membre: un upstream qui pend ne bloque pas tout

	mu          sync.Mutex
	entries     []model.LeaderboardEntry
	lastUpdated time.Time
	updating    bool
}

func NewCache(members MemberSource, fetcher platform.Fetcher, staleAfter, fetchDelay time.Duration) *Cache {
	return &Cache{
		members:      members,
		fetcher:      fetcher,
		staleAfter:   staleAfter,
		fetchDelay:   fetchDelay,
		fetchTimeout: 15 * time.Second,
	}
}

// Snapshot retourne le dernier classement connu et déclenche un refresh en
// arrière-plan si le cache est périmé. Ne bloque jamais l'appelant.
func (c *Cache) Snapshot() model.LeaderboardSnapshot {
	c.mu.Lock()
	snap := model.LeaderboardSnapshot{
		Entries:     append([]model.LeaderboardEntry(nil), c.entries...),
		LastUpdated: c.lastUpdated,
		IsUpdating:  c.updating,
	}
	stale := time.Since(c.lastUpdated) > c.staleAfter
	c.mu.Unlock()

	if stale {
		go c.Refresh(context.Background())
	}

	return snap
}

// Refresh reconstruit le classement en interrogeant chaque membre lié à
// Codeforces, séquentiellement avec une pause fixe. Single-flight: au plus
// un refresh en cours dans le processus, les déclenchements concurrents
// sont ignorés. L'échec d'un membre donne une ligne d'erreur, jamais un
// abandon du batch.
func (c *Cache) Refresh(ctx context.Context) {
	c.mu.Lock()
	if c.updating {
		c.mu.Unlock()
		return
	}
	c.updating = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.updating = false
		c.mu.Unlock()
	}()

	members, err := c.members.List(ctx)
	if err != nil {
		logger.Error("refresh du classement: liste des membres indisponible: %v", err)
		return
	}

	var entries []model.LeaderboardEntry
	first := true
	for _, m := range members {
		handle := m.Handles.Codeforces
		if handle == "" {
			continue
		}
		if !first {
			time.Sleep(c.fetchDelay)
		}
		first = false

		entries = append(entries, c.fetchEntry(ctx, m, handle))
	}

	// Tri: rating décroissant, puis problèmes résolus décroissant
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].TotalSolved > entries[j].TotalSolved
	})

	c.mu.Lock()
	c.entries = entries
	c.lastUpdated = time.Now()
	c.mu.Unlock()

	logger.Success("classement rafraîchi: %d membres", len(entries))
}

func (c *Cache) fetchEntry(ctx context.Context, m model.Member, handle string) model.LeaderboardEntry {
	entry := model.LeaderboardEntry{
		MemberID: m.ID,
		Name:     m.Name,
		Handle:   handle,
	}

	fctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	st, err := c.fetcher.Fetch(fctx, handle)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	if st == nil || st.Failed() {
		entry.Error = "handle introuvable"
		if st != nil {
			entry.Error = st.Error
		}
		return entry
	}

	entry.TotalSolved = st.TotalSolved
	if st.Rating != nil {
		entry.Rating = *st.Rating
	}
	if st.MaxRating != nil {
		entry.MaxRating = *st.MaxRating
	}
	return entry
}
