package stats

import (
	"context"
	"sort"
	"time"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/ravisharma-09/TSAP-Club/internal/platform"
	"golang.org/x/sync/errgroup"
)

// Aggregator interroge les trois plateformes en parallèle et fusionne les
// résultats en un seul enregistrement. L'échec d'une plateforme n'affecte
// jamais les autres: il devient un marqueur d'erreur dans l'agrégat.
type Aggregator struct {
	fetchers []platform.Fetcher
}

func NewAggregator(fetchers ...platform.Fetcher) *Aggregator {
	return &Aggregator{fetchers: fetchers}
}

// ForHandles agrège les statistiques d'un jeu de handles.
// Les handles vides sont ignorés (aucun appel réseau), les résultats nil
// (compte introuvable) sont écartés.
func (a *Aggregator) ForHandles(ctx context.Context, handles model.HandleSet) (*model.AggregateStats, error) {
	results := make([]*model.PlatformStats, len(a.fetchers))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range a.fetchers {
		i, f := i, f
		g.Go(func() error {
			handle := handles.For(f.Name())
			st, err := f.Fetch(gctx, handle)
			if err != nil {
				// Échec isolé: on garde un marqueur explicite
				st = &model.PlatformStats{
					Platform:  f.Name(),
					Handle:    handle,
					Supported: true,
					Error:     err.Error(),
				}
			}
			results[i] = st
			return nil
		})
	}
	g.Wait()

	agg := &model.AggregateStats{FetchedAt: time.Now()}
	for _, st := range results {
		if st == nil {
			continue
		}
		switch st.Platform {
		case model.PlatformCodeforces:
			agg.Codeforces = st
		case model.PlatformLeetcode:
			agg.Leetcode = st
		case model.PlatformCodechef:
			agg.Codechef = st
		}
	}

	for _, st := range agg.Platforms() {
		if st.Failed() {
			continue
		}
		agg.TotalSolved += st.TotalSolved
		agg.ByPlatform = append(agg.ByPlatform, model.PlatformSolved{Platform: st.Platform, Solved: st.TotalSolved})
	}
	sort.Slice(agg.ByPlatform, func(i, j int) bool {
		return agg.ByPlatform[i].Solved > agg.ByPlatform[j].Solved
	})

	// Simplification assumée: la précision agrégée vient du seul composant
	// Codeforces (pondérée par son volume), pas d'une moyenne multi-plateformes
	if cf := agg.Codeforces; cf != nil && !cf.Failed() && cf.Accuracy != nil && cf.TotalSolved > 0 {
		acc := *cf.Accuracy
		agg.Accuracy = &acc
	}

	return agg, nil
}
