// Package recommend propose des problèmes dans la "zone de progression"
// d'un membre: un peu au-dessus de son niveau, jamais hors de portée.
package recommend

import (
	"context"
	"math/rand"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
)

const (
	defaultRating  = 800  // rating supposé d'un membre non classé
	minBand        = 800  // plancher absolu de la zone
	maxBand        = 3500 // plafond absolu de la zone
	maxSuggestions = 5
)

// ProblemSource fournit le catalogue de problèmes (implémenté par Catalog)
type ProblemSource interface {
	Problems(ctx context.Context) ([]model.Problem, error)
}

// Engine sélectionne des problèmes candidats pour un membre
type Engine struct {
	source ProblemSource
}

func NewEngine(source ProblemSource) *Engine {
	return &Engine{source: source}
}

// Suggest retourne 0 à 5 problèmes non résolus dans la bande
// [max(800, rating+100), min(3500, rating+400)]. Retourne une liste vide,
// jamais une erreur, quand les stats ou le catalogue manquent.
// Tirage uniforme parmi les candidats; pas de pondération par tags faibles
// pour l'instant (les données sont là, la sélection reste uniforme).
func (e *Engine) Suggest(ctx context.Context, stats *model.PlatformStats) []model.Problem {
	if stats == nil || stats.Failed() {
		return []model.Problem{}
	}

	problems, err := e.source.Problems(ctx)
	if err != nil || len(problems) == 0 {
		return []model.Problem{}
	}

	rating := defaultRating
	if stats.Rating != nil {
		rating = *stats.Rating
	}
	low := rating + 100
	if low < minBand {
		low = minBand
	}
	high := rating + 400
	if high > maxBand {
		high = maxBand
	}

	solved := make(map[string]bool, len(stats.SolvedKeys))
	for _, key := range stats.SolvedKeys {
		solved[key] = true
	}

	var candidates []model.Problem
	for _, p := range problems {
		if p.Rating == 0 || p.Rating < low || p.Rating > high {
			continue
		}
		if solved[p.Key()] {
			continue
		}
		candidates = append(candidates, p)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	if candidates == nil {
		candidates = []model.Problem{}
	}

	return candidates
}
