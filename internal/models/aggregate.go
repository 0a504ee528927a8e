package model

import "time"

// PlatformSolved est une ligne du mini-classement par plateforme d'un membre
type PlatformSolved struct {
	Platform string `json:"platform"`
	Solved   int    `json:"solved"`
}

// AggregateStats regroupe les statistiques d'un membre sur toutes les
// plateformes liées. Recalculé à chaque requête, jamais persisté.
type AggregateStats struct {
	Codeforces *PlatformStats `json:"codeforces,omitempty"`
	Leetcode   *PlatformStats `json:"leetcode,omitempty"`
	Codechef   *PlatformStats `json:"codechef,omitempty"`

	TotalSolved int              `json:"totalSolved"`
	Accuracy    *float64         `json:"accuracy,omitempty"`
	ByPlatform  []PlatformSolved `json:"solvedByPlatform"`
	FetchedAt   time.Time        `json:"fetchedAt"`
}

// Platforms retourne les enregistrements présents (fetch réussi ou marqueur d'échec)
func (a *AggregateStats) Platforms() []*PlatformStats {
	var out []*PlatformStats
	for _, p := range []*PlatformStats{a.Codeforces, a.Leetcode, a.Codechef} {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
