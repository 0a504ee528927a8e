package model

// Noms des plateformes externes supportées
const (
	PlatformCodeforces = "codeforces"
	PlatformLeetcode   = "leetcode"
	PlatformCodechef   = "codechef"
)

// TagStrength compte les problèmes résolus pour un tag donné
type TagStrength struct {
	Tag    string `json:"tag"`
	Solved int    `json:"solved"`
}

// PlatformStats est la forme normalisée des statistiques d'une plateforme.
// Invariant: après une tentative de fetch, on obtient soit des stats valides,
// soit un marqueur d'échec explicite (Error renseigné) — jamais une absence
// silencieuse.
type PlatformStats struct {
	Platform        string         `json:"platform"`
	Handle          string         `json:"handle"`
	TotalSolved     int            `json:"totalProblemsSolved"`
	Rating          *int           `json:"rating,omitempty"`
	MaxRating       *int           `json:"maxRating,omitempty"`
	Rank            string         `json:"rank,omitempty"`
	Accuracy        *float64       `json:"accuracy,omitempty"`
	TagStrengths    []TagStrength  `json:"tagStrengths,omitempty"`
	ActivityByDay   map[string]int `json:"activityCalendar,omitempty"` // clé: date UTC "2006-01-02"
	ContestsByMonth map[string]int `json:"contestsPerMonth,omitempty"` // clé: mois "2006-01"
	SolvedKeys      []string       `json:"solvedProblems,omitempty"`   // clés composites contestId-index
	Supported       bool           `json:"supported"`
	Error           string         `json:"error,omitempty"`
}

// Failed indique si la plateforme a été tentée mais n'a pas répondu correctement
func (p *PlatformStats) Failed() bool {
	return p != nil && p.Error != ""
}
