package model

import "time"

// ClubMilestone est un palier collectif du club.
// Achieved est monotone: une fois atteint, le palier reste atteint et
// AchievedAt (posé au premier franchissement) n'est jamais réécrit.
type ClubMilestone struct {
	Threshold  int        `json:"threshold"`
	Reward     string     `json:"reward"`
	Achieved   bool       `json:"achieved"`
	AchievedAt *time.Time `json:"achievedAt,omitempty"`
	Progress   float64    `json:"progress"`
}

// MemberTier est une tranche [MinSolved, MaxSolved] de problèmes résolus.
// MaxSolved = -1 signifie "sans limite" (dernier palier).
type MemberTier struct {
	Name      string `json:"name"`
	MinSolved int    `json:"minSolved"`
	MaxSolved int    `json:"maxSolved"`
}

// Contains indique si un compte de problèmes résolus tombe dans la tranche
func (t MemberTier) Contains(solved int) bool {
	if solved < t.MinSolved {
		return false
	}
	return t.MaxSolved < 0 || solved <= t.MaxSolved
}

// MemberMilestone est le palier courant d'un membre avec sa progression
// vers le palier suivant (100 au dernier palier)
type MemberMilestone struct {
	Tier     string  `json:"tier"`
	NextTier string  `json:"nextTier,omitempty"`
	Progress float64 `json:"progress"`
}
