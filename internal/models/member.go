package model

import "time"

// HandleSet contient les pseudos d'un membre sur chaque plateforme externe.
// Une chaîne vide signifie "compte non lié".
type HandleSet struct {
	Codeforces string `json:"codeforces"`
	Leetcode   string `json:"leetcode"`
	Codechef   string `json:"codechef"`
}

// For retourne le pseudo associé à une plateforme donnée
func (h HandleSet) For(platform string) string {
	switch platform {
	case PlatformCodeforces:
		return h.Codeforces
	case PlatformLeetcode:
		return h.Leetcode
	case PlatformCodechef:
		return h.Codechef
	}
	return ""
}

// Member représente un membre du club
type Member struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Handles     HandleSet `json:"handles"`
	TotalSolved int       `json:"totalSolved"`
	JoinedAt    time.Time `json:"joinedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Valid vérifie qu'un enregistrement membre est exploitable pour la synchro.
// Les enregistrements invalides sont ignorés, jamais bloquants.
func (m Member) Valid() bool {
	return m.ID != "" && m.Name != "" && m.TotalSolved >= 0
}
