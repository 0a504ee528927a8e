package model

import "time"

// LeaderboardEntry est une ligne du classement Codeforces du club.
// Error est renseigné quand le fetch du membre a échoué: la ligne reste
// présente avec des stats à zéro plutôt que de disparaître du classement.
type LeaderboardEntry struct {
	MemberID    string `json:"memberId"`
	Name        string `json:"name"`
	Handle      string `json:"handle"`
	Rating      int    `json:"rating"`
	MaxRating   int    `json:"maxRating"`
	TotalSolved int    `json:"totalSolved"`
	Error       string `json:"error,omitempty"`
}

// LeaderboardSnapshot est la vue retournée aux clients: toujours le dernier
// classement connu, jamais bloqué par un refresh en cours
type LeaderboardSnapshot struct {
	Entries     []LeaderboardEntry `json:"entries"`
	LastUpdated time.Time          `json:"lastUpdated"`
	IsUpdating  bool               `json:"isUpdating"`
}
