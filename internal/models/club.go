package model

import "time"

// ClubSnapshot est l'instantané complet du club produit par une synchro:
// statistiques cumulées + état des paliers + horodatage. C'est la donnée
// servie en lecture et persistée en best-effort.
type ClubSnapshot struct {
	TotalSolved    int             `json:"totalSolved"`
	MemberCount    int             `json:"memberCount"`
	SkippedMembers int             `json:"skippedMembers"`
	Milestones     []ClubMilestone `json:"milestones"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
