package model

import "time"

// Types d'entrées du journal d'activité
const (
	ActivityClubMilestone   = "club_milestone"
	ActivityMemberMilestone = "member_milestone"
	ActivitySync            = "sync"
)

// ActivityEntry est une entrée du journal d'activité du club (append-only,
// plafonné aux N entrées les plus récentes)
type ActivityEntry struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Message   string                 `json:"message"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}
