// Package activity tient le journal d'activité du club: un tampon borné
// aux N entrées les plus récentes, les plus anciennes évincées d'abord.
package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
)

// Log est le journal append-only du club
type Log struct {
	mu      sync.Mutex
	cap     int
	entries []model.ActivityEntry // ordre chronologique, la plus ancienne en tête
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = 50
	}
	return &Log{cap: capacity}
}

// Append ajoute une entrée et évince la plus ancienne si le plafond est
// atteint
func (l *Log) Append(entryType, message string, payload map[string]interface{}) model.ActivityEntry {
	entry := model.ActivityEntry{
		ID:        uuid.NewString(),
		Type:      entryType,
		Timestamp: time.Now(),
		Message:   message,
		Payload:   payload,
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.cap {
		l.entries = l.entries[len(l.entries)-l.cap:]
	}
	l.mu.Unlock()

	return entry
}

// Entries retourne une copie du journal, la plus récente en premier
func (l *Log) Entries() []model.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.ActivityEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// HasEquivalent indique si une entrée du même type, même seuil et même
// membre existe déjà. Sert à ne jamais annoncer deux fois le même palier;
// memberID vide pour les entrées du club (sans membre associé).
func (l *Log) HasEquivalent(entryType, memberID string, threshold int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.Type != entryType || e.Payload == nil {
			continue
		}
		if memberOf(e.Payload) != memberID {
			continue
		}
		if t, ok := thresholdOf(e.Payload); ok && t == threshold {
			return true
		}
	}
	return false
}

// Restore recharge un journal persisté (au démarrage), en respectant le
// plafond
func (l *Log) Restore(entries []model.ActivityEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(entries) > l.cap {
		entries = entries[len(entries)-l.cap:]
	}
	l.entries = append([]model.ActivityEntry(nil), entries...)
}

// thresholdOf tolère les deux formes rencontrées: int natif ou float64
// issu d'un round-trip JSON
func thresholdOf(payload map[string]interface{}) (int, bool) {
	v, ok := payload["threshold"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

// memberOf retourne l'id du membre associé à l'entrée, ou "" s'il n'y en a
// pas (entrées du club)
func memberOf(payload map[string]interface{}) string {
	if id, ok := payload["memberId"].(string); ok {
		return id
	}
	return ""
}
