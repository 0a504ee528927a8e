package model

import "fmt"

// Problem est un problème du catalogue Codeforces
type Problem struct {
	ContestID int      `json:"contestId,omitempty"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Key retourne la clé composite identifiant le problème. Les problèmes sans
// contest (gym, archives) reçoivent une clé synthétique basée sur le nom.
func (p Problem) Key() string {
	if p.ContestID == 0 {
		return "noc-" + p.Name
	}
	return fmt.Sprintf("%d-%s", p.ContestID, p.Index)
}
