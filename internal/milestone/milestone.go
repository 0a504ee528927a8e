// Package milestone calcule les paliers du club et des membres.
// Toutes les fonctions sont pures: elles ne touchent ni au réseau ni au
// stockage et peuvent être rejouées sans effet de bord.
package milestone

import (
	"fmt"
	"time"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
)

// ClubTierDef définit un palier collectif (seuil, récompense)
type ClubTierDef struct {
	Threshold int
	Reward    string
}

// ClubTiers est la liste fixe des paliers du club, par seuil croissant
var ClubTiers = []ClubTierDef{
	{100, "Badge du club"},
	{250, "Mention au tableau d'honneur"},
	{500, "Soirée pizza"},
	{1000, "Hoodie du club"},
	{2500, "Cérémonie des trophées"},
	{5000, "Plaque légendaire"},
}

// MemberTiers est la liste fixe des paliers individuels. Les tranches
// doivent couvrir [0,∞) sans trou ni chevauchement (voir ValidateMemberTiers).
var MemberTiers = []model.MemberTier{
	{Name: "Newbie", MinSolved: 0, MaxSolved: 49},
	{Name: "Pupil", MinSolved: 50, MaxSolved: 149},
	{Name: "Specialist", MinSolved: 150, MaxSolved: 299},
	{Name: "Expert", MinSolved: 300, MaxSolved: 599},
	{Name: "Master", MinSolved: 600, MaxSolved: 999},
	{Name: "Grandmaster", MinSolved: 1000, MaxSolved: -1},
}

// ValidateMemberTiers vérifie que les tranches pavent [0,∞) sans trou.
// Appelé au démarrage: une table mal configurée est un bug de programmation.
func ValidateMemberTiers(tiers []model.MemberTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("aucun palier membre défini")
	}
	if tiers[0].MinSolved != 0 {
		return fmt.Errorf("le premier palier doit commencer à 0, pas %d", tiers[0].MinSolved)
	}
	for i := 0; i < len(tiers)-1; i++ {
		if tiers[i].MaxSolved < 0 {
			return fmt.Errorf("palier %q: seul le dernier palier peut être sans limite", tiers[i].Name)
		}
		if tiers[i+1].MinSolved != tiers[i].MaxSolved+1 {
			return fmt.Errorf("trou ou chevauchement entre %q et %q", tiers[i].Name, tiers[i+1].Name)
		}
	}
	if last := tiers[len(tiers)-1]; last.MaxSolved >= 0 {
		return fmt.Errorf("le dernier palier %q doit être sans limite", last.Name)
	}
	return nil
}

// ComputeClub calcule l'état des paliers du club pour un cumul donné.
// Monotonie: un palier atteint dans prev reste atteint et conserve son
// horodatage de premier franchissement.
func ComputeClub(totalSolved int, prev []model.ClubMilestone, now time.Time) []model.ClubMilestone {
	prevByThreshold := make(map[int]model.ClubMilestone, len(prev))
	for _, m := range prev {
		prevByThreshold[m.Threshold] = m
	}

	out := make([]model.ClubMilestone, 0, len(ClubTiers))
	for _, tier := range ClubTiers {
		m := model.ClubMilestone{
			Threshold: tier.Threshold,
			Reward:    tier.Reward,
			Progress:  clubProgress(totalSolved, tier.Threshold),
		}
		if p, ok := prevByThreshold[tier.Threshold]; ok && p.Achieved {
			m.Achieved = true
			m.AchievedAt = p.AchievedAt
		} else if totalSolved >= tier.Threshold {
			m.Achieved = true
			ts := now
			m.AchievedAt = &ts
		}
		out = append(out, m)
	}
	return out
}

func clubProgress(solved, threshold int) float64 {
	if threshold <= 0 {
		return 100
	}
	progress := float64(solved) / float64(threshold) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// NewlyAchieved retourne les paliers atteints dans curr mais pas dans prev
func NewlyAchieved(prev, curr []model.ClubMilestone) []model.ClubMilestone {
	achievedBefore := make(map[int]bool, len(prev))
	for _, m := range prev {
		if m.Achieved {
			achievedBefore[m.Threshold] = true
		}
	}

	var newly []model.ClubMilestone
	for _, m := range curr {
		if m.Achieved && !achievedBefore[m.Threshold] {
			newly = append(newly, m)
		}
	}
	return newly
}

// ComputeMember retourne le palier courant d'un membre et sa progression
// vers le palier suivant (interpolation linéaire entre les bornes basses,
// 100 au dernier palier)
func ComputeMember(totalSolved int) model.MemberMilestone {
	if totalSolved < 0 {
		totalSolved = 0
	}
	for i, tier := range MemberTiers {
		if !tier.Contains(totalSolved) {
			continue
		}
		m := model.MemberMilestone{Tier: tier.Name, Progress: 100}
		if i+1 < len(MemberTiers) {
			next := MemberTiers[i+1]
			m.NextTier = next.Name
			span := next.MinSolved - tier.MinSolved
			m.Progress = float64(totalSolved-tier.MinSolved) / float64(span) * 100
		}
		return m
	}
	// Injoignable tant que MemberTiers pave [0,∞)
	return model.MemberMilestone{Tier: MemberTiers[len(MemberTiers)-1].Name, Progress: 100}
}

// TierChanged indique si le palier d'un membre a changé entre deux états
func TierChanged(prev, curr model.MemberMilestone) bool {
	return prev.Tier != curr.Tier
}

// TierMin retourne la borne basse du palier nommé (0 si inconnu), utilisée
// comme seuil de déduplication des annonces
func TierMin(name string) int {
	for _, tier := range MemberTiers {
		if tier.Name == name {
			return tier.MinSolved
		}
	}
	return 0
}
