package platform

import (
	"context"
	"regexp"
	"strconv"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
)

const codechefProfileURL = "https://www.codechef.com/users/"

// CodeChef n'a pas d'API publique: on extrait le rating et le nombre de
// problèmes résolus de la page de profil par pattern matching. Contrat
// assumé: un fragment absent ou modifié donne zéro, jamais un crash.
// Un échec de transport retourne un marqueur {Error, Supported:false}
// plutôt que nil, pour distinguer "rien trouvé" de "plateforme en erreur".
type CodeChef struct {
	client  *Client
	baseURL string
}

func NewCodeChef(client *Client) *CodeChef {
	return &CodeChef{client: client, baseURL: codechefProfileURL}
}

func (c *CodeChef) Name() string { return model.PlatformCodechef }

var (
	ccRatingRe = regexp.MustCompile(`class="rating-number">(\d+)`)
	ccSolvedRe = regexp.MustCompile(`Total Problems Solved:\s*(\d+)`)
	ccStarsRe  = regexp.MustCompile(`class="rating-star">\s*<span>([\d★]+)`)
)

func (c *CodeChef) Fetch(ctx context.Context, handle string) (*model.PlatformStats, error) {
	if handle == "" {
		return nil, nil
	}

	body, err := c.client.GetBody(ctx, c.baseURL+handle)
	if err != nil {
		return &model.PlatformStats{
			Platform:  model.PlatformCodechef,
			Handle:    handle,
			Supported: false,
			Error:     "codechef: " + err.Error(),
		}, nil
	}

	stats := &model.PlatformStats{
		Platform:  model.PlatformCodechef,
		Handle:    handle,
		Supported: true,
	}

	if m := ccRatingRe.FindStringSubmatch(body); m != nil {
		if rating, err := strconv.Atoi(m[1]); err == nil {
			stats.Rating = &rating
		}
	}
	if m := ccSolvedRe.FindStringSubmatch(body); m != nil {
		if solved, err := strconv.Atoi(m[1]); err == nil {
			stats.TotalSolved = solved
		}
	}
	if m := ccStarsRe.FindStringSubmatch(body); m != nil {
		stats.Rank = m[1]
	}

	return stats, nil
}
