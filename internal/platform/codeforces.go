package platform

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"golang.org/x/sync/errgroup"
)

const codeforcesBaseURL = "https://codeforces.com/api"

// Codeforces interroge l'API REST officielle: user.info, user.rating et
// user.status. L'appel info est bloquant pour le fetch; rating et status
// peuvent échouer individuellement (traités comme vides).
type Codeforces struct {
	client  *Client
	baseURL string
}

func NewCodeforces(client *Client) *Codeforces {
	return &Codeforces{client: client, baseURL: codeforcesBaseURL}
}

func (c *Codeforces) Name() string { return model.PlatformCodeforces }

type cfEnvelope struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type cfUserInfoResponse struct {
	cfEnvelope
	Result []struct {
		Handle string `json:"handle"`
		Rank   string `json:"rank"`
	} `json:"result"`
}

type cfRatingResponse struct {
	cfEnvelope
	Result []struct {
		ContestID               int   `json:"contestId"`
		NewRating               int   `json:"newRating"`
		RatingUpdateTimeSeconds int64 `json:"ratingUpdateTimeSeconds"`
	} `json:"result"`
}

type cfStatusResponse struct {
	cfEnvelope
	Result []cfSubmission `json:"result"`
}

type cfSubmission struct {
	CreationTimeSeconds int64  `json:"creationTimeSeconds"`
	Verdict             string `json:"verdict"`
	Problem             struct {
		ContestID int      `json:"contestId"`
		Index     string   `json:"index"`
		Name      string   `json:"name"`
		Rating    int      `json:"rating"`
		Tags      []string `json:"tags"`
	} `json:"problem"`
}

// Fetch récupère et normalise les statistiques d'un handle Codeforces.
// Les trois appels partent en parallèle.
func (c *Codeforces) Fetch(ctx context.Context, handle string) (*model.PlatformStats, error) {
	if handle == "" {
		return nil, nil
	}

	h := url.QueryEscape(handle)

	var info cfUserInfoResponse
	var rating cfRatingResponse
	var status cfStatusResponse
	var ratingErr, statusErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.client.GetJSON(gctx, fmt.Sprintf("%s/user.info?handles=%s", c.baseURL, h), &info)
	})
	g.Go(func() error {
		ratingErr = c.client.GetJSON(gctx, fmt.Sprintf("%s/user.rating?handle=%s", c.baseURL, h), &rating)
		return nil
	})
	g.Go(func() error {
		statusErr = c.client.GetJSON(gctx, fmt.Sprintf("%s/user.status?handle=%s", c.baseURL, h), &status)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("codeforces user.info: %w", err)
	}

	// info non-OK est fatal pour ce fetch; les appels secondaires dégradent
	if info.Status != "OK" || len(info.Result) == 0 {
		return nil, fmt.Errorf("codeforces user.info: %s", info.Comment)
	}
	if ratingErr != nil || rating.Status != "OK" {
		rating.Result = nil
	}
	if statusErr != nil || status.Status != "OK" {
		status.Result = nil
	}

	stats := &model.PlatformStats{
		Platform:  model.PlatformCodeforces,
		Handle:    info.Result[0].Handle,
		Rank:      info.Result[0].Rank,
		Supported: true,
	}

	// Rating courant = dernière entrée de l'historique, max = maximum observé
	if len(rating.Result) > 0 {
		last := rating.Result[len(rating.Result)-1].NewRating
		max := last
		for _, rc := range rating.Result {
			if rc.NewRating > max {
				max = rc.NewRating
			}
		}
		stats.Rating = &last
		stats.MaxRating = &max
	}

	contestsByMonth := make(map[string]int)
	for _, rc := range rating.Result {
		month := time.Unix(rc.RatingUpdateTimeSeconds, 0).UTC().Format("2006-01")
		contestsByMonth[month]++
	}
	if len(contestsByMonth) > 0 {
		stats.ContestsByMonth = contestsByMonth
	}

	solved := make(map[string]bool)
	tagCounts := make(map[string]int)
	activity := make(map[string]int)
	var accepted int

	for _, sub := range status.Result {
		day := time.Unix(sub.CreationTimeSeconds, 0).UTC().Format("2006-01-02")
		activity[day]++

		if sub.Verdict != "OK" {
			continue
		}
		accepted++

		key := submissionKey(sub)
		if solved[key] {
			continue
		}
		solved[key] = true
		for _, tag := range sub.Problem.Tags {
			tagCounts[tag]++
		}
	}

	stats.TotalSolved = len(solved)
	if len(activity) > 0 {
		stats.ActivityByDay = activity
	}

	// Précision = soumissions acceptées / soumissions totales (nil si aucune)
	if total := len(status.Result); total > 0 {
		acc := float64(accepted) / float64(total)
		stats.Accuracy = &acc
	}

	stats.SolvedKeys = sortedKeys(solved)
	stats.TagStrengths = sortedTags(tagCounts)

	return stats, nil
}

// submissionKey identifie un problème par contestId-index, avec une clé
// synthétique pour les problèmes sans contest
func submissionKey(sub cfSubmission) string {
	p := model.Problem{ContestID: sub.Problem.ContestID, Index: sub.Problem.Index, Name: sub.Problem.Name}
	return p.Key()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTags(counts map[string]int) []model.TagStrength {
	tags := make([]model.TagStrength, 0, len(counts))
	for tag, n := range counts {
		tags = append(tags, model.TagStrength{Tag: tag, Solved: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Solved != tags[j].Solved {
			return tags[i].Solved > tags[j].Solved
		}
		return tags[i].Tag < tags[j].Tag
	})
	return tags
}
