package platform

import (
	"context"
	"fmt"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
)

const leetcodeGraphQLURL = "https://leetcode.com/graphql"

// LeetCode interroge l'endpoint GraphQL public. Un seul appel; un
// matchedUser absent signifie "utilisateur introuvable", pas une erreur.
type LeetCode struct {
	client  *Client
	baseURL string
}

func NewLeetCode(client *Client) *LeetCode {
	return &LeetCode{client: client, baseURL: leetcodeGraphQLURL}
}

func (l *LeetCode) Name() string { return model.PlatformLeetcode }

const leetcodeQuery = `
query userStats($username: String!) {
  matchedUser(username: $username) {
    username
    profile { ranking }
    submitStatsGlobal {
      acSubmissionNum { difficulty count submissions }
      totalSubmissionNum { difficulty count submissions }
    }
  }
}`

type lcSubmissionNum struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type lcResponse struct {
	Data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				Ranking int `json:"ranking"`
			} `json:"profile"`
			SubmitStatsGlobal struct {
				AcSubmissionNum    []lcSubmissionNum `json:"acSubmissionNum"`
				TotalSubmissionNum []lcSubmissionNum `json:"totalSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	} `json:"data"`
}

func (l *LeetCode) Fetch(ctx context.Context, handle string) (*model.PlatformStats, error) {
	if handle == "" {
		return nil, nil
	}

	payload := map[string]interface{}{
		"query":     leetcodeQuery,
		"variables": map[string]string{"username": handle},
	}

	var resp lcResponse
	if err := l.client.PostJSON(ctx, l.baseURL, payload, &resp); err != nil {
		return nil, fmt.Errorf("leetcode: %w", err)
	}

	user := resp.Data.MatchedUser
	if user == nil {
		return nil, nil
	}

	stats := &model.PlatformStats{
		Platform:  model.PlatformLeetcode,
		Handle:    user.Username,
		Supported: true,
	}
	if user.Profile.Ranking > 0 {
		stats.Rank = fmt.Sprintf("#%d", user.Profile.Ranking)
	}

	// Les compteurs par difficulté jouent le rôle de catégories
	var accepted, total int
	for _, n := range user.SubmitStatsGlobal.AcSubmissionNum {
		if n.Difficulty == "All" {
			stats.TotalSolved = n.Count
			accepted = n.Submissions
			continue
		}
		stats.TagStrengths = append(stats.TagStrengths, model.TagStrength{Tag: n.Difficulty, Solved: n.Count})
	}
	for _, n := range user.SubmitStatsGlobal.TotalSubmissionNum {
		if n.Difficulty == "All" {
			total = n.Submissions
		}
	}
	if total > 0 {
		acc := float64(accepted) / float64(total)
		stats.Accuracy = &acc
	}

	return stats, nil
}
