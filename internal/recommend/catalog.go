package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ravisharma-09/TSAP-Club/internal/logger"
	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/ravisharma-09/TSAP-Club/internal/platform"
)

const problemsetURL = "https://codeforces.com/api/problemset.problems"

// Catalog met en cache la liste complète des problèmes Codeforces,
// rafraîchie au plus une fois par TTL. Le contenu est immuable entre deux
// rafraîchissements; en cas d'échec du refresh on sert la copie périmée.
type Catalog struct {
	client  *platform.Client
	baseURL string
	ttl     time.Duration

	mu        sync.Mutex
	problems  []model.Problem
	fetchedAt time.Time
}

func NewCatalog(client *platform.Client, ttl time.Duration) *Catalog {
	return &Catalog{client: client, baseURL: problemsetURL, ttl: ttl}
}

type problemsetResponse struct {
	Status string `json:"status"`
	Result struct {
		Problems []model.Problem `json:"problems"`
	} `json:"result"`
}

// Problems retourne le catalogue, en le rafraîchissant s'il est périmé
func (c *Catalog) Problems(ctx context.Context) ([]model.Problem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.problems != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.problems, nil
	}

	var resp problemsetResponse
	if err := c.client.GetJSON(ctx, c.baseURL, &resp); err != nil {
		if c.problems != nil {
			logger.Warning("refresh du catalogue échoué, copie périmée servie: %v", err)
			return c.problems, nil
		}
		return nil, fmt.Errorf("catalogue indisponible: %w", err)
	}
	if resp.Status != "OK" {
		if c.problems != nil {
			return c.problems, nil
		}
		return nil, fmt.Errorf("catalogue indisponible: status %s", resp.Status)
	}

	c.problems = resp.Result.Problems
	c.fetchedAt = time.Now()
	logger.Info("catalogue de problèmes rafraîchi: %d problèmes", len(c.problems))

	return c.problems, nil
}
