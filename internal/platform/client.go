package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Client est le client HTTP partagé par les fetchers, avec un rate limiter
// minimal (intervalle minimum entre deux requêtes) et un timeout global.
// Les APIs externes sont rate-limitées: on ne les martèle jamais.
type Client struct {
	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// NewClient crée un client avec timeout de 10s et ~4 requêtes/seconde max
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		minInterval: 250 * time.Millisecond,
	}
}

func (c *Client) throttle() {
	c.mu.Lock()
	elapsed := time.Since(c.lastRequest)
	if elapsed < c.minInterval {
		time.Sleep(c.minInterval - elapsed)
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	c.throttle()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	// 429: attendre une seconde et retenter une fois
	if resp.StatusCode == http.StatusTooManyRequests {
		resp.Body.Close()
		time.Sleep(1 * time.Second)
		return c.httpClient.Do(req)
	}

	return resp, nil
}

// GetJSON effectue un GET et décode la réponse JSON dans result
func (c *Client) GetJSON(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("impossible de créer la requête: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("requête échouée: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("réponse illisible: %w", err)
	}

	return nil
}

// PostJSON effectue un POST JSON et décode la réponse dans result
func (c *Client) PostJSON(ctx context.Context, url string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("impossible d'encoder le payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("impossible de créer la requête: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("requête échouée: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("réponse illisible: %w", err)
	}

	return nil
}

// GetBody effectue un GET et retourne le corps brut (pages HTML)
func (c *Client) GetBody(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("impossible de créer la requête: %w", err)
	}
	// Certains sites refusent les clients sans User-Agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; TSAP-Club/1.0)")

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("requête échouée: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return "", fmt.Errorf("lecture du corps impossible: %w", err)
	}

	return string(body), nil
}
