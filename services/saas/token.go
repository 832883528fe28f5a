package saas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// TokenSource yields the bearer token used against the platform.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed token from configuration.
type StaticTokenSource struct {
	Key string
}

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s.Key == "" {
		return "", fmt.Errorf("laundry API key not configured")
	}
	return s.Key, nil
}

// VendingTokenSource fetches the token once from a key-vending endpoint and
// caches it in memory for the life of the process.
type VendingTokenSource struct {
	URL        string
	HTTPClient *http.Client

	mu     sync.Mutex
	cached string
}

func (s *VendingTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != "" {
		return s.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build key request: %w", err)
	}
	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch API key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("key vending endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode key response: %w", err)
	}
	if payload.Key == "" {
		return "", fmt.Errorf("key vending endpoint returned an empty key")
	}

	s.cached = payload.Key
	return s.cached, nil
}
