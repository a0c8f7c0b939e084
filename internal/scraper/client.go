package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/pkg/config"
	"github.com/creatorpulse/creatorpulse/pkg/logging"
)

// Client talks to the upstream scraping APIs. One client serves all three
// platforms; each platform has its own base URL but shares key and timeout.
type Client struct {
	http   *http.Client
	cfg    *config.ScraperConfig
	logger *zap.Logger
}

// New creates a new scraper client
func New(cfg *config.ScraperConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("scraper_api_key is required")
	}

	logger := logging.GetLogger().With(zap.String("component", "scraper-client"))

	client := &Client{
		http:   &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		logger: logger,
	}

	logger.Info("Scraper client initialized", zap.Duration("timeout", cfg.Timeout))

	return client, nil
}

// getJSON performs one GET against a scraping API and decodes the response.
// A single attempt only: upstream failures abort the whole platform run.
func (c *Client) getJSON(ctx context.Context, baseURL, path string, query url.Values, out interface{}) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	u.Path = path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned status %d: %s", u.Host, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", u.Host, err)
	}

	return nil
}
