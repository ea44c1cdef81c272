package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/salescan-dev/salescan/internal/model"
)

// Client fetches product attributes from the catalog service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a catalog Client for a base URL like
// "https://catalog.example.com". A non-positive timeout defaults to 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchAllProducts retrieves the full product catalog. No retries: a failed
// fetch fails the caller's run.
func (c *Client) FetchAllProducts(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching products: unexpected status %s", resp.Status)
	}

	var body struct {
		Products []model.Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	return body.Products, nil
}
