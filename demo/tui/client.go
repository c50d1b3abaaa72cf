package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/johannkk1/MacroCharts/types"
)

// NewsClient is a thin HTTP client for the news API.
type NewsClient struct {
	baseURL string
	client  *http.Client
}

// NewNewsClient creates a client. A full pipeline run can take a while, so
// the timeout is generous.
func NewNewsClient(baseURL string) *NewsClient {
	return &NewsClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GetNews fetches the full response for country.
func (c *NewsClient) GetNews(country string) (*types.NewsResponse, error) {
	resp, err := c.client.Get(c.baseURL + "/api/news/" + url.PathEscape(country))
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var out types.NewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// Refresh asks the server to recompute country in the background.
func (c *NewsClient) Refresh(country string) error {
	resp, err := c.client.Post(c.baseURL+"/api/news/"+url.PathEscape(country)+"/refresh", "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to request refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
