package grt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// RawBranch is one undecoded branch object from the GRT API. Records are kept
// as maps so the normalizer can tell a missing key from a zero value.
type RawBranch map[string]interface{}

// Client talks to the GRT API over HTTPS
type Client struct {
	APIURL     string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new GRT API client
func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		APIURL:     apiURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchBranches issues one authenticated GET against the GRT API and returns
// the decoded branch dataset. Any failure (missing configuration, transport
// error, non-200 status, malformed body) is logged and reported as an error;
// no retry is attempted, the next scheduled run is the retry.
func (c *Client) FetchBranches(ctx context.Context) ([]RawBranch, error) {
	if c.APIURL == "" || c.APIKey == "" {
		log.Println("❌ GRT API Sync: API url or key has not been provided")
		return nil, fmt.Errorf("grt: api url or key not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("grt: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	log.Println("📡 GRT API Sync: Requesting data from GRT API...")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("❌ GRT API Sync: Request to GRT API failed with error %v", err)
		return nil, fmt.Errorf("grt: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail := c.errorDetail(resp)
		log.Printf("⚠️ GRT API Sync: Request to GRT API failed with status code %d: %s", resp.StatusCode, detail)
		return nil, fmt.Errorf("grt: unexpected status %d: %s", resp.StatusCode, detail)
	}

	var branches []RawBranch
	if err := json.NewDecoder(resp.Body).Decode(&branches); err != nil {
		log.Printf("❌ GRT API Sync: Failed to decode GRT API response: %v", err)
		return nil, fmt.Errorf("grt: decode response: %w", err)
	}

	log.Println("✅ GRT API Sync: Successfully received data from GRT API")
	return branches, nil
}

// errorDetail extracts the server-provided "detail" message from an error body
func (c *Client) errorDetail(resp *http.Response) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
