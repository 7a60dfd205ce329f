package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/storecraft/backoffice-backend/pkg/config"
)

// Holiday is one entry from the public-holiday feed.
type Holiday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// Client fetches upcoming public holidays from the nager.at feed.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	country string
}

// NewClient builds a feed client with retry and timeout settings from config.
func NewClient(cfg config.HolidayConfig) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.HTTPClient.Timeout = cfg.HTTPTimeout
	rc.Logger = nil
	return &Client{
		http:    rc,
		baseURL: cfg.FeedBaseURL,
		country: cfg.CountryCode,
	}
}

// NextPublicHolidays returns the feed's upcoming holidays for the configured
// country.
func (c *Client) NextPublicHolidays(ctx context.Context) ([]Holiday, error) {
	url := fmt.Sprintf("%s/NextPublicHolidays/%s", c.baseURL, c.country)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday feed request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holiday feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday feed returned status %d", resp.StatusCode)
	}
	var entries []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode holiday feed: %w", err)
	}
	return entries, nil
}
