package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travelplanner/models"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public CoinGecko v3 API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// Client talks to the CoinGecko REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client. A zero timeout leaves the request bounded only by ctx.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListCoins fetches the full coin directory.
func (c *Client) ListCoins(ctx context.Context) ([]models.Coin, error) {
	var coins []models.Coin
	if err := c.getJSON(ctx, "/coins/list", nil, &coins); err != nil {
		c.logger.Error("coingecko: coin list fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	return coins, nil
}

// simplePriceResponse is keyed by coin id, then by quote currency.
// Pointers distinguish a missing or null price from zero.
type simplePriceResponse map[string]map[string]*float64

// USDPrice returns the unit USD price for an already-normalized coin id.
func (c *Client) USDPrice(ctx context.Context, coinID string) (float64, error) {
	query := url.Values{}
	query.Set("ids", coinID)
	query.Set("vs_currencies", "usd")

	var prices simplePriceResponse
	if err := c.getJSON(ctx, "/simple/price", query, &prices); err != nil {
		c.logger.Error("coingecko: price fetch failed", zap.String("coin", coinID), zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	entry, ok := prices[coinID]
	if !ok || entry["usd"] == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCoin, coinID)
	}
	return *entry["usd"], nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}
	return nil
}
