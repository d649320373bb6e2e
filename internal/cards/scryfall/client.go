// Package scryfall downloads Scryfall bulk card data and converts it to the
// internal card model.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/z33kz33k/mtgcards/internal/cards"
)

// APIBase is the base URL for Scryfall API requests.
const APIBase = "https://api.scryfall.com"

// defaultCardsType identifies the bulk dataset holding every card printing
// in English.
const defaultCardsType = "default_cards"

// ClientConfig configures the Scryfall client.
type ClientConfig struct {
	// BaseURL is the Scryfall API base URL.
	BaseURL string

	// RequestTimeout is the HTTP request timeout. Bulk downloads run
	// hundreds of megabytes; keep this generous.
	RequestTimeout time.Duration

	// RequestsPerSecond throttles API requests per Scryfall's guidance.
	RequestsPerSecond float64

	Logger *slog.Logger
}

// DefaultClientConfig returns default configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:           APIBase,
		RequestTimeout:    5 * time.Minute,
		RequestsPerSecond: 10,
	}
}

// Client fetches bulk card data from Scryfall.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	baseURL    string
}

// NewClient creates a new Scryfall client.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = APIBase
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
		logger:     logger,
		baseURL:    baseURL,
	}
}

// bulkDataList mirrors the /bulk-data listing response.
type bulkDataList struct {
	Data []struct {
		Type        string `json:"type"`
		DownloadURI string `json:"download_uri"`
		UpdatedAt   string `json:"updated_at"`
		Size        int64  `json:"size"`
	} `json:"data"`
}

// bulkCard is one entry of the bulk dataset: the internal card model's wire
// shape plus the fields that need reshaping.
type bulkCard struct {
	cards.Card
	Prices struct {
		USD string `json:"usd"`
		Tix string `json:"tix"`
	} `json:"prices"`
}

// skippedLayouts are non-playable card layouts dropped during conversion.
var skippedLayouts = map[string]bool{
	"art_series":         true,
	"token":              true,
	"double_faced_token": true,
	"emblem":             true,
	"scheme":             true,
	"vanguard":           true,
	"planar":             true,
}

func (b *bulkCard) toCard() *cards.Card {
	card := b.Card
	card.PriceUSD, _ = strconv.ParseFloat(b.Prices.USD, 64)
	card.PriceTix, _ = strconv.ParseFloat(b.Prices.Tix, 64)
	return &card
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "mtgcards/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status for %s: %d", url, resp.StatusCode)
	}
	return resp, nil
}

// defaultCardsURI resolves the download URI of the default-cards bulk
// dataset.
func (c *Client) defaultCardsURI(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, c.baseURL+"/bulk-data")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	var list bulkDataList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("failed to decode bulk data listing: %w", err)
	}
	for _, entry := range list.Data {
		if entry.Type == defaultCardsType {
			return entry.DownloadURI, nil
		}
	}
	return "", fmt.Errorf("no %s entry in bulk data listing", defaultCardsType)
}

// DefaultCards downloads and decodes the full default-cards bulk dataset.
// The dataset is a single large JSON array; it is decoded in a stream so the
// raw payload never sits in memory whole.
func (c *Client) DefaultCards(ctx context.Context) ([]*cards.Card, error) {
	uri, err := c.defaultCardsURI(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Info("downloading bulk card data", "uri", uri)
	resp, err := c.get(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	dec := json.NewDecoder(resp.Body)
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read bulk data opening: %w", err)
	}

	var (
		out     []*cards.Card
		skipped int
	)
	for dec.More() {
		var bc bulkCard
		if err := dec.Decode(&bc); err != nil {
			return nil, fmt.Errorf("failed to decode bulk card: %w", err)
		}
		if skippedLayouts[bc.Layout] {
			skipped++
			continue
		}
		out = append(out, bc.toCard())
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read bulk data closing: %w", err)
	}

	c.logger.Info("bulk card data decoded", "cards", len(out), "skipped", skipped)
	return out, nil
}
