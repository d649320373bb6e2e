// Package scrape fetches decklists from deckbuilding sites and parses them
// into validated decks through the core row parser.
package scrape

import (
	"context"
	"errors"
	"fmt"

	"github.com/z33kz33k/mtgcards/internal/deck"
)

// ErrUnsupportedURL reports a URL no registered scraper claims.
var ErrUnsupportedURL = errors.New("no scraper for URL")

// DeckScraper fetches and parses a single decklist page.
type DeckScraper interface {
	// CanScrape reports whether the URL belongs to this scraper's site.
	CanScrape(url string) bool

	// Scrape fetches the decklist behind the URL and parses it.
	Scrape(ctx context.Context, url string) (*deck.Deck, error)
}

// Registry dispatches URLs to registered scrapers. Not safe for concurrent
// registration; register everything up front.
type Registry struct {
	scrapers []DeckScraper
}

// Register adds a scraper. First claimant wins at dispatch.
func (r *Registry) Register(s DeckScraper) {
	r.scrapers = append(r.scrapers, s)
}

// For returns the scraper claiming the URL.
func (r *Registry) For(url string) (DeckScraper, bool) {
	for _, s := range r.scrapers {
		if s.CanScrape(url) {
			return s, true
		}
	}
	return nil, false
}

// Scrape dispatches the URL to the claiming scraper.
func (r *Registry) Scrape(ctx context.Context, url string) (*deck.Deck, error) {
	s, ok := r.For(url)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, url)
	}
	return s.Scrape(ctx, url)
}

// ScrapingError reports page content a scraper could not make sense of.
type ScrapingError struct {
	URL    string
	Reason string
}

func (e *ScrapingError) Error() string {
	return fmt.Sprintf("scraping %s: %s", e.URL, e.Reason)
}
