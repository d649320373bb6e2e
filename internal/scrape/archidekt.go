package scrape

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

var nextDataPattern = regexp.MustCompile(`(?s)<script[^>]*id="__NEXT_DATA__"[^>]*>(.*?)</script>`)

// archidektPage mirrors the deck payload embedded in Archidekt's Next.js
// page data.
type archidektPage struct {
	Props struct {
		PageProps struct {
			Redux struct {
				Deck archidektDeck `json:"deck"`
			} `json:"redux"`
		} `json:"pageProps"`
	} `json:"props"`
}

type archidektDeck struct {
	Name       string                   `json:"name"`
	Format     string                   `json:"deckFormat"`
	UpdatedAt  string                   `json:"updatedAt"`
	Owner      string                   `json:"owner"`
	CardMap    map[string]archidektCard `json:"cardMap"`
	Categories []archidektCategory      `json:"categories"`
}

type archidektCategory struct {
	Name           string `json:"name"`
	IncludedInDeck bool   `json:"includedInDeck"`
	IsPremier      bool   `json:"isPremier"`
}

type archidektCard struct {
	Name            string   `json:"name"`
	Quantity        int      `json:"qty"`
	SetCode         string   `json:"setCode"`
	CollectorNumber string   `json:"collectorNumber"`
	Categories      []string `json:"categories"`
}

// archidektFormats maps Archidekt's numeric format codes to designations.
var archidektFormats = map[string]string{
	"1": "standard", "2": "modern", "3": "commander", "4": "legacy",
	"5": "vintage", "6": "pauper", "7": "custom", "8": "oathbreaker",
	"9": "historic", "10": "pioneer", "11": "brawl", "12": "gladiator",
	"13": "premodern", "14": "predh", "15": "timeless", "16": "alchemy",
	"17": "explorer", "18": "standardbrawl",
}

// ArchidektScraper parses archidekt.com deck pages via the JSON payload
// embedded in the page.
type ArchidektScraper struct {
	client   *Client
	resolver *cards.Resolver
}

// NewArchidektScraper creates an Archidekt scraper.
func NewArchidektScraper(client *Client, resolver *cards.Resolver) *ArchidektScraper {
	return &ArchidektScraper{client: client, resolver: resolver}
}

// CanScrape reports whether the URL is an Archidekt deck page.
func (s *ArchidektScraper) CanScrape(url string) bool {
	return strings.Contains(url, "archidekt.com/decks/")
}

// Scrape fetches the page and parses the embedded deck data.
func (s *ArchidektScraper) Scrape(ctx context.Context, url string) (*deck.Deck, error) {
	page, err := s.client.GetHTML(ctx, url)
	if err != nil {
		return nil, err
	}
	m := nextDataPattern.FindStringSubmatch(page)
	if m == nil {
		return nil, &ScrapingError{URL: url, Reason: "no __NEXT_DATA__ payload found"}
	}
	var payload archidektPage
	if err := json.Unmarshal([]byte(m[1]), &payload); err != nil {
		return nil, &ScrapingError{URL: url, Reason: "malformed __NEXT_DATA__ payload: " + err.Error()}
	}
	return s.parseDeck(url, &payload.Props.PageProps.Redux.Deck)
}

func (s *ArchidektScraper) parseDeck(url string, d *archidektDeck) (*deck.Deck, error) {
	format := archidektFormats[d.Format]
	if !s.resolver.KnowsFormat(format) {
		return nil, &ScrapingError{URL: url, Reason: "unknown format code: " + d.Format}
	}

	metadata := deck.Metadata{
		"source": "archidekt.com",
		"format": format,
		"name":   d.Name,
	}
	if d.Owner != "" {
		metadata["author"] = d.Owner
	}
	if date, err := time.Parse(time.RFC3339, d.UpdatedAt); err == nil {
		metadata["date"] = date
	}

	// Categories flagged premier hold the commander; categories excluded
	// from the deck (Maybeboard, considering) are skipped entirely.
	excluded := map[string]bool{}
	commander := map[string]bool{}
	for _, cat := range d.Categories {
		if !cat.IncludedInDeck {
			excluded[cat.Name] = true
		}
		if cat.IsPremier {
			commander[cat.Name] = true
		}
	}

	commanderRows := []deck.Row{deck.HeaderRow(deck.StateCommander)}
	mainRows := []deck.Row{deck.HeaderRow(deck.StateMainboard)}
	sideRows := []deck.Row{deck.HeaderRow(deck.StateSideboard)}
	for _, card := range d.CardMap {
		row := deck.CardRow(card.Name, card.Quantity,
			strings.ToLower(card.SetCode), card.CollectorNumber)
		switch categorize(card.Categories, excluded, commander) {
		case deck.StateCommander:
			commanderRows = append(commanderRows, row)
		case deck.StateSideboard:
			sideRows = append(sideRows, row)
		case deck.StateMainboard:
			mainRows = append(mainRows, row)
		}
	}

	rows := append(commanderRows, mainRows...)
	if len(sideRows) > 1 {
		rows = append(rows, sideRows...)
	}
	return deck.ParseRows(s.resolver, format, rows, metadata)
}

func categorize(categories []string, excluded, commander map[string]bool) deck.ParsingState {
	for _, c := range categories {
		switch {
		case excluded[c]:
			return deck.StateIdle
		case commander[c]:
			return deck.StateCommander
		case c == "Sideboard":
			return deck.StateSideboard
		}
	}
	return deck.StateMainboard
}
