package scrape

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

var initDeckDataPattern = regexp.MustCompile(`(?s)init_deck_data\((\{.*?\}),\s*(?:false|true)\)`)

// deckstatsDeck mirrors the payload deckstats.net embeds in its deck pages
// through the init_deck_data call.
type deckstatsDeck struct {
	Name     string `json:"name"`
	Owner    string `json:"owner_name"`
	Format   string `json:"format_name"`
	Sections []struct {
		Name  string `json:"name"`
		Cards []struct {
			Name        string `json:"name"`
			Amount      int    `json:"amount"`
			IsCommander bool   `json:"isCommander"`
		} `json:"cards"`
	} `json:"sections"`
	Sideboard []struct {
		Name   string `json:"name"`
		Amount int    `json:"amount"`
	} `json:"sideboard"`
}

// DeckstatsScraper parses deckstats.net deck pages via the JSON payload
// embedded in the page script.
type DeckstatsScraper struct {
	client        *Client
	resolver      *cards.Resolver
	defaultFormat string
}

// NewDeckstatsScraper creates a deckstats scraper resolving cards against
// the given format when the page's format is unknown.
func NewDeckstatsScraper(client *Client, resolver *cards.Resolver, defaultFormat string) *DeckstatsScraper {
	return &DeckstatsScraper{client: client, resolver: resolver, defaultFormat: defaultFormat}
}

// CanScrape reports whether the URL is a deckstats deck page.
func (s *DeckstatsScraper) CanScrape(url string) bool {
	return strings.Contains(url, "deckstats.net/decks/")
}

// Scrape fetches the page and parses the embedded deck data.
func (s *DeckstatsScraper) Scrape(ctx context.Context, url string) (*deck.Deck, error) {
	page, err := s.client.GetHTML(ctx, url)
	if err != nil {
		return nil, err
	}
	m := initDeckDataPattern.FindStringSubmatch(page)
	if m == nil {
		return nil, &ScrapingError{URL: url, Reason: "no init_deck_data payload found"}
	}
	var payload deckstatsDeck
	if err := json.Unmarshal([]byte(m[1]), &payload); err != nil {
		return nil, &ScrapingError{URL: url, Reason: "malformed deck payload: " + err.Error()}
	}
	return s.parseDeck(&payload)
}

func (s *DeckstatsScraper) parseDeck(payload *deckstatsDeck) (*deck.Deck, error) {
	format := strings.ToLower(payload.Format)
	if !s.resolver.KnowsFormat(format) {
		format = s.defaultFormat
	}

	metadata := deck.Metadata{
		"source": "deckstats.net",
		"format": format,
		"name":   payload.Name,
	}
	if payload.Owner != "" {
		metadata["author"] = payload.Owner
	}

	commanderRows := []deck.Row{deck.HeaderRow(deck.StateCommander)}
	mainRows := []deck.Row{deck.HeaderRow(deck.StateMainboard)}
	for _, section := range payload.Sections {
		for _, card := range section.Cards {
			row := deck.CardRow(card.Name, card.Amount, "", "")
			if card.IsCommander {
				commanderRows = append(commanderRows, row)
			} else {
				mainRows = append(mainRows, row)
			}
		}
	}

	rows := append(commanderRows, mainRows...)
	if len(payload.Sideboard) > 0 {
		rows = append(rows, deck.HeaderRow(deck.StateSideboard))
		for _, card := range payload.Sideboard {
			rows = append(rows, deck.CardRow(card.Name, card.Amount, "", ""))
		}
	}
	return deck.ParseRows(s.resolver, format, rows, metadata)
}
