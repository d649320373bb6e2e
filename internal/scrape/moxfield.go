package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

const moxfieldAPIBase = "https://api2.moxfield.com/v3/decks/all/"

// moxfieldDeck mirrors the subset of Moxfield's deck API payload this
// scraper reads.
type moxfieldDeck struct {
	Name          string `json:"name"`
	Format        string `json:"format"`
	Description   string `json:"description"`
	LikeCount     int    `json:"likeCount"`
	ViewCount     int    `json:"viewCount"`
	CommentCount  int    `json:"commentCount"`
	LastUpdatedAt string `json:"lastUpdatedAtUtc"`
	CreatedByUser struct {
		DisplayName string `json:"displayName"`
	} `json:"createdByUser"`
	Boards map[string]moxfieldBoard `json:"boards"`
}

type moxfieldBoard struct {
	Cards map[string]moxfieldEntry `json:"cards"`
}

type moxfieldEntry struct {
	Quantity int `json:"quantity"`
	Card     struct {
		ScryfallID      string `json:"scryfall_id"`
		Name            string `json:"name"`
		Set             string `json:"set"`
		CollectorNumber string `json:"cn"`
	} `json:"card"`
}

// MoxfieldScraper parses www.moxfield.com decklists through the site's JSON
// API.
type MoxfieldScraper struct {
	client   *Client
	resolver *cards.Resolver
	apiBase  string
}

// NewMoxfieldScraper creates a Moxfield scraper.
func NewMoxfieldScraper(client *Client, resolver *cards.Resolver) *MoxfieldScraper {
	return &MoxfieldScraper{client: client, resolver: resolver, apiBase: moxfieldAPIBase}
}

// CanScrape reports whether the URL is a Moxfield deck page.
func (s *MoxfieldScraper) CanScrape(url string) bool {
	return strings.Contains(url, "www.moxfield.com/decks/")
}

// Scrape fetches the deck's API payload and parses it.
func (s *MoxfieldScraper) Scrape(ctx context.Context, url string) (*deck.Deck, error) {
	id := url[strings.LastIndexByte(url, '/')+1:]
	var payload moxfieldDeck
	if err := s.client.GetJSON(ctx, s.apiBase+id, nil, &payload); err != nil {
		return nil, err
	}
	return s.parsePayload(url, &payload)
}

func (s *MoxfieldScraper) parsePayload(url string, payload *moxfieldDeck) (*deck.Deck, error) {
	format := strings.ToLower(payload.Format)
	if !s.resolver.KnowsFormat(format) {
		return nil, &ScrapingError{URL: url, Reason: "unknown format: " + payload.Format}
	}

	metadata := deck.Metadata{
		"source":   "www.moxfield.com",
		"format":   format,
		"likes":    payload.LikeCount,
		"views":    payload.ViewCount,
		"comments": payload.CommentCount,
		"author":   payload.CreatedByUser.DisplayName,
	}
	name := payload.Name
	// Tournament exports prefix the deck name with the event.
	if _, after, found := strings.Cut(name, " - "); found {
		name = after
	}
	metadata["name"] = name
	if payload.Description != "" {
		metadata["description"] = payload.Description
	}
	if date, err := time.Parse("2006-01-02T15:04:05.999999999Z", payload.LastUpdatedAt); err == nil {
		metadata["date"] = date
	}

	rows := []deck.Row{deck.HeaderRow(deck.StateCommander)}
	rows = appendBoardRows(rows, payload.Boards["commanders"])
	rows = append(rows, deck.HeaderRow(deck.StateCompanion))
	rows = appendBoardRows(rows, payload.Boards["companions"])
	rows = append(rows, deck.HeaderRow(deck.StateMainboard))
	rows = appendBoardRows(rows, payload.Boards["mainboard"])
	rows = append(rows, deck.HeaderRow(deck.StateSideboard))
	rows = appendBoardRows(rows, payload.Boards["sideboard"])

	return deck.ParseRows(s.resolver, format, rows, metadata)
}

func appendBoardRows(rows []deck.Row, board moxfieldBoard) []deck.Row {
	for _, entry := range board.Cards {
		rows = append(rows, deck.CardRow(
			entry.Card.Name, entry.Quantity,
			strings.ToLower(entry.Card.Set), entry.Card.CollectorNumber))
	}
	return rows
}
