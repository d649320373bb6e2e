package scryfall

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/z33kz33k/mtgcards/internal/cards"
)

const bulkCards = `[
	{
		"id": "shock-1", "oracle_id": "o-shock", "name": "Shock",
		"mana_cost": "{R}", "cmc": 1, "type_line": "Instant",
		"oracle_text": "Shock deals 2 damage to any target.",
		"colors": ["R"], "color_identity": ["R"],
		"layout": "normal", "set": "fdn", "collector_number": "99",
		"rarity": "common",
		"legalities": {"standard": "legal", "modern": "legal"},
		"prices": {"usd": "0.05", "tix": "0.01"}
	},
	{
		"id": "tok-1", "oracle_id": "o-tok", "name": "Goblin",
		"layout": "token", "set": "tfdn", "collector_number": "7",
		"rarity": "common", "color_identity": ["R"],
		"prices": {"usd": null, "tix": null}
	},
	{
		"id": "commit-1", "oracle_id": "o-commit", "name": "Commit // Memory",
		"cmc": 4, "type_line": "Instant // Sorcery",
		"color_identity": ["U"],
		"layout": "split", "set": "akr", "collector_number": "54",
		"rarity": "rare",
		"card_faces": [
			{"name": "Commit", "mana_cost": "{3}{U}", "type_line": "Instant"},
			{"name": "Memory", "mana_cost": "{4}{U}{U}", "type_line": "Sorcery"}
		],
		"prices": {"usd": "0.30", "tix": "0.02"}
	}
]`

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/bulk-data", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data": [
			{"type": "oracle_cards", "download_uri": "%[1]s/oracle"},
			{"type": "default_cards", "download_uri": "%[1]s/cards"}
		]}`, srv.URL)
	})
	mux.HandleFunc("/cards", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bulkCards))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	config := DefaultClientConfig()
	config.BaseURL = srv.URL
	return NewClient(config)
}

func TestDefaultCards(t *testing.T) {
	c := newTestClient(t)
	got, err := c.DefaultCards(context.Background())
	if err != nil {
		t.Fatalf("DefaultCards() error = %v", err)
	}
	// The token layout entry is dropped.
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	shock := got[0]
	if shock.ID != "shock-1" || shock.Name != "Shock" {
		t.Errorf("card = %+v", shock)
	}
	if shock.Rarity != cards.RarityCommon {
		t.Errorf("rarity = %q", shock.Rarity)
	}
	if shock.PriceUSD != 0.05 || shock.PriceTix != 0.01 {
		t.Errorf("prices = %v / %v", shock.PriceUSD, shock.PriceTix)
	}
	if !shock.IsLegalIn("standard") {
		t.Error("standard legality lost in conversion")
	}

	commit := got[1]
	if !commit.IsMultiface() {
		t.Error("multiface layout lost in conversion")
	}
	if len(commit.CardFaces) != 2 || commit.CardFaces[0].Name != "Commit" {
		t.Errorf("card faces = %+v", commit.CardFaces)
	}
}

func TestDefaultCardsMissingDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	t.Cleanup(srv.Close)

	config := DefaultClientConfig()
	config.BaseURL = srv.URL
	if _, err := NewClient(config).DefaultCards(context.Background()); err == nil {
		t.Error("DefaultCards() = nil error when listing has no default_cards")
	}
}
