package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/z33kz33k/mtgcards/internal/cards/cardstest"
)

const goldfishPage = `<html><body>
<h1 class='title'>Mono Blue Tempo
<span class='author'>by z33k</span></h1>
<p class='deck-container-information'>
Format: Standard<br/>
Event: FNM<br/>
Deck Source:<br/>
www.example.com<br/>
Deck Date: Aug 30, 2025<br/>
</p>
<table class='deck-view-deck-table'>
<tr class='deck-category-header'><td>Creatures (0)</td></tr>
<tr><td class='text-right'>4</td><td><a data-card-id='Negate [FDN]'>Negate</a></td></tr>
<tr class='deck-category-header'><td>Lands (56)</td></tr>
<tr><td class='text-right'>56</td><td><a data-card-id='Island [FDN]'>Island</a></td></tr>
<tr class='deck-category-header'><td>Sideboard (2)</td></tr>
<tr><td class='text-right'>2</td><td><a data-card-id='Shock [FDN]'>Shock</a></td></tr>
</table>
</body></html>`

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGoldfishScrape(t *testing.T) {
	srv := serve(t, goldfishPage)
	s := NewGoldfishScraper(NewClient(nil), cardstest.Resolver(), "standard")

	d, err := s.Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if got := len(d.Mainboard()); got != 60 {
		t.Errorf("mainboard size = %d, want 60", got)
	}
	if got := len(d.Sideboard()); got != 2 {
		t.Errorf("sideboard size = %d, want 2", got)
	}
	if d.Name() != "Mono Blue Tempo" {
		t.Errorf("name = %q", d.Name())
	}
	if got := d.Metadata()["author"]; got != "z33k" {
		t.Errorf("author = %v", got)
	}
	if got := d.Metadata()["event"]; got != "FNM" {
		t.Errorf("event = %v", got)
	}
	if got := d.Metadata()["original_source"]; got != "www.example.com" {
		t.Errorf("original_source = %v", got)
	}
	if d.Format() != "standard" {
		t.Errorf("format = %q", d.Format())
	}
	want := time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)
	if !d.Date().Equal(want) {
		t.Errorf("date = %v, want %v", d.Date(), want)
	}
}

func TestGoldfishScrapeNoTable(t *testing.T) {
	srv := serve(t, "<html><body>nothing here</body></html>")
	s := NewGoldfishScraper(NewClient(nil), cardstest.Resolver(), "standard")

	_, err := s.Scrape(context.Background(), srv.URL)
	if _, ok := err.(*ScrapingError); !ok {
		t.Fatalf("error = %v, want *ScrapingError", err)
	}
}

func TestGoldfishCanScrape(t *testing.T) {
	s := NewGoldfishScraper(nil, nil, "standard")
	if !s.CanScrape("https://www.mtggoldfish.com/deck/123456") {
		t.Error("deck URL not claimed")
	}
	if s.CanScrape("https://www.moxfield.com/decks/abc") {
		t.Error("foreign URL claimed")
	}
}

func TestGoldfishCardRowVariantMarker(t *testing.T) {
	row, ok := parseGoldfishCardRow("", `<td class='text-right'>3</td><a data-card-id='Shock &lt;borderless&gt; [M21]'>x</a>`)
	if !ok {
		t.Fatal("row not parsed")
	}
	if row.Name != "Shock" || row.SetCode != "m21" || row.Quantity != 3 {
		t.Errorf("row = %+v", row)
	}
}
