package scrape

import (
	"context"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

// goldfishFormats maps MTGGoldfish format labels to canonical designations
// where they differ.
var goldfishFormats = map[string]string{
	"penny dreadful":   "penny",
	"pauper commander": "paupercommander",
	"standard brawl":   "standardbrawl",
}

var (
	goldfishTitlePattern  = regexp.MustCompile(`(?s)<h1[^>]*class=['"][^'"]*title[^'"]*['"][^>]*>(.*?)</h1>`)
	goldfishAuthorPattern = regexp.MustCompile(`(?s)<span[^>]*>\s*by\s+([^<]+)</span>`)
	goldfishInfoPattern   = regexp.MustCompile(`(?s)<p[^>]*class=['"][^'"]*deck-container-information[^'"]*['"][^>]*>(.*?)</p>`)
	goldfishTablePattern  = regexp.MustCompile(`(?s)<table[^>]*class=['"][^'"]*deck-view-deck-table[^'"]*['"][^>]*>(.*?)</table>`)
	goldfishRowPattern    = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)
	goldfishQtyPattern    = regexp.MustCompile(`<td[^>]*class=['"][^'"]*text-right[^'"]*['"][^>]*>\s*(\d+)`)
	goldfishCardPattern   = regexp.MustCompile(`data-card-id=['"]([^'"]+)['"]`)
	tagPattern            = regexp.MustCompile(`<[^>]+>`)
)

// stripTags removes markup and unescapes entities, leaving visible text.
func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(s, "")))
}

// mainboardCategories are MTGGoldfish's card-type section labels; any of
// them opens, or continues, the mainboard.
var mainboardCategories = []string{
	"Creatures", "Planeswalkers", "Spells", "Battles", "Artifacts", "Enchantments", "Lands",
}

// GoldfishScraper parses www.mtggoldfish.com decklist pages.
type GoldfishScraper struct {
	client        *Client
	resolver      *cards.Resolver
	defaultFormat string
}

// NewGoldfishScraper creates a Goldfish scraper resolving cards against the
// given format when the page does not declare one.
func NewGoldfishScraper(client *Client, resolver *cards.Resolver, defaultFormat string) *GoldfishScraper {
	return &GoldfishScraper{client: client, resolver: resolver, defaultFormat: defaultFormat}
}

// CanScrape reports whether the URL is a Goldfish deck page.
func (s *GoldfishScraper) CanScrape(url string) bool {
	return strings.Contains(url, "www.mtggoldfish.com/deck/") ||
		strings.Contains(url, "www.mtggoldfish.com/archetype/")
}

// Scrape fetches and parses the decklist page.
func (s *GoldfishScraper) Scrape(ctx context.Context, url string) (*deck.Deck, error) {
	page, err := s.client.GetHTML(ctx, url)
	if err != nil {
		return nil, err
	}
	rows, metadata, err := s.parsePage(url, page)
	if err != nil {
		return nil, err
	}
	format := s.defaultFormat
	if f, ok := metadata["format"].(string); ok && s.resolver.KnowsFormat(f) {
		format = f
	}
	metadata["format"] = format
	return deck.ParseRows(s.resolver, format, rows, metadata)
}

func (s *GoldfishScraper) parsePage(url, page string) ([]deck.Row, deck.Metadata, error) {
	metadata := deck.Metadata{"source": "www.mtggoldfish.com"}
	s.parseTitle(page, metadata)
	s.parseInfo(page, metadata)

	table := goldfishTablePattern.FindStringSubmatch(page)
	if table == nil {
		return nil, nil, &ScrapingError{URL: url, Reason: "no deck table found"}
	}

	var rows []deck.Row
	inMainboard := false
	for _, m := range goldfishRowPattern.FindAllStringSubmatch(table[1], -1) {
		rowHTML := m[1]
		if strings.Contains(m[0], "deck-category-header") {
			header := stripTags(rowHTML)
			switch {
			case header == "Commander":
				rows = append(rows, deck.HeaderRow(deck.StateCommander))
			case strings.HasPrefix(header, "Companion"):
				rows = append(rows, deck.HeaderRow(deck.StateCompanion))
			case strings.Contains(header, "Sideboard"):
				rows = append(rows, deck.HeaderRow(deck.StateSideboard))
				inMainboard = false
			case isMainboardCategory(header) && !inMainboard:
				rows = append(rows, deck.HeaderRow(deck.StateMainboard))
				inMainboard = true
			}
			continue
		}
		row, ok := parseGoldfishCardRow(url, rowHTML)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows, metadata, nil
}

func isMainboardCategory(header string) bool {
	for _, c := range mainboardCategories {
		if strings.Contains(header, c) {
			return true
		}
	}
	return false
}

func parseGoldfishCardRow(url, rowHTML string) (deck.Row, bool) {
	qty := goldfishQtyPattern.FindStringSubmatch(rowHTML)
	card := goldfishCardPattern.FindStringSubmatch(rowHTML)
	if qty == nil || card == nil {
		return deck.Row{}, false
	}
	quantity, _ := strconv.Atoi(qty[1])

	// data-card-id carries "Name [SET]".
	id := html.UnescapeString(card[1])
	name, setPart, found := strings.Cut(id, "[")
	if !found {
		return deck.Row{}, false
	}
	name = strings.TrimSpace(name)
	// Some names carry a trailing angle-bracketed variant marker.
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	setCode := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(setPart), "]"))
	return deck.CardRow(name, quantity, setCode, ""), true
}

func (s *GoldfishScraper) parseTitle(page string, metadata deck.Metadata) {
	m := goldfishTitlePattern.FindStringSubmatch(page)
	if m == nil {
		return
	}
	if a := goldfishAuthorPattern.FindStringSubmatch(m[1]); a != nil {
		metadata["author"] = strings.TrimSpace(a[1])
	}
	title := stripTags(m[1])
	if name, _, found := strings.Cut(title, "\n"); found {
		metadata["name"] = strings.TrimSpace(name)
	} else {
		metadata["name"] = title
	}
}

func (s *GoldfishScraper) parseInfo(page string, metadata deck.Metadata) {
	m := goldfishInfoPattern.FindStringSubmatch(page)
	if m == nil {
		return
	}
	var lines []string
	for _, chunk := range regexp.MustCompile(`<br\s*/?>`).Split(m[1], -1) {
		if text := stripTags(chunk); text != "" {
			lines = append(lines, text)
		}
	}
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Format:"):
			format := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "Format:")))
			if canonical, ok := goldfishFormats[format]; ok {
				format = canonical
			}
			metadata["format"] = format
		case strings.HasPrefix(line, "Event:"):
			metadata["event"] = strings.TrimSpace(strings.TrimPrefix(line, "Event:"))
		case strings.HasPrefix(line, "Deck Source:"):
			if i+1 < len(lines) {
				metadata["original_source"] = lines[i+1]
			}
		case strings.HasPrefix(line, "Deck Date:"):
			raw := strings.TrimSpace(strings.TrimPrefix(line, "Deck Date:"))
			if date, err := time.Parse("Jan 2, 2006", raw); err == nil {
				metadata["date"] = date
			}
		}
	}
}
