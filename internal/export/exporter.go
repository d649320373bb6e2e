// Package export serializes validated decks to deckfile formats.
package export

import (
	"fmt"
	"strings"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

// Format represents the deckfile format to export in.
type Format string

const (
	FormatArena Format = "arena" // MTG Arena decklist text
	FormatForge Format = "forge" // Forge MTG .dck file
)

// DeckExport represents an exported deck.
type DeckExport struct {
	Content  string // the exported deck text
	Format   Format
	Filename string // suggested filename, extension included
}

// Exporter handles deck export to deckfile formats. The zero value derives
// the deck name from its metadata and heuristics; set Name to override.
type Exporter struct {
	Name string
}

// Export exports a deck to the specified format.
func (e *Exporter) Export(d *deck.Deck, format Format) (*DeckExport, error) {
	if d == nil {
		return nil, fmt.Errorf("deck is nil")
	}
	name := e.Name
	if name == "" {
		name = buildName(d)
	}

	var content, ext string
	switch format {
	case FormatArena:
		content = buildArena(d)
		ext = ".txt"
	case FormatForge:
		content = buildDck(d, name)
		ext = ".dck"
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	return &DeckExport{
		Content:  content,
		Format:   format,
		Filename: sanitizeFilename(name) + ext,
	}, nil
}

func arenaLine(p deck.Playset) string {
	name := strings.ReplaceAll(p.Card.Name, cards.FaceSeparator, " /// ")
	line := fmt.Sprintf("%d %s", p.Count, name)
	if p.Card.SetCode != "" && p.Card.CollectorNumber != "" {
		line += fmt.Sprintf(" (%s) %s", strings.ToUpper(p.Card.SetCode), p.Card.CollectorNumber)
	}
	return line
}

func buildArena(d *deck.Deck) string {
	var lines []string
	if c := d.Commander(); c != nil {
		lines = append(lines, "Commander", arenaLine(deck.Playset{Card: c, Count: 1}), "")
	}
	if c := d.Companion(); c != nil {
		lines = append(lines, "Companion", arenaLine(deck.Playset{Card: c, Count: 1}), "")
	}
	lines = append(lines, "Deck")
	for _, p := range deck.GroupPlaysets(d.Mainboard()) {
		lines = append(lines, arenaLine(p))
	}
	if d.HasSideboard() {
		lines = append(lines, "", "Sideboard")
		for _, p := range deck.GroupPlaysets(d.Sideboard()) {
			lines = append(lines, arenaLine(p))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func dckLine(p deck.Playset) string {
	return fmt.Sprintf("%d %s|%s|1", p.Count, p.Card.MainName(), strings.ToUpper(p.Card.SetCode))
}

func buildDck(d *deck.Deck, name string) string {
	var sb strings.Builder
	sb.WriteString("[metadata]\n")
	sb.WriteString("Name=" + name + "\n")
	sb.WriteString("[Commander]\n")
	if c := d.Commander(); c != nil {
		sb.WriteString(dckLine(deck.Playset{Card: c, Count: 1}) + "\n")
	}
	sb.WriteString("[Main]\n")
	for _, p := range deck.GroupPlaysets(d.Mainboard()) {
		sb.WriteString(dckLine(p) + "\n")
	}
	sb.WriteString("[Sideboard]\n")
	for _, p := range deck.GroupPlaysets(d.Sideboard()) {
		sb.WriteString(dckLine(p) + "\n")
	}
	return sb.String()
}

func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	for _, char := range invalid {
		name = strings.ReplaceAll(name, char, "_")
	}
	name = strings.TrimSpace(name)
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "deck"
	}
	return name
}
