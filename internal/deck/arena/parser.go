package arena

import (
	"fmt"
	"strings"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

// Parser parses Arena-format decklist text into validated decks. It is
// stateless between Parse calls and safe for concurrent use.
type Parser struct {
	resolver *cards.Resolver
	format   string
}

// NewParser creates a parser scoped to the given format's legal card pool.
func NewParser(resolver *cards.Resolver, format string) (*Parser, error) {
	format = strings.ToLower(format)
	if !resolver.KnowsFormat(format) {
		return nil, fmt.Errorf("unknown format: %q", format)
	}
	return &Parser{resolver: resolver, format: format}, nil
}

// Format returns the parser's format designation.
func (p *Parser) Format() string { return p.format }

// ParseText splits decklist text into lines and parses it.
func (p *Parser) ParseText(text string, metadata deck.Metadata) (*deck.Deck, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return p.Parse(lines, metadata)
}

// Parse consumes raw decklist lines and returns the validated deck. The
// state machine starts IDLE and shifts on section headers; the first card
// line seen while still IDLE implicitly opens the mainboard, since a deck
// block need not start with an explicit "Deck" header. Unresolvable
// mainboard and sideboard lines contribute no cards; unresolvable commander
// and companion lines fail the parse, as do duplicate section headers and
// deck invariant violations.
func (p *Parser) Parse(lines []string, metadata deck.Metadata) (*deck.Deck, error) {
	arenaLines := ArenaLines(lines)
	if len(arenaLines) == 0 {
		return nil, &deck.ParseError{Reason: "no Arena lines found"}
	}
	if metadata == nil {
		metadata = deck.Metadata{}
	}
	if metadata["source"] == nil {
		metadata["source"] = "arena.decklist"
	}
	if metadata["format"] == nil {
		metadata["format"] = p.format
	}

	var (
		state     = deck.StateIdle
		mainboard []*cards.Card
		sideboard []*cards.Card
		commander *cards.Card
		companion *cards.Card
		err       error
	)

	for _, line := range arenaLines {
		switch line {
		case deckHeader:
			state, err = deck.ShiftArena(state, deck.StateMainboard)
		case sideboardHeader:
			state, err = deck.ShiftArena(state, deck.StateSideboard)
		case commanderHeader:
			state, err = deck.ShiftArena(state, deck.StateCommander)
		case companionHeader:
			state, err = deck.ShiftArena(state, deck.StateCompanion)
		default:
			pl, lineErr := ParsePlaysetLine(line)
			if lineErr != nil {
				return nil, lineErr
			}
			if state == deck.StateIdle {
				if state, err = deck.ShiftArena(state, deck.StateMainboard); err != nil {
					return nil, err
				}
			}
			playset := pl.ToPlayset(p.resolver, p.format)
			switch state {
			case deck.StateSideboard:
				sideboard = append(sideboard, playset...)
			case deck.StateCommander:
				if len(playset) == 0 {
					return nil, &deck.ParseError{Line: line, Reason: "unresolvable commander line"}
				}
				commander = playset[0]
			case deck.StateCompanion:
				if len(playset) == 0 {
					return nil, &deck.ParseError{Line: line, Reason: "unresolvable companion line"}
				}
				companion = playset[0]
			case deck.StateMainboard:
				mainboard = append(mainboard, playset...)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	return deck.New(mainboard, sideboard, commander, companion, metadata)
}
