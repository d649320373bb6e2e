// Package arena parses the MTG Arena plain-text decklist format.
package arena

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/z33kz33k/mtgcards/internal/cards"
)

// FaceSeparator separates face names of multiface cards in Arena exports;
// Scryfall data uses "//" instead.
const FaceSeparator = "///"

var (
	// matches "4 Commit /// Memory"
	playsetPattern = regexp.MustCompile(`^\d{1,3}x?\s+[A-Z][\w\s'&/,-]+`)
	// matches "4 Commit /// Memory (AKR) 54"
	extendedPattern = regexp.MustCompile(`^\d{1,3}x?\s+[A-Z][\w\s'&/,-]+\(([A-Za-z0-9]{3,5})\)\s+([A-Za-z0-9]{1,6})`)
)

// PlaysetLine is one parsed line of Arena decklist text denoting a card
// playset, e.g. "4 Commit /// Memory (AKR) 54". It lives only long enough to
// be turned into a list of resolved cards.
type PlaysetLine struct {
	Raw             string
	Quantity        int
	Name            string // face separator rewritten to Scryfall's
	SetCode         string // lowercase, empty unless Extended
	CollectorNumber string // empty unless Extended
	Extended        bool   // set code and collector number present
}

// IsPlaysetLine reports whether the line denotes a card playset.
func IsPlaysetLine(line string) bool {
	return playsetPattern.MatchString(line)
}

// ParsePlaysetLine parses one playset line.
func ParsePlaysetLine(line string) (*PlaysetLine, error) {
	if !IsPlaysetLine(line) {
		return nil, &ParseLineError{Line: line}
	}
	pl := &PlaysetLine{Raw: line}

	// The grammar allows any whitespace between quantity and name, not
	// just a space.
	cut := strings.IndexFunc(line, unicode.IsSpace)
	if cut < 0 {
		return nil, &ParseLineError{Line: line}
	}
	rest := strings.TrimLeftFunc(line[cut:], unicode.IsSpace)
	quantity, err := strconv.Atoi(strings.TrimSuffix(line[:cut], "x"))
	if err != nil {
		return nil, &ParseLineError{Line: line}
	}
	pl.Quantity = quantity

	if m := extendedPattern.FindStringSubmatch(line); m != nil {
		pl.Extended = true
		pl.SetCode = strings.ToLower(m[1])
		name, _, _ := strings.Cut(rest, "(")
		pl.Name = strings.TrimSpace(name)
		_, after, _ := strings.Cut(rest, ")")
		pl.CollectorNumber = strings.TrimSpace(after)
	} else {
		pl.Name = strings.TrimSpace(rest)
	}
	pl.Name = strings.ReplaceAll(pl.Name, FaceSeparator, "//")
	return pl, nil
}

// ParseLineError reports a line that does not match the playset grammar.
type ParseLineError struct {
	Line string
}

func (e *ParseLineError) Error() string {
	return "not a playset line: " + strconv.Quote(e.Line)
}

// ToPlayset resolves the line into a playset of cards. Extended lines are
// resolved by exact printing first; unknown set codes (Arena's Alchemy codes
// differ from canonical ones) and printing misses fall back to name lookup
// within the format's legal pool. An unresolvable line yields an empty
// playset.
func (pl *PlaysetLine) ToPlayset(resolver *cards.Resolver, format string) []*cards.Card {
	if pl.Extended {
		if card, known := resolver.ByCollectorNumber(pl.CollectorNumber, pl.SetCode); known && card != nil {
			playset := make([]*cards.Card, pl.Quantity)
			for i := range playset {
				playset[i] = card
			}
			return playset
		}
	}
	return resolver.Playset(pl.Name, pl.Quantity, pl.SetCode, format)
}
