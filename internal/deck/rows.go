package deck

import (
	"github.com/z33kz33k/mtgcards/internal/cards"
)

// Row is one normalized entry produced by a site adapter presenting grouped
// tables: either a section header (Header set, card fields empty) or a card
// entry.
type Row struct {
	Header          ParsingState // StateIdle for card rows
	Name            string
	Quantity        int
	SetCode         string
	CollectorNumber string
}

// HeaderRow returns a section header row.
func HeaderRow(section ParsingState) Row { return Row{Header: section} }

// CardRow returns a card entry row.
func CardRow(name string, quantity int, setCode, collectorNumber string) Row {
	return Row{Name: name, Quantity: quantity, SetCode: setCode, CollectorNumber: collectorNumber}
}

// resolveRow resolves a card row into a playset. Rows carrying a collector
// number are resolved by exact printing first; an unknown set code (Arena's
// Alchemy codes differ from canonical ones) falls back to name lookup in the
// format pool.
func resolveRow(resolver *cards.Resolver, format string, row Row) []*cards.Card {
	if row.SetCode != "" && row.CollectorNumber != "" {
		if card, known := resolver.ByCollectorNumber(row.CollectorNumber, row.SetCode); known && card != nil {
			playset := make([]*cards.Card, row.Quantity)
			for i := range playset {
				playset[i] = card
			}
			return playset
		}
	}
	return resolver.Playset(row.Name, row.Quantity, row.SetCode, format)
}

// ParseRows drives the grouped-row state machine over a normalized row
// sequence and constructs the deck. Any invalid section transition, an
// unresolvable commander or companion row, or a deck invariant violation
// fails the whole parse; unresolvable mainboard and sideboard rows are
// dropped, since scraped sources routinely reference renamed or rotated
// cards.
func ParseRows(resolver *cards.Resolver, format string, rows []Row, metadata Metadata) (*Deck, error) {
	var (
		state     = StateIdle
		mainboard []*cards.Card
		sideboard []*cards.Card
		commander *cards.Card
		companion *cards.Card
		err       error
	)

	for _, row := range rows {
		if row.Header != StateIdle {
			if state, err = ShiftRows(state, row.Header); err != nil {
				return nil, err
			}
			continue
		}

		playset := resolveRow(resolver, format, row)
		switch state {
		case StateCommander:
			if len(playset) == 0 {
				return nil, &ParseError{Line: row.Name, Reason: "unresolvable commander row"}
			}
			commander = playset[0]
		case StateCompanion:
			if len(playset) == 0 {
				return nil, &ParseError{Line: row.Name, Reason: "unresolvable companion row"}
			}
			companion = playset[0]
		case StateMainboard:
			mainboard = append(mainboard, playset...)
		case StateSideboard:
			sideboard = append(sideboard, playset...)
		}
	}

	return New(mainboard, sideboard, commander, companion, metadata)
}
