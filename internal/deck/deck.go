package deck

import (
	"time"

	"github.com/z33kz33k/mtgcards/internal/cards"
)

const (
	// MinMainboardSize is the constructed-format deck floor, commander
	// included.
	MinMainboardSize = 60
	// MaxSideboardSize caps the sideboard, companion included.
	MaxSideboardSize = 15
)

// Metadata holds free-form deck attributes scraped alongside the list: name,
// author, source, format, date, views, tags, event info. The core only reads
// it for derived labels.
type Metadata map[string]any

func (m Metadata) str(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Playset groups the copies of one unique card. The grouping key is the
// printing's stable identity, so two printings of the same named card stay
// distinct playsets.
type Playset struct {
	Card  *cards.Card
	Count int
}

// GroupPlaysets groups cards into playsets by card identity, preserving
// first-seen order.
func GroupPlaysets(list []*cards.Card) []Playset {
	index := make(map[string]int, len(list))
	var playsets []Playset
	for _, c := range list {
		if i, ok := index[c.ID]; ok {
			playsets[i].Count++
			continue
		}
		index[c.ID] = len(playsets)
		playsets = append(playsets, Playset{Card: c, Count: 1})
	}
	return playsets
}

// Deck is a validated deck of cards for Constructed formats. It is built
// atomically by New and immutable afterwards; only metadata may be updated.
type Deck struct {
	mainboard []*cards.Card
	sideboard []*cards.Card
	commander *cards.Card
	companion *cards.Card
	metadata  Metadata

	maxPlaysetCount int
}

// New constructs a deck from the four parsed buckets and validates the
// deckbuilding invariants: mainboard size and per-card copy limits first,
// then combined mainboard+sideboard copy limits, the sideboard cap, and
// finally commander color identity. The first violation is returned as an
// *InvalidDeckError.
//
// A companion not already present in the sideboard is injected into it, so
// it is part of sideboard accounting as the rules require.
func New(mainboard, sideboard []*cards.Card, commander, companion *cards.Card, metadata Metadata) (*Deck, error) {
	if metadata == nil {
		metadata = Metadata{}
	}
	if companion != nil && !containsCard(sideboard, companion) {
		sideboard = append([]*cards.Card{companion}, sideboard...)
	}

	d := &Deck{
		mainboard:       mainboard,
		sideboard:       sideboard,
		commander:       commander,
		companion:       companion,
		metadata:        metadata,
		maxPlaysetCount: 4,
	}
	if commander != nil {
		d.maxPlaysetCount = 1
	}

	if err := d.validateMainboard(); err != nil {
		return nil, err
	}
	if err := d.validateSideboard(); err != nil {
		return nil, err
	}
	if err := d.validateColorIdentity(); err != nil {
		return nil, err
	}
	return d, nil
}

func containsCard(list []*cards.Card, card *cards.Card) bool {
	for _, c := range list {
		if c.ID == card.ID {
			return true
		}
	}
	return false
}

func (d *Deck) validatePlayset(ps Playset) error {
	card := ps.Card
	if card.IsBasicLand() {
		return nil
	}
	limit := d.maxPlaysetCount
	switch m := card.AllowedMultiples(); m {
	case cards.MultiplesUnlimited:
		return nil
	case cards.MultiplesDefault:
	default:
		limit = int(m)
	}
	if ps.Count > limit {
		return invalidDeckf("too many occurrences of %q: %d > %d", card.Name, ps.Count, limit)
	}
	return nil
}

func (d *Deck) validateMainboard() error {
	for _, ps := range GroupPlaysets(d.mainboard) {
		if err := d.validatePlayset(ps); err != nil {
			return err
		}
	}
	size := len(d.mainboard)
	if d.commander != nil {
		size++
	}
	if size < MinMainboardSize {
		return invalidDeckf("invalid deck size: %d < %d", size, MinMainboardSize)
	}
	return nil
}

func (d *Deck) validateSideboard() error {
	if len(d.sideboard) == 0 {
		return nil
	}
	for _, ps := range GroupPlaysets(d.AllCards()) {
		if err := d.validatePlayset(ps); err != nil {
			return err
		}
	}
	if len(d.sideboard) > MaxSideboardSize {
		return invalidDeckf("invalid sideboard size: %d > %d", len(d.sideboard), MaxSideboardSize)
	}
	return nil
}

func (d *Deck) validateColorIdentity() error {
	if d.commander == nil {
		return nil
	}
	identity := cards.NormalizeColors(d.commander.ColorIdentity)
	for _, card := range d.AllCards() {
		cardIdentity := cards.NormalizeColors(card.ColorIdentity)
		if !cards.IdentityContains(identity, cardIdentity) {
			return invalidDeckf(
				"color identity of %q doesn't fit commander: %s not within %s",
				card.Name, cardIdentity, identity)
		}
	}
	return nil
}

// Mainboard returns the mainboard cards in insertion order.
func (d *Deck) Mainboard() []*cards.Card { return d.mainboard }

// Sideboard returns the sideboard cards, companion included.
func (d *Deck) Sideboard() []*cards.Card { return d.sideboard }

// HasSideboard reports whether the deck has any sideboard cards.
func (d *Deck) HasSideboard() bool { return len(d.sideboard) > 0 }

// Commander returns the designated commander, or nil.
func (d *Deck) Commander() *cards.Card { return d.commander }

// Companion returns the designated companion, or nil.
func (d *Deck) Companion() *cards.Card { return d.companion }

// MaxPlaysetCount returns the deck's global per-card copy limit.
func (d *Deck) MaxPlaysetCount() int { return d.maxPlaysetCount }

// AllCards returns mainboard and sideboard concatenated.
func (d *Deck) AllCards() []*cards.Card {
	all := make([]*cards.Card, 0, len(d.mainboard)+len(d.sideboard))
	all = append(all, d.mainboard...)
	all = append(all, d.sideboard...)
	return all
}

// Metadata returns the deck's metadata mapping.
func (d *Deck) Metadata() Metadata { return d.metadata }

// UpdateMetadata merges the given attributes into the deck's metadata. This
// is the only permitted post-construction mutation.
func (d *Deck) UpdateMetadata(attrs Metadata) {
	for k, v := range attrs {
		d.metadata[k] = v
	}
}

// Name returns the deck's name from metadata, or "".
func (d *Deck) Name() string { return d.metadata.str("name") }

// Source returns the deck's origin site from metadata, or "".
func (d *Deck) Source() string { return d.metadata.str("source") }

// Format returns the deck's format designation from metadata, or "".
func (d *Deck) Format() string { return d.metadata.str("format") }

// Date returns the deck's date from metadata, or the zero time.
func (d *Deck) Date() time.Time {
	if v, ok := d.metadata["date"].(time.Time); ok {
		return v
	}
	return time.Time{}
}
