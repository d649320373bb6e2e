package cards

import (
	"strconv"
	"strings"
)

// FaceSeparator separates the face names of a multiface card in Scryfall data.
const FaceSeparator = " // "

// Rarity is a card's rarity tier as reported by Scryfall.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityMythic   Rarity = "mythic"
	RaritySpecial  Rarity = "special"
	RarityBonus    Rarity = "bonus"
)

// Weight returns the fractional weight of this rarity based on its frequency
// of occurrence in boosters (one mythic per eight 15-card boosters, seven
// rares per eight, three uncommons and eleven commons per booster).
func (r Rarity) Weight() float64 {
	switch r {
	case RarityMythic, RarityBonus:
		return 1 / (1.0 / 15 * 1.0 / 8) // 120.00
	case RarityRare:
		return 1 / (1.0 / 15 * 7.0 / 8) // 17.14
	case RarityUncommon:
		return 1 / (1.0 / 15 * 3) // 5.00
	default: // common or special
		return 1 / (1.0 / 15 * 11) // 1.36
	}
}

// Multiples is a card's own copy-limit override parsed from its rules text.
type Multiples int

const (
	// MultiplesDefault defers to the deck's global playset limit.
	MultiplesDefault Multiples = 0
	// MultiplesUnlimited exempts the card from copy limits entirely.
	MultiplesUnlimited Multiples = -1
)

// CardFace is one face of a multiface card.
type CardFace struct {
	Name       string   `json:"name"`
	ManaCost   string   `json:"mana_cost,omitempty"`
	TypeLine   string   `json:"type_line"`
	OracleText string   `json:"oracle_text,omitempty"`
	Colors     []string `json:"colors,omitempty"`
}

// Card is a single printing of a Magic card. Instances are shared read-only
// references into the card pool; identity is the Scryfall ID.
type Card struct {
	ID              string            `json:"id"`
	OracleID        string            `json:"oracle_id"`
	Name            string            `json:"name"`
	ManaCost        string            `json:"mana_cost,omitempty"`
	CMC             float64           `json:"cmc"`
	TypeLine        string            `json:"type_line"`
	OracleText      string            `json:"oracle_text,omitempty"`
	Colors          []string          `json:"colors,omitempty"`
	ColorIdentity   []string          `json:"color_identity"`
	Keywords        []string          `json:"keywords,omitempty"`
	Layout          string            `json:"layout"`
	SetCode         string            `json:"set"`
	SetName         string            `json:"set_name,omitempty"`
	CollectorNumber string            `json:"collector_number"`
	Rarity          Rarity            `json:"rarity"`
	CardFaces       []CardFace        `json:"card_faces,omitempty"`
	Legalities      map[string]string `json:"legalities,omitempty"`
	PriceUSD        float64           `json:"price_usd,omitempty"`
	PriceTix        float64           `json:"price_tix,omitempty"`
}

// IsMultiface reports whether the card has more than one face.
func (c *Card) IsMultiface() bool {
	return strings.Contains(c.Name, FaceSeparator)
}

// MainName returns the name of the card's first face.
func (c *Card) MainName() string {
	name, _, _ := strings.Cut(c.Name, FaceSeparator)
	return name
}

// NameParts returns the lowercase words of all face names.
func (c *Card) NameParts() []string {
	name := strings.ReplaceAll(c.Name, FaceSeparator, " ")
	fields := strings.Fields(strings.ToLower(name))
	seen := make(map[string]bool, len(fields))
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ",.'\"")
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		parts = append(parts, f)
	}
	return parts
}

// typeLines returns the type line of every face.
func (c *Card) typeLines() []string {
	if len(c.CardFaces) > 0 {
		lines := make([]string, 0, len(c.CardFaces))
		for _, f := range c.CardFaces {
			lines = append(lines, f.TypeLine)
		}
		return lines
	}
	return strings.Split(c.TypeLine, "//")
}

// hasType reports whether any face carries the given card type. Only the part
// of the type line left of the em dash is considered, so subtypes like
// "Dryad Arbor"'s "Forest" don't count as regular types.
func (c *Card) hasType(cardType string) bool {
	for _, line := range c.typeLines() {
		regular, _, _ := strings.Cut(line, "—")
		for _, t := range strings.Fields(regular) {
			if t == cardType {
				return true
			}
		}
	}
	return false
}

func (c *Card) IsArtifact() bool     { return c.hasType("Artifact") }
func (c *Card) IsBattle() bool       { return c.hasType("Battle") }
func (c *Card) IsCreature() bool     { return c.hasType("Creature") }
func (c *Card) IsEnchantment() bool  { return c.hasType("Enchantment") }
func (c *Card) IsInstant() bool      { return c.hasType("Instant") }
func (c *Card) IsLand() bool         { return c.hasType("Land") }
func (c *Card) IsPlaneswalker() bool { return c.hasType("Planeswalker") }
func (c *Card) IsSorcery() bool      { return c.hasType("Sorcery") }

// IsBasicLand reports whether the card is a basic land and thus exempt from
// deckbuilding copy limits.
func (c *Card) IsBasicLand() bool {
	return c.IsLand() && c.hasType("Basic")
}

// IsCompanion reports whether the card can be designated as a companion.
func (c *Card) IsCompanion() bool {
	for _, kw := range c.Keywords {
		if kw == "Companion" {
			return true
		}
	}
	return false
}

// IsLegalIn reports whether the card is legal or restricted in the given
// format.
func (c *Card) IsLegalIn(format string) bool {
	switch c.Legalities[strings.ToLower(format)] {
	case "legal", "restricted":
		return true
	}
	return false
}

// LegalFormats returns the formats the card is legal in, unsorted.
func (c *Card) LegalFormats() []string {
	var formats []string
	for fmt, status := range c.Legalities {
		if status == "legal" || status == "restricted" {
			formats = append(formats, fmt)
		}
	}
	return formats
}

// CollectorNumberInt returns the numeric value of the collector number, or -1
// when it contains letters (promo and list printings).
func (c *Card) CollectorNumberInt() int {
	n, err := strconv.Atoi(c.CollectorNumber)
	if err != nil {
		return -1
	}
	return n
}

// multiplesPhrases maps rules-text phrases to copy-limit overrides, e.g.
// Seven Dwarves ("up to seven") or Dragon's Approach ("any number").
var multiplesPhrases = []struct {
	phrase string
	value  Multiples
}{
	{"deck can have any number of cards named", MultiplesUnlimited},
	{"deck can have up to one", 1},
	{"deck can have up to two", 2},
	{"deck can have up to three", 3},
	{"deck can have up to four", 4},
	{"deck can have up to five", 5},
	{"deck can have up to six", 6},
	{"deck can have up to seven", 7},
	{"deck can have up to eight", 8},
	{"deck can have up to nine", 9},
}

// AllowedMultiples returns the card's own copy-limit override, or
// MultiplesDefault when its rules text grants none.
func (c *Card) AllowedMultiples() Multiples {
	text := c.OracleText
	if text == "" && len(c.CardFaces) > 0 {
		for _, f := range c.CardFaces {
			text += f.OracleText + "\n"
		}
	}
	if text == "" {
		return MultiplesDefault
	}
	for _, m := range multiplesPhrases {
		if strings.Contains(text, m.phrase) {
			return m.value
		}
	}
	return MultiplesDefault
}
