package deck

import (
	"strings"

	"github.com/z33kz33k/mtgcards/internal/cards"
)

// Archetype is a coarse deck-strategy label.
type Archetype string

const (
	Aggro    Archetype = "aggro"
	Midrange Archetype = "midrange"
	Control  Archetype = "control"
	Combo    Archetype = "combo"
	Tempo    Archetype = "tempo"
	Ramp     Archetype = "ramp"
)

var allArchetypes = []Archetype{Aggro, Midrange, Control, Combo, Tempo, Ramp}

// Classification thresholds. Decks curving below minAggroCMC read as aggro;
// decks with fewer than maxControlCreatures creatures read as control.
const (
	minAggroCMC         = 2.3
	maxControlCreatures = 10
)

// nameTokens splits the deck name into words, excluding color words so
// "Izzet Phoenix" classifies on "Phoenix".
func (d *Deck) nameTokens() []string {
	var tokens []string
	for _, token := range strings.Fields(d.Name()) {
		if _, isColor := cards.ColorLetters(token); isColor {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Color returns the deck's color label. An explicit color word in the deck's
// name wins over the computed color identity, since names like "Mono Red
// Aggro" are more intentional than splash-polluted identities.
func (d *Deck) Color() string {
	for _, token := range strings.Fields(d.Name()) {
		if letters, ok := cards.ColorLetters(token); ok {
			return letters
		}
	}
	return d.ColorIdentity()
}

// Theme returns the deck-building theme matched in the deck's name, or "".
func (d *Deck) Theme() string {
	for _, token := range d.nameTokens() {
		if th, ok := themeForToken(token); ok {
			return th
		}
	}
	return ""
}

// Archetype infers the deck's strategy label. Fallback order: an archetype
// word in the deck's name, then combo detection (a name token matching a
// mainboard card-name word, unless the name carries a theme), and finally
// the numeric rule on average mana value and creature count.
func (d *Deck) Archetype() Archetype {
	tokens := d.nameTokens()
	if len(tokens) > 0 {
		for _, token := range tokens {
			for _, arch := range allArchetypes {
				if strings.EqualFold(token, string(arch)) {
					return arch
				}
			}
		}
		if arch, ok := d.detectCombo(tokens); ok {
			return arch
		}
	}
	if d.AvgCMC() < minAggroCMC {
		return Aggro
	}
	if len(d.Creatures()) < maxControlCreatures {
		return Control
	}
	return Midrange
}

// detectCombo reports a combo deck when a name token appears as a word of a
// mainboard card's name. Themed decks are excluded: "Goblins" names a tribe,
// not a combo piece.
func (d *Deck) detectCombo(tokens []string) (Archetype, bool) {
	for _, token := range tokens {
		if _, themed := themeForToken(token); themed {
			return "", false
		}
	}
	cardParts := make(map[string]bool)
	for _, c := range d.mainboard {
		for _, part := range c.NameParts() {
			cardParts[part] = true
		}
	}
	for _, token := range tokens {
		if cardParts[strings.ToLower(token)] {
			return Combo, true
		}
	}
	return "", false
}
