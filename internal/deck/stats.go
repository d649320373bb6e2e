package deck

import (
	"sort"

	"github.com/z33kz33k/mtgcards/internal/cards"
)

func (d *Deck) filterMainboard(pred func(*cards.Card) bool) []*cards.Card {
	var filtered []*cards.Card
	for _, c := range d.mainboard {
		if pred(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Mainboard filters by card type.

func (d *Deck) Artifacts() []*cards.Card     { return d.filterMainboard((*cards.Card).IsArtifact) }
func (d *Deck) Battles() []*cards.Card       { return d.filterMainboard((*cards.Card).IsBattle) }
func (d *Deck) Creatures() []*cards.Card     { return d.filterMainboard((*cards.Card).IsCreature) }
func (d *Deck) Enchantments() []*cards.Card  { return d.filterMainboard((*cards.Card).IsEnchantment) }
func (d *Deck) Instants() []*cards.Card      { return d.filterMainboard((*cards.Card).IsInstant) }
func (d *Deck) Lands() []*cards.Card         { return d.filterMainboard((*cards.Card).IsLand) }
func (d *Deck) Planeswalkers() []*cards.Card { return d.filterMainboard((*cards.Card).IsPlaneswalker) }
func (d *Deck) Sorceries() []*cards.Card     { return d.filterMainboard((*cards.Card).IsSorcery) }

// Mainboard filters by rarity tier.

func (d *Deck) Commons() []*cards.Card {
	return d.filterMainboard(func(c *cards.Card) bool { return c.Rarity == cards.RarityCommon })
}

func (d *Deck) Uncommons() []*cards.Card {
	return d.filterMainboard(func(c *cards.Card) bool { return c.Rarity == cards.RarityUncommon })
}

func (d *Deck) Rares() []*cards.Card {
	return d.filterMainboard(func(c *cards.Card) bool { return c.Rarity == cards.RarityRare })
}

func (d *Deck) Mythics() []*cards.Card {
	return d.filterMainboard(func(c *cards.Card) bool { return c.Rarity == cards.RarityMythic })
}

// ColorIdentity returns the combined color identity of all the deck's cards
// in canonical WUBRG order.
func (d *Deck) ColorIdentity() string {
	return cards.IdentityOfCards(d.AllCards())
}

// TotalRarityWeight sums booster-frequency rarity weights over the mainboard.
func (d *Deck) TotalRarityWeight() float64 {
	var total float64
	for _, c := range d.mainboard {
		total += c.Rarity.Weight()
	}
	return total
}

// AvgRarityWeight returns the average booster-frequency rarity weight of a
// mainboard card.
func (d *Deck) AvgRarityWeight() float64 {
	if len(d.mainboard) == 0 {
		return 0
	}
	return d.TotalRarityWeight() / float64(len(d.mainboard))
}

// AvgCMC returns the average mana value of mainboard cards that have one.
// Lands and zero-cost cards are excluded from the average.
func (d *Deck) AvgCMC() float64 {
	var total float64
	var count int
	for _, c := range d.mainboard {
		if c.CMC > 0 {
			total += c.CMC
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// Price sums the USD prices of mainboard cards with pricing data.
func (d *Deck) Price() float64 {
	var total float64
	for _, c := range d.mainboard {
		total += c.PriceUSD
	}
	return total
}

// PriceTix sums the MTGO ticket prices of mainboard cards with pricing data.
func (d *Deck) PriceTix() float64 {
	var total float64
	for _, c := range d.mainboard {
		total += c.PriceTix
	}
	return total
}

// Sets returns the sorted set codes of all non-basic-land cards in the deck.
func (d *Deck) Sets() []string {
	seen := make(map[string]bool)
	for _, c := range d.AllCards() {
		if !c.IsBasicLand() {
			seen[c.SetCode] = true
		}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ManaCurveCap is the mana value at which ManaCurve groups the tail.
const ManaCurveCap = 7

// ManaCurve returns the mainboard's non-land mana value distribution, with
// mana values of ManaCurveCap and above grouped together.
func (d *Deck) ManaCurve() map[int]int {
	curve := make(map[int]int)
	for _, c := range d.mainboard {
		if c.IsLand() {
			continue
		}
		cmc := int(c.CMC)
		if cmc > ManaCurveCap {
			cmc = ManaCurveCap
		}
		curve[cmc]++
	}
	return curve
}
