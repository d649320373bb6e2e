// Package cardstest provides a small fixture card pool for tests, standing
// in for the multi-thousand-card Scryfall dataset.
package cardstest

import "github.com/z33kz33k/mtgcards/internal/cards"

func standardLegal() map[string]string {
	return map[string]string{"standard": "legal", "historic": "legal", "commander": "legal"}
}

// Fixtures returns a fresh slice of fixture cards.
func Fixtures() []*cards.Card {
	return []*cards.Card{
		{
			ID: "island-fdn", OracleID: "o-island", Name: "Island",
			TypeLine: "Basic Land — Island", ColorIdentity: []string{"U"},
			SetCode: "fdn", CollectorNumber: "275", Rarity: cards.RarityCommon,
			Legalities: standardLegal(),
		},
		{
			ID: "mountain-fdn", OracleID: "o-mountain", Name: "Mountain",
			TypeLine: "Basic Land — Mountain", ColorIdentity: []string{"R"},
			SetCode: "fdn", CollectorNumber: "280", Rarity: cards.RarityCommon,
			Legalities: standardLegal(),
		},
		{
			ID: "negate-fdn", OracleID: "o-negate", Name: "Negate",
			ManaCost: "{1}{U}", CMC: 2, TypeLine: "Instant",
			OracleText: "Counter target noncreature spell.",
			Colors:     []string{"U"}, ColorIdentity: []string{"U"},
			SetCode: "fdn", CollectorNumber: "59", Rarity: cards.RarityCommon,
			Legalities: standardLegal(), PriceUSD: 0.1,
		},
		{
			ID: "shock-fdn", OracleID: "o-shock", Name: "Shock",
			ManaCost: "{R}", CMC: 1, TypeLine: "Instant",
			OracleText: "Shock deals 2 damage to any target.",
			Colors:     []string{"R"}, ColorIdentity: []string{"R"},
			SetCode: "fdn", CollectorNumber: "99", Rarity: cards.RarityCommon,
			Legalities: standardLegal(), PriceUSD: 0.05,
		},
		{
			// second printing of Shock, for tie-break coverage
			ID: "shock-m21", OracleID: "o-shock", Name: "Shock",
			ManaCost: "{R}", CMC: 1, TypeLine: "Instant",
			OracleText: "Shock deals 2 damage to any target.",
			Colors:     []string{"R"}, ColorIdentity: []string{"R"},
			SetCode: "m21", CollectorNumber: "159", Rarity: cards.RarityCommon,
			Legalities: standardLegal(),
		},
		{
			ID: "bears-fdn", OracleID: "o-bears", Name: "Grizzly Bears",
			ManaCost: "{1}{G}", CMC: 2, TypeLine: "Creature — Bear",
			Colors: []string{"G"}, ColorIdentity: []string{"G"},
			SetCode: "fdn", CollectorNumber: "201", Rarity: cards.RarityCommon,
			Legalities: standardLegal(),
		},
		{
			ID: "commit-akr", OracleID: "o-commit", Name: "Commit // Memory",
			ManaCost: "{3}{U} // {4}{U}{U}", CMC: 4, Layout: "split",
			TypeLine: "Instant // Sorcery",
			Colors:   []string{"U"}, ColorIdentity: []string{"U"},
			CardFaces: []cards.CardFace{
				{Name: "Commit", ManaCost: "{3}{U}", TypeLine: "Instant"},
				{Name: "Memory", ManaCost: "{4}{U}{U}", TypeLine: "Sorcery"},
			},
			SetCode: "akr", CollectorNumber: "54", Rarity: cards.RarityRare,
			Legalities: standardLegal(), PriceUSD: 0.5,
		},
		{
			ID: "anax-thb", OracleID: "o-anax", Name: "Anax, Hardened in the Forge",
			ManaCost: "{1}{R}{R}", CMC: 3,
			TypeLine: "Legendary Creature — Demigod",
			Colors:   []string{"R"}, ColorIdentity: []string{"R"},
			SetCode: "thb", CollectorNumber: "125", Rarity: cards.RarityUncommon,
			Legalities: standardLegal(),
		},
		{
			ID: "kaheera-iko", OracleID: "o-kaheera", Name: "Kaheera, the Orphanguard",
			ManaCost: "{1}{G/W}{G/W}", CMC: 3,
			TypeLine: "Legendary Creature — Cat Beast",
			Keywords: []string{"Companion"},
			Colors:   []string{"G", "W"}, ColorIdentity: []string{"G", "W"},
			SetCode: "iko", CollectorNumber: "227", Rarity: cards.RarityRare,
			Legalities: standardLegal(),
		},
		{
			ID: "approach-stx", OracleID: "o-approach", Name: "Dragon's Approach",
			ManaCost: "{2}{R}", CMC: 3, TypeLine: "Sorcery",
			OracleText: "Dragon's Approach deals 3 damage to each opponent.\n" +
				"A deck can have any number of cards named Dragon's Approach.",
			Colors: []string{"R"}, ColorIdentity: []string{"R"},
			SetCode: "stx", CollectorNumber: "102", Rarity: cards.RarityCommon,
			Legalities: standardLegal(),
		},
		{
			ID: "dreadmaw-fdn", OracleID: "o-dreadmaw", Name: "Colossal Dreadmaw",
			ManaCost: "{4}{G}{G}", CMC: 6, TypeLine: "Creature — Dinosaur",
			Colors: []string{"G"}, ColorIdentity: []string{"G"},
			SetCode: "fdn", CollectorNumber: "204", Rarity: cards.RarityCommon,
			Legalities: standardLegal(),
		},
		{
			ID: "dwarves-eld", OracleID: "o-dwarves", Name: "Seven Dwarves",
			ManaCost: "{R}", CMC: 1, TypeLine: "Creature — Dwarf",
			OracleText: "A deck can have up to seven cards named Seven Dwarves.",
			Colors:     []string{"R"}, ColorIdentity: []string{"R"},
			SetCode: "eld", CollectorNumber: "141", Rarity: cards.RarityCommon,
			Legalities: standardLegal(),
		},
	}
}

// Pool returns a fresh indexed fixture pool.
func Pool() *cards.Pool {
	return cards.NewPool(Fixtures())
}

// Resolver returns a fresh resolver over the fixture pool.
func Resolver() *cards.Resolver {
	return cards.NewResolver(Pool())
}

// MustFind returns the fixture card with the given name, panicking on a miss
// so fixture typos fail loudly.
func MustFind(name string) *cards.Card {
	card := Pool().FindByName(name)
	if card == nil {
		panic("cardstest: no fixture card named " + name)
	}
	return card
}
