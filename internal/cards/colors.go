package cards

import "strings"

// wubrg is the canonical color ordering used for identity strings.
const wubrg = "WUBRG"

// colorNames maps canonical WUBRG-ordered letter combinations to their
// traditional names: guilds for pairs, shards and wedges for triples.
var colorNames = map[string]string{
	"":      "Colorless",
	"W":     "White",
	"U":     "Blue",
	"B":     "Black",
	"R":     "Red",
	"G":     "Green",
	"WU":    "Azorius",
	"UB":    "Dimir",
	"BR":    "Rakdos",
	"RG":    "Gruul",
	"WG":    "Selesnya",
	"WB":    "Orzhov",
	"UR":    "Izzet",
	"BG":    "Golgari",
	"WR":    "Boros",
	"UG":    "Simic",
	"WUB":   "Esper",
	"UBR":   "Grixis",
	"BRG":   "Jund",
	"WRG":   "Naya",
	"WUG":   "Bant",
	"WBG":   "Abzan",
	"WUR":   "Jeskai",
	"UBG":   "Sultai",
	"WBR":   "Mardu",
	"URG":   "Temur",
	"UBRG":  "Glint",
	"WBRG":  "Dune",
	"WURG":  "Ink",
	"WUBG":  "Witch",
	"WUBR":  "Yore",
	"WUBRG": "FiveColor",
}

// lettersByName is the reverse of colorNames, keyed by lowercase name.
var lettersByName = func() map[string]string {
	m := make(map[string]string, len(colorNames))
	for letters, name := range colorNames {
		m[strings.ToLower(name)] = letters
	}
	return m
}()

// NormalizeColors sorts color letters into canonical WUBRG order and drops
// duplicates and unknown letters.
func NormalizeColors(letters []string) string {
	present := make(map[byte]bool, len(letters))
	for _, l := range letters {
		if len(l) == 1 && strings.IndexByte(wubrg, l[0]) >= 0 {
			present[l[0]] = true
		}
	}
	var sb strings.Builder
	for i := 0; i < len(wubrg); i++ {
		if present[wubrg[i]] {
			sb.WriteByte(wubrg[i])
		}
	}
	return sb.String()
}

// ColorName returns the traditional name for a normalized identity string,
// or the string itself when no name is known.
func ColorName(identity string) string {
	if name, ok := colorNames[identity]; ok {
		return name
	}
	return identity
}

// ColorLetters looks up the identity letters for a color name, matching
// case-insensitively. The second return is false for non-color words.
func ColorLetters(name string) (string, bool) {
	letters, ok := lettersByName[strings.ToLower(name)]
	return letters, ok
}

// IdentityOfCards returns the combined color identity of the given cards in
// canonical order.
func IdentityOfCards(cards []*Card) string {
	var letters []string
	for _, c := range cards {
		letters = append(letters, c.ColorIdentity...)
	}
	return NormalizeColors(letters)
}

// IdentityContains reports whether every letter of sub appears in identity.
// Both arguments must be normalized identity strings.
func IdentityContains(identity, sub string) bool {
	for i := 0; i < len(sub); i++ {
		if strings.IndexByte(identity, sub[i]) < 0 {
			return false
		}
	}
	return true
}
