package export

import (
	"fmt"
	"strings"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

// sourceNicknames maps known deck sources to filename-friendly nicknames.
var sourceNicknames = map[string]string{
	"www.mtggoldfish.com": "Goldfish",
	"www.moxfield.com":    "Moxfield",
	"archidekt.com":       "Archidekt",
	"deckstats.net":       "Deckstats",
	"arena.decklist":      "Arena",
}

// fmtNicknames maps format designations to filename-friendly nicknames.
var fmtNicknames = map[string]string{
	"alchemy":         "Alch",
	"brawl":           "Brwl",
	"commander":       "Cmdr",
	"duel":            "Duel",
	"explorer":        "Expl",
	"future":          "Ftr",
	"gladiator":       "Gld",
	"historic":        "Hst",
	"legacy":          "Lgc",
	"modern":          "Mdn",
	"oathbreaker":     "Obr",
	"oldschool":       "Old",
	"pauper":          "Ppr",
	"paupercommander": "PprCmd",
	"penny":           "Pnn",
	"pioneer":         "Pnr",
	"predh":           "Pdh",
	"premodern":       "PreMdn",
	"standard":        "Std",
	"standardbrawl":   "StdBrl",
	"timeless":        "Tml",
	"vintage":         "Vnt",
}

// normalizeName rewrites a free-form deck name into Title_Cased_Underscore
// form suitable for a filename.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	parts := strings.Split(name, "_")
	for i, p := range parts {
		parts[i] = title(p)
	}
	name = strings.Join(parts, "_")
	name = strings.ReplaceAll(name, "Five_Color_", "5C_")
	name = strings.ReplaceAll(name, "Four_Color_", "4C_")
	name = strings.ReplaceAll(name, "5c_", "5C_")
	name = strings.ReplaceAll(name, "4c_", "4C_")
	return name
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// coreName derives a name stem from the deck's color, theme and archetype,
// used when the deck carries no name of its own.
func coreName(d *deck.Deck) string {
	var sb strings.Builder
	color := d.Color()
	switch len(color) {
	case 1:
		sb.WriteString("Mono_" + title(cards.ColorName(color)) + "_")
	case 4:
		sb.WriteString("4C_")
	case 5:
		sb.WriteString("5C_")
	default:
		sb.WriteString(title(cards.ColorName(color)) + "_")
	}
	if theme := d.Theme(); theme != "" {
		sb.WriteString(theme + "_")
	}
	sb.WriteString(title(string(d.Archetype())))
	return sb.String()
}

// buildName assembles the export name from source, format and metadata
// nicknames, falling back to color/theme/archetype when the deck is unnamed.
func buildName(d *deck.Deck) string {
	var sb strings.Builder
	if source, ok := sourceNicknames[d.Source()]; ok {
		sb.WriteString(source + "_")
	}
	if format := strings.ToLower(d.Format()); format != "" {
		if nick, ok := fmtNicknames[format]; ok {
			sb.WriteString(nick + "_")
		}
	}
	meta := d.Metadata()
	for key := range meta {
		if strings.Contains(key, "meta") {
			sb.WriteString("Meta_")
			if place, ok := meta["meta_place"]; ok {
				p := fmt.Sprintf("%v", place)
				if len(p) < 2 {
					p = "0" + p
				}
				sb.WriteString("#" + p + "_")
			}
			break
		}
	}
	if name := d.Name(); name != "" {
		sb.WriteString(normalizeName(name))
	} else {
		sb.WriteString(coreName(d))
	}
	return strings.TrimSuffix(sb.String(), "_")
}
