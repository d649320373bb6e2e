package arena

import "strings"

// Section header tokens of the Arena decklist format.
const (
	deckHeader      = "Deck"
	commanderHeader = "Commander"
	companionHeader = "Companion"
	sideboardHeader = "Sideboard"
)

// IsArenaLine reports whether the line is recognized Arena decklist content:
// one of the four section headers or a playset line.
func IsArenaLine(line string) bool {
	switch line {
	case deckHeader, commanderHeader, companionHeader, sideboardHeader:
		return true
	}
	return IsPlaysetLine(line)
}

func isEmpty(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ArenaLines filters raw input down to recognized Arena lines. A blank line
// strictly between two recognized lines, where the following line is a card
// line rather than an explicit Sideboard header, is rewritten to an implicit
// Sideboard header: free-text decklists often separate the sideboard with a
// blank line instead of a label.
func ArenaLines(lines []string) []string {
	var out []string
	for i, line := range lines {
		switch {
		case IsArenaLine(line):
			out = append(out, line)
		case isEmpty(line) && i > 0 && i < len(lines)-1 &&
			IsArenaLine(lines[i-1]) && IsArenaLine(lines[i+1]) &&
			lines[i+1] != sideboardHeader:
			out = append(out, sideboardHeader)
		}
	}
	return out
}
