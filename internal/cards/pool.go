package cards

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameFolder strips diacritics so scraped names like "Lorien Revealed" match
// the accented canonical spelling.
var nameFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldName(name string) string {
	folded, _, err := transform.String(nameFolder, name)
	if err != nil {
		return strings.ToLower(name)
	}
	return strings.ToLower(folded)
}

// Pool is an indexed, read-only collection of cards. All lookups are exact
// and return nil on a miss; absence of a card is an expected, common case.
type Pool struct {
	cards []*Card

	byID       map[string]*Card
	byName     map[string][]*Card // folded full name
	byMainName map[string][]*Card // folded first-face name
	byPrinting map[string]*Card   // "set|collector number"
	bySet      map[string][]*Card
}

// NewPool builds a pool with its lookup indexes from the given cards.
// Same-named printings are ordered by set code, then numeric collector
// number, so FindByName has a stable, documented tie-break: the lowest
// collector number within the alphabetically first set.
func NewPool(cards []*Card) *Pool {
	p := &Pool{
		cards:      cards,
		byID:       make(map[string]*Card, len(cards)),
		byName:     make(map[string][]*Card),
		byMainName: make(map[string][]*Card),
		byPrinting: make(map[string]*Card),
		bySet:      make(map[string][]*Card),
	}
	for _, c := range cards {
		p.byID[c.ID] = c
		name := foldName(c.Name)
		p.byName[name] = append(p.byName[name], c)
		if main := foldName(c.MainName()); main != name {
			p.byMainName[main] = append(p.byMainName[main], c)
		}
		set := strings.ToLower(c.SetCode)
		p.bySet[set] = append(p.bySet[set], c)
		key := set + "|" + c.CollectorNumber
		if _, taken := p.byPrinting[key]; !taken {
			p.byPrinting[key] = c
		}
	}
	for _, printings := range p.byName {
		sortPrintings(printings)
	}
	for _, printings := range p.byMainName {
		sortPrintings(printings)
	}
	return p
}

func sortPrintings(printings []*Card) {
	sort.SliceStable(printings, func(i, j int) bool {
		a, b := printings[i], printings[j]
		if a.SetCode != b.SetCode {
			return a.SetCode < b.SetCode
		}
		an, bn := a.CollectorNumberInt(), b.CollectorNumberInt()
		if an >= 0 && bn >= 0 && an != bn {
			return an < bn
		}
		if (an >= 0) != (bn >= 0) {
			return an >= 0 // numeric collector numbers ahead of lettered ones
		}
		return a.CollectorNumber < b.CollectorNumber
	})
}

// Len returns the number of cards in the pool.
func (p *Pool) Len() int { return len(p.cards) }

// Cards returns the pool's backing slice. Callers must not mutate it.
func (p *Pool) Cards() []*Card { return p.cards }

// FindByID returns the card with the given Scryfall ID.
func (p *Pool) FindByID(id string) *Card { return p.byID[id] }

// FindByName returns the first printing matching the given name, trying the
// full (multiface) name before first-face names.
func (p *Pool) FindByName(name string) *Card {
	folded := foldName(name)
	if printings := p.byName[folded]; len(printings) > 0 {
		return printings[0]
	}
	if printings := p.byMainName[folded]; len(printings) > 0 {
		return printings[0]
	}
	return nil
}

// FindByCollectorNumber returns the card at the given collector number in the
// given set. HasSet distinguishes an unknown set code from a miss within a
// known set.
func (p *Pool) FindByCollectorNumber(number, setCode string) *Card {
	return p.byPrinting[strings.ToLower(setCode)+"|"+number]
}

// HasSet reports whether the pool contains any card from the given set.
func (p *Pool) HasSet(setCode string) bool {
	_, ok := p.bySet[strings.ToLower(setCode)]
	return ok
}

// SetCards returns a sub-pool of the cards in the given set.
func (p *Pool) SetCards(setCode string) *Pool {
	return NewPool(p.bySet[strings.ToLower(setCode)])
}

// FormatCards returns a sub-pool of the cards legal in the given format.
func (p *Pool) FormatCards(format string) *Pool {
	var legal []*Card
	for _, c := range p.cards {
		if c.IsLegalIn(format) {
			legal = append(legal, c)
		}
	}
	return NewPool(legal)
}

// Formats returns the sorted format designations any card in the pool is
// legal in.
func (p *Pool) Formats() []string {
	set := make(map[string]bool)
	for _, c := range p.cards {
		for _, f := range c.LegalFormats() {
			set[f] = true
		}
	}
	formats := make([]string, 0, len(set))
	for f := range set {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// SetCodes returns the sorted set codes present in the pool.
func (p *Pool) SetCodes() []string {
	codes := make([]string, 0, len(p.bySet))
	for code := range p.bySet {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
