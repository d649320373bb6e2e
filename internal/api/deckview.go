package api

import (
	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

// playsetView is one unique card with its copy count.
type playsetView struct {
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	SetCode         string `json:"set"`
	CollectorNumber string `json:"collector_number"`
}

// deckView is the JSON rendering of a parsed deck.
type deckView struct {
	Name      string `json:"name,omitempty"`
	Source    string `json:"source,omitempty"`
	Format    string `json:"format,omitempty"`
	Color     string `json:"color"`
	ColorName string `json:"color_name"`
	Theme     string `json:"theme,omitempty"`
	Archetype string `json:"archetype"`

	Mainboard []playsetView `json:"mainboard"`
	Sideboard []playsetView `json:"sideboard,omitempty"`
	Commander *playsetView  `json:"commander,omitempty"`
	Companion *playsetView  `json:"companion,omitempty"`

	AvgCMC    float64     `json:"avg_cmc"`
	PriceUSD  float64     `json:"price_usd"`
	ManaCurve map[int]int `json:"mana_curve"`
}

func viewPlaysets(list []*cards.Card) []playsetView {
	playsets := deck.GroupPlaysets(list)
	out := make([]playsetView, len(playsets))
	for i, p := range playsets {
		out[i] = playsetView{
			Name:            p.Card.Name,
			Quantity:        p.Count,
			SetCode:         p.Card.SetCode,
			CollectorNumber: p.Card.CollectorNumber,
		}
	}
	return out
}

func viewCard(c *cards.Card) *playsetView {
	if c == nil {
		return nil
	}
	return &playsetView{
		Name:            c.Name,
		Quantity:        1,
		SetCode:         c.SetCode,
		CollectorNumber: c.CollectorNumber,
	}
}

func newDeckView(d *deck.Deck) *deckView {
	color := d.Color()
	return &deckView{
		Name:      d.Name(),
		Source:    d.Source(),
		Format:    d.Format(),
		Color:     color,
		ColorName: cards.ColorName(color),
		Theme:     d.Theme(),
		Archetype: string(d.Archetype()),
		Mainboard: viewPlaysets(d.Mainboard()),
		Sideboard: viewPlaysets(d.Sideboard()),
		Commander: viewCard(d.Commander()),
		Companion: viewCard(d.Companion()),
		AvgCMC:    d.AvgCMC(),
		PriceUSD:  d.Price(),
		ManaCurve: d.ManaCurve(),
	}
}
