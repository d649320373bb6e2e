package charts

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/cards/cardstest"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

func chartDeck(t *testing.T) *deck.Deck {
	t.Helper()
	var mainboard []*cards.Card
	island := cardstest.MustFind("Island")
	for i := 0; i < 52; i++ {
		mainboard = append(mainboard, island)
	}
	negate := cardstest.MustFind("Negate")
	shock := cardstest.MustFind("Shock")
	for i := 0; i < 4; i++ {
		mainboard = append(mainboard, negate, shock)
	}
	d, err := deck.New(mainboard, nil, nil, nil, deck.Metadata{"name": "Curve Test"})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRenderManaCurve(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderManaCurve(chartDeck(t), DefaultChartConfig(), &buf); err != nil {
		t.Fatalf("RenderManaCurve() error = %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Mana Curve") {
		t.Error("default title missing")
	}
	if !strings.Contains(html, "Curve Test") {
		t.Error("deck name subtitle missing")
	}
}

func TestRenderManaCurveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.html")
	if err := RenderManaCurveFile(chartDeck(t), DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderManaCurveFile() error = %v", err)
	}
}
