package deck_test

import (
	"math"
	"testing"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

func mustDeck(t *testing.T, mainboard []*cards.Card, name string) *deck.Deck {
	t.Helper()
	var metadata deck.Metadata
	if name != "" {
		metadata = deck.Metadata{"name": name}
	}
	d, err := deck.New(mainboard, nil, nil, nil, metadata)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d
}

func TestColorPrefersNameWord(t *testing.T) {
	d := mustDeck(t, playset("Island", 60), "Izzet Phoenix")
	if got := d.Color(); got != "UR" {
		t.Errorf("Color() = %q, want UR from name", got)
	}

	unnamed := mustDeck(t, playset("Island", 60), "")
	if got := unnamed.Color(); got != "U" {
		t.Errorf("Color() = %q, want computed identity U", got)
	}
}

func TestTheme(t *testing.T) {
	d := mustDeck(t, playset("Island", 60), "Dimir Mill")
	if got := d.Theme(); got != "Mill" {
		t.Errorf("Theme() = %q, want Mill", got)
	}

	plain := mustDeck(t, playset("Island", 60), "Untitled 17")
	if got := plain.Theme(); got != "" {
		t.Errorf("Theme() = %q, want empty", got)
	}
}

func TestArchetypeFromName(t *testing.T) {
	d := mustDeck(t, playset("Island", 60), "Mono Red Aggro")
	if got := d.Archetype(); got != deck.Aggro {
		t.Errorf("Archetype() = %s, want aggro", got)
	}
}

func TestArchetypeComboDetection(t *testing.T) {
	mainboard := append(playset("Commit // Memory", 4), playset("Island", 56)...)
	d := mustDeck(t, mainboard, "Memory Lock")
	if got := d.Archetype(); got != deck.Combo {
		t.Errorf("Archetype() = %s, want combo (name token matches card)", got)
	}

	// a themed name is a tribe, not a combo piece
	themed := append(playset("Seven Dwarves", 7), playset("Mountain", 53)...)
	td := mustDeck(t, themed, "Dwarves Dwarves")
	if got := td.Archetype(); got == deck.Combo {
		t.Error("themed deck classified as combo")
	}
}

func TestArchetypeNumericFallback(t *testing.T) {
	// low curve, no name: aggro
	aggro := mustDeck(t, append(playset("Shock", 4), playset("Mountain", 56)...), "")
	if got := aggro.Archetype(); got != deck.Aggro {
		t.Errorf("Archetype() = %s, want aggro (avg CMC below threshold)", got)
	}

	// high curve, no creatures: control
	spells := append(playset("Negate", 4), playset("Commit // Memory", 4)...)
	control := mustDeck(t, append(spells, playset("Island", 52)...), "")
	if got := control.Archetype(); got != deck.Control {
		t.Errorf("Archetype() = %s, want control", got)
	}

	// high curve, creature-dense: midrange
	creatures := append(playset("Grizzly Bears", 4), playset("Anax, Hardened in the Forge", 4)...)
	creatures = append(creatures, playset("Seven Dwarves", 7)...)
	creatures = append(creatures, playset("Colossal Dreadmaw", 4)...)
	midrange := mustDeck(t, append(creatures, playset("Island", 41)...), "")
	if got := midrange.Archetype(); got != deck.Midrange {
		t.Errorf("Archetype() = %s, want midrange", got)
	}
}

func TestDerivedStats(t *testing.T) {
	mainboard := append(playset("Negate", 4), playset("Island", 56)...)
	d := mustDeck(t, mainboard, "")

	if got := d.AvgCMC(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("AvgCMC() = %f, want 2.0 (lands excluded)", got)
	}
	if got := len(d.Instants()); got != 4 {
		t.Errorf("Instants() = %d, want 4", got)
	}
	if got := len(d.Lands()); got != 56 {
		t.Errorf("Lands() = %d, want 56", got)
	}
	if got := len(d.Commons()); got != 60 {
		t.Errorf("Commons() = %d, want 60", got)
	}
	if got := d.AvgRarityWeight(); math.Abs(got-cards.RarityCommon.Weight()) > 1e-9 {
		t.Errorf("AvgRarityWeight() = %f", got)
	}
	if got := d.Price(); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("Price() = %f, want 0.4", got)
	}
	if got := d.Sets(); len(got) != 1 || got[0] != "fdn" {
		t.Errorf("Sets() = %v, want [fdn]", got)
	}

	curve := d.ManaCurve()
	if curve[2] != 4 {
		t.Errorf("ManaCurve()[2] = %d, want 4", curve[2])
	}
	if _, hasLands := curve[0]; hasLands {
		t.Error("lands leaked into the mana curve")
	}
}
