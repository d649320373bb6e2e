package arena

import (
	"testing"

	"github.com/z33kz33k/mtgcards/internal/cards/cardstest"
)

func TestParsePlaysetLine(t *testing.T) {
	tests := []struct {
		line     string
		quantity int
		name     string
		setCode  string
		number   string
		extended bool
	}{
		{"4 Commit /// Memory (AKR) 54", 4, "Commit // Memory", "akr", "54", true},
		{"4 Commit /// Memory", 4, "Commit // Memory", "", "", false},
		{"4x Shock", 4, "Shock", "", "", false},
		{"2 Negate (FDN) 59", 2, "Negate", "fdn", "59", true},
		{"1 Anax, Hardened in the Forge (THB) 125", 1, "Anax, Hardened in the Forge", "thb", "125", true},
		{"12 Island", 12, "Island", "", "", false},
		{"4\tIsland", 4, "Island", "", "", false},
		{"3\tShock (FDN) 99", 3, "Shock", "fdn", "99", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			pl, err := ParsePlaysetLine(tt.line)
			if err != nil {
				t.Fatalf("ParsePlaysetLine(%q) error = %v", tt.line, err)
			}
			if pl.Quantity != tt.quantity {
				t.Errorf("Quantity = %d, want %d", pl.Quantity, tt.quantity)
			}
			if pl.Name != tt.name {
				t.Errorf("Name = %q, want %q", pl.Name, tt.name)
			}
			if pl.SetCode != tt.setCode {
				t.Errorf("SetCode = %q, want %q", pl.SetCode, tt.setCode)
			}
			if pl.CollectorNumber != tt.number {
				t.Errorf("CollectorNumber = %q, want %q", pl.CollectorNumber, tt.number)
			}
			if pl.Extended != tt.extended {
				t.Errorf("Extended = %v, want %v", pl.Extended, tt.extended)
			}
		})
	}
}

func TestParsePlaysetLineRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"Sideboard",
		"island",
		"4",
		"about 4 cards",
	} {
		if _, err := ParsePlaysetLine(line); err == nil {
			t.Errorf("ParsePlaysetLine(%q) = nil error, want ParseLineError", line)
		}
	}
}

func TestToPlaysetExactPrinting(t *testing.T) {
	pl, err := ParsePlaysetLine("4 Shock (M21) 159")
	if err != nil {
		t.Fatal(err)
	}
	playset := pl.ToPlayset(cardstest.Resolver(), "standard")
	if len(playset) != 4 {
		t.Fatalf("len = %d, want 4", len(playset))
	}
	for _, c := range playset {
		if c.ID != "shock-m21" {
			t.Errorf("printing = %s, want shock-m21", c.ID)
		}
	}
}

func TestToPlaysetUnknownSetFallsBackToName(t *testing.T) {
	// Arena's Alchemy set codes differ from canonical codes; resolution must
	// degrade to a name lookup in the format pool.
	pl, err := ParsePlaysetLine("4 Shock (Y24) 99")
	if err != nil {
		t.Fatal(err)
	}
	playset := pl.ToPlayset(cardstest.Resolver(), "standard")
	if len(playset) != 4 {
		t.Fatalf("len = %d, want 4", len(playset))
	}
	if playset[0].Name != "Shock" {
		t.Errorf("resolved %q, want Shock", playset[0].Name)
	}
}

func TestToPlaysetUnresolvableIsEmpty(t *testing.T) {
	pl, err := ParsePlaysetLine("4 Storm Crow")
	if err != nil {
		t.Fatal(err)
	}
	if playset := pl.ToPlayset(cardstest.Resolver(), "standard"); len(playset) != 0 {
		t.Errorf("len = %d, want 0", len(playset))
	}
}
