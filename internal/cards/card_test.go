package cards

import (
	"math"
	"testing"
)

func TestCardTypePredicates(t *testing.T) {
	tests := []struct {
		name     string
		typeLine string
		check    func(*Card) bool
		want     bool
	}{
		{"creature", "Creature — Bear", (*Card).IsCreature, true},
		{"legendary creature", "Legendary Creature — Demigod", (*Card).IsCreature, true},
		{"instant is not creature", "Instant", (*Card).IsCreature, false},
		{"basic land", "Basic Land — Island", (*Card).IsBasicLand, true},
		{"nonbasic land", "Land — Gate", (*Card).IsBasicLand, false},
		{"nonbasic land is land", "Land — Gate", (*Card).IsLand, true},
		{"subtype does not count", "Creature — Land Beast", (*Card).IsLand, false},
		{"artifact creature", "Artifact Creature — Golem", (*Card).IsArtifact, true},
		{"battle", "Battle — Siege", (*Card).IsBattle, true},
		{"split card either face", "Instant // Sorcery", (*Card).IsSorcery, true},
		{"planeswalker", "Legendary Planeswalker — Jace", (*Card).IsPlaneswalker, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Card{TypeLine: tt.typeLine}
			if got := tt.check(c); got != tt.want {
				t.Errorf("type line %q: got %v, want %v", tt.typeLine, got, tt.want)
			}
		})
	}
}

func TestCardMainName(t *testing.T) {
	c := &Card{Name: "Commit // Memory"}
	if got := c.MainName(); got != "Commit" {
		t.Errorf("MainName() = %q, want %q", got, "Commit")
	}
	if !c.IsMultiface() {
		t.Error("IsMultiface() = false for split card")
	}

	plain := &Card{Name: "Negate"}
	if got := plain.MainName(); got != "Negate" {
		t.Errorf("MainName() = %q, want %q", got, "Negate")
	}
	if plain.IsMultiface() {
		t.Error("IsMultiface() = true for single-face card")
	}
}

func TestAllowedMultiples(t *testing.T) {
	tests := []struct {
		name   string
		oracle string
		want   Multiples
	}{
		{"no override", "Counter target noncreature spell.", MultiplesDefault},
		{"empty text", "", MultiplesDefault},
		{
			"unlimited",
			"A deck can have any number of cards named Dragon's Approach.",
			MultiplesUnlimited,
		},
		{"up to seven", "A deck can have up to seven cards named Seven Dwarves.", 7},
		{"up to one", "A deck can have up to one card named Grand Architect.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Card{OracleText: tt.oracle}
			if got := c.AllowedMultiples(); got != tt.want {
				t.Errorf("AllowedMultiples() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRarityWeight(t *testing.T) {
	tests := []struct {
		rarity Rarity
		want   float64
	}{
		{RarityMythic, 120.0},
		{RarityBonus, 120.0},
		{RarityRare, 17.142857},
		{RarityUncommon, 5.0},
		{RarityCommon, 1.363636},
		{RaritySpecial, 1.363636},
	}

	for _, tt := range tests {
		if got := tt.rarity.Weight(); math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("%s.Weight() = %f, want %f", tt.rarity, got, tt.want)
		}
	}
}

func TestCollectorNumberInt(t *testing.T) {
	if got := (&Card{CollectorNumber: "54"}).CollectorNumberInt(); got != 54 {
		t.Errorf("CollectorNumberInt() = %d, want 54", got)
	}
	if got := (&Card{CollectorNumber: "54a"}).CollectorNumberInt(); got != -1 {
		t.Errorf("CollectorNumberInt() = %d, want -1 for lettered number", got)
	}
}

func TestNameParts(t *testing.T) {
	c := &Card{Name: "Commit // Memory"}
	parts := c.NameParts()
	want := map[string]bool{"commit": true, "memory": true}
	if len(parts) != len(want) {
		t.Fatalf("NameParts() = %v, want 2 parts", parts)
	}
	for _, p := range parts {
		if !want[p] {
			t.Errorf("unexpected name part %q", p)
		}
	}
}
