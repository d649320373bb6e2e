package cards

import "testing"

func legal(formats ...string) map[string]string {
	m := make(map[string]string, len(formats))
	for _, f := range formats {
		m[f] = "legal"
	}
	return m
}

func testPool() *Pool {
	return NewPool([]*Card{
		{
			ID: "shock-m21", Name: "Shock", SetCode: "m21", CollectorNumber: "159",
			Legalities: legal("standard", "modern"),
		},
		{
			ID: "shock-fdn", Name: "Shock", SetCode: "fdn", CollectorNumber: "99",
			Legalities: legal("standard", "modern"),
		},
		{
			ID: "shock-fdn-promo", Name: "Shock", SetCode: "fdn", CollectorNumber: "99p",
			Legalities: legal("modern"),
		},
		{
			ID: "commit-akr", Name: "Commit // Memory", SetCode: "akr", CollectorNumber: "54",
			Legalities: legal("historic"),
		},
		{
			ID: "lorien-ltr", Name: "Lórien Revealed", SetCode: "ltr", CollectorNumber: "60",
			Legalities: legal("modern"),
		},
	})
}

func TestFindByNameTieBreak(t *testing.T) {
	pool := testPool()

	// three printings of Shock: the alphabetically first set wins, and
	// within it the numeric collector number beats the lettered one
	card := pool.FindByName("Shock")
	if card == nil {
		t.Fatal("FindByName(Shock) = nil")
	}
	if card.ID != "shock-fdn" {
		t.Errorf("FindByName(Shock) = %s, want shock-fdn", card.ID)
	}
}

func TestFindByNameMainFace(t *testing.T) {
	pool := testPool()

	if card := pool.FindByName("Commit // Memory"); card == nil || card.ID != "commit-akr" {
		t.Errorf("full-name lookup failed: %v", card)
	}
	if card := pool.FindByName("Commit"); card == nil || card.ID != "commit-akr" {
		t.Errorf("main-face lookup failed: %v", card)
	}
	if card := pool.FindByName("Memory"); card != nil {
		t.Errorf("second face should not resolve, got %v", card.ID)
	}
}

func TestFindByNameFoldsDiacritics(t *testing.T) {
	pool := testPool()

	if card := pool.FindByName("Lorien Revealed"); card == nil || card.ID != "lorien-ltr" {
		t.Errorf("unaccented lookup failed: %v", card)
	}
	if card := pool.FindByName("lórien revealed"); card == nil {
		t.Error("case-insensitive accented lookup failed")
	}
}

func TestFindByCollectorNumber(t *testing.T) {
	pool := testPool()

	if card := pool.FindByCollectorNumber("159", "M21"); card == nil || card.ID != "shock-m21" {
		t.Errorf("FindByCollectorNumber(159, M21) = %v", card)
	}
	if card := pool.FindByCollectorNumber("1", "m21"); card != nil {
		t.Errorf("miss within known set should be nil, got %v", card.ID)
	}
	if pool.HasSet("y24") {
		t.Error("HasSet(y24) = true for unknown set")
	}
	if !pool.HasSet("akr") {
		t.Error("HasSet(akr) = false")
	}
}

func TestFormatCards(t *testing.T) {
	pool := testPool()

	standard := pool.FormatCards("standard")
	if standard.Len() != 2 {
		t.Errorf("standard pool size = %d, want 2", standard.Len())
	}
	if card := standard.FindByName("Commit // Memory"); card != nil {
		t.Error("historic-only card leaked into standard pool")
	}
}

func TestSetCards(t *testing.T) {
	pool := testPool()

	fdn := pool.SetCards("fdn")
	if fdn.Len() != 2 {
		t.Errorf("fdn pool size = %d, want 2", fdn.Len())
	}
}

func TestFormats(t *testing.T) {
	formats := testPool().Formats()
	want := []string{"historic", "modern", "standard"}
	if len(formats) != len(want) {
		t.Fatalf("Formats() = %v, want %v", formats, want)
	}
	for i := range want {
		if formats[i] != want[i] {
			t.Errorf("Formats()[%d] = %s, want %s", i, formats[i], want[i])
		}
	}
}
