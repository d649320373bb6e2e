package deck_test

import (
	"errors"
	"testing"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/cards/cardstest"
	"github.com/z33kz33k/mtgcards/internal/deck"
)

func playset(name string, count int) []*cards.Card {
	card := cardstest.MustFind(name)
	list := make([]*cards.Card, count)
	for i := range list {
		list[i] = card
	}
	return list
}

func assertInvalid(t *testing.T, err error) *deck.InvalidDeckError {
	t.Helper()
	if err == nil {
		t.Fatal("expected construction to fail")
	}
	var invalid *deck.InvalidDeckError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidDeckError", err)
	}
	return invalid
}

func TestNewValidDeck(t *testing.T) {
	d, err := deck.New(playset("Island", 60), playset("Negate", 2), nil, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := len(d.Mainboard()); got != 60 {
		t.Errorf("mainboard size = %d, want 60", got)
	}
	if got := len(d.Sideboard()); got != 2 {
		t.Errorf("sideboard size = %d, want 2", got)
	}
	if d.MaxPlaysetCount() != 4 {
		t.Errorf("MaxPlaysetCount() = %d, want 4", d.MaxPlaysetCount())
	}
}

func TestNewMainboardTooSmall(t *testing.T) {
	_, err := deck.New(playset("Island", 59), nil, nil, nil, nil)
	assertInvalid(t, err)
}

func TestNewCommanderCountsTowardSize(t *testing.T) {
	commander := cardstest.MustFind("Anax, Hardened in the Forge")
	if _, err := deck.New(playset("Mountain", 59), nil, commander, nil, nil); err != nil {
		t.Fatalf("New() error = %v; 59 cards + commander should be legal", err)
	}
}

func TestNewCopyLimitViolations(t *testing.T) {
	tests := []struct {
		name      string
		mainboard []*cards.Card
		sideboard []*cards.Card
		wantErr   bool
	}{
		{
			name:      "basic lands exempt",
			mainboard: playset("Island", 60),
		},
		{
			name:      "four copies legal",
			mainboard: append(playset("Negate", 4), playset("Island", 56)...),
		},
		{
			name:      "eight copies in mainboard",
			mainboard: append(playset("Negate", 8), playset("Island", 52)...),
			wantErr:   true,
		},
		{
			name:      "combined mainboard and sideboard over limit",
			mainboard: append(playset("Negate", 4), playset("Island", 56)...),
			sideboard: playset("Negate", 1),
			wantErr:   true,
		},
		{
			name:      "any-number override",
			mainboard: append(playset("Dragon's Approach", 30), playset("Mountain", 30)...),
		},
		{
			name:      "seven dwarves at seven",
			mainboard: append(playset("Seven Dwarves", 7), playset("Mountain", 53)...),
		},
		{
			name:      "seven dwarves at eight",
			mainboard: append(playset("Seven Dwarves", 8), playset("Mountain", 52)...),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deck.New(tt.mainboard, tt.sideboard, nil, nil, nil)
			if tt.wantErr {
				assertInvalid(t, err)
			} else if err != nil {
				t.Errorf("New() error = %v", err)
			}
		})
	}
}

func TestNewSideboardTooBig(t *testing.T) {
	sideboard := append(playset("Island", 12), playset("Mountain", 4)...)
	_, err := deck.New(playset("Island", 60), sideboard, nil, nil, nil)
	assertInvalid(t, err)
}

func TestNewCommanderSingletonLimit(t *testing.T) {
	commander := cardstest.MustFind("Anax, Hardened in the Forge")
	mainboard := append(playset("Shock", 2), playset("Mountain", 58)...)
	_, err := deck.New(mainboard, nil, commander, nil, nil)
	assertInvalid(t, err)
}

func TestNewCommanderColorIdentityViolation(t *testing.T) {
	commander := cardstest.MustFind("Anax, Hardened in the Forge") // mono-red
	mainboard := append(playset("Negate", 1), playset("Mountain", 59)...)
	_, err := deck.New(mainboard, nil, commander, nil, nil)
	invalid := assertInvalid(t, err)
	if invalid.Reason == "" {
		t.Error("color identity violation carries no reason")
	}
}

func TestNewCompanionInjectedIntoSideboard(t *testing.T) {
	companion := cardstest.MustFind("Kaheera, the Orphanguard")

	d, err := deck.New(playset("Island", 60), playset("Negate", 2), nil, companion, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := len(d.Sideboard()); got != 3 {
		t.Errorf("sideboard size = %d, want 3 (companion injected)", got)
	}
	if d.Companion() == nil || d.Companion().ID != companion.ID {
		t.Error("companion accessor lost")
	}

	// companion pushes a full sideboard over the cap
	full := append(playset("Negate", 4), playset("Shock", 4)...)
	full = append(full, playset("Island", 7)...)
	if _, err := deck.New(playset("Island", 60), full, nil, companion, nil); err == nil {
		t.Error("companion on a full sideboard should violate the cap")
	}
}

func TestGroupPlaysets(t *testing.T) {
	list := append(playset("Negate", 4), playset("Island", 2)...)

	playsets := deck.GroupPlaysets(list)
	if len(playsets) != 2 {
		t.Fatalf("playset count = %d, want 2", len(playsets))
	}
	if playsets[0].Card.Name != "Negate" || playsets[0].Count != 4 {
		t.Errorf("first playset = %s x%d, want Negate x4", playsets[0].Card.Name, playsets[0].Count)
	}
	if playsets[1].Card.Name != "Island" || playsets[1].Count != 2 {
		t.Errorf("second playset = %s x%d, want Island x2", playsets[1].Card.Name, playsets[1].Count)
	}
}

func TestMetadataAccessors(t *testing.T) {
	d, err := deck.New(playset("Island", 60), nil, nil, nil, deck.Metadata{
		"name":   "Mono Blue Tempo",
		"source": "www.mtggoldfish.com",
		"format": "standard",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if d.Name() != "Mono Blue Tempo" || d.Source() != "www.mtggoldfish.com" || d.Format() != "standard" {
		t.Errorf("metadata accessors = %q/%q/%q", d.Name(), d.Source(), d.Format())
	}

	d.UpdateMetadata(deck.Metadata{"views": 123})
	if d.Metadata()["views"] != 123 {
		t.Error("UpdateMetadata did not merge")
	}
}
