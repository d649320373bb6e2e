package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/z33kz33k/mtgcards/internal/cards/cardstest"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(DefaultConfig(filepath.Join(t.TempDir(), "cards.db")))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCardStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewCardStore(openTestDB(t))
	fixtures := cardstest.Fixtures()

	if err := store.SaveCards(ctx, fixtures); err != nil {
		t.Fatalf("SaveCards() error = %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(fixtures) {
		t.Errorf("Count() = %d, want %d", n, len(fixtures))
	}

	loaded, err := store.LoadCards(ctx)
	if err != nil {
		t.Fatalf("LoadCards() error = %v", err)
	}
	byID := make(map[string]bool, len(loaded))
	for _, c := range loaded {
		byID[c.ID] = true
	}
	for _, c := range fixtures {
		if !byID[c.ID] {
			t.Errorf("card %s lost in round trip", c.ID)
		}
	}

	// Spot-check that the payload decodes with full fidelity.
	for _, c := range loaded {
		if c.ID != "anax-thb" {
			continue
		}
		if c.Name != "Anax, Hardened in the Forge" || c.CMC != 3 || !c.IsLegalIn("standard") {
			t.Errorf("card payload degraded: %+v", c)
		}
	}
}

func TestCardStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewCardStore(openTestDB(t))
	fixtures := cardstest.Fixtures()

	if err := store.SaveCards(ctx, fixtures); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveCards(ctx, fixtures[:3]); err != nil {
		t.Fatal(err)
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3 after replace", n)
	}
}

func TestLastSync(t *testing.T) {
	ctx := context.Background()
	store := NewCardStore(openTestDB(t))

	when, err := store.LastSync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !when.IsZero() {
		t.Errorf("LastSync() = %v before any sync", when)
	}

	if err := store.SaveCards(ctx, cardstest.Fixtures()); err != nil {
		t.Fatal(err)
	}
	when, err = store.LastSync(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if when.IsZero() {
		t.Error("LastSync() still zero after sync")
	}
}
