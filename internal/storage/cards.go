package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/z33kz33k/mtgcards/internal/cards"
)

// cardDataset is the sync_log key for the bulk card pool.
const cardDataset = "default_cards"

// CardStore reads and writes the cached card pool.
type CardStore struct {
	db *DB
}

// NewCardStore creates a card store over the database.
func NewCardStore(db *DB) *CardStore {
	return &CardStore{db: db}
}

// SaveCards replaces the cached pool with the given cards in one
// transaction and records the sync time.
func (s *CardStore) SaveCards(ctx context.Context, list []*cards.Card) error {
	tx, err := s.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cards"); err != nil {
		return fmt.Errorf("failed to clear cards: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cards (id, oracle_id, name, set_code, collector_number, payload)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, c := range list {
		payload, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to encode card %s: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.OracleID, c.Name, c.SetCode, c.CollectorNumber, payload); err != nil {
			return fmt.Errorf("failed to insert card %s: %w", c.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sync_log (dataset, synced_at, card_count) VALUES (?, ?, ?)
		ON CONFLICT (dataset) DO UPDATE SET synced_at = excluded.synced_at,
			card_count = excluded.card_count`,
		cardDataset, time.Now().UTC().Format(time.RFC3339), len(list)); err != nil {
		return fmt.Errorf("failed to record sync: %w", err)
	}
	return tx.Commit()
}

// LoadCards returns the whole cached pool.
func (s *CardStore) LoadCards(ctx context.Context) ([]*cards.Card, error) {
	rows, err := s.db.conn.QueryContext(ctx, "SELECT payload FROM cards")
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*cards.Card
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		card := &cards.Card{}
		if err := json.Unmarshal(payload, card); err != nil {
			return nil, fmt.Errorf("failed to decode card: %w", err)
		}
		out = append(out, card)
	}
	return out, rows.Err()
}

// Count returns the number of cached cards.
func (s *CardStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards").Scan(&n)
	return n, err
}

// LastSync returns the time the pool was last synced, or the zero time when
// it never was.
func (s *CardStore) LastSync(ctx context.Context) (time.Time, error) {
	var raw string
	err := s.db.conn.QueryRowContext(ctx,
		"SELECT synced_at FROM sync_log WHERE dataset = ?", cardDataset).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, raw)
}
