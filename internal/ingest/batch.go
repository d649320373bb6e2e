// Package ingest runs decklist sources through the parsing pipeline in
// batches and watches drop directories for new decklist files.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/z33kz33k/mtgcards/internal/deck"
	"github.com/z33kz33k/mtgcards/internal/deck/arena"
	"github.com/z33kz33k/mtgcards/internal/scrape"
)

// Item is one decklist source: either raw Arena text or a deck page URL.
type Item struct {
	// Name labels the item in results, e.g. a filename or the URL.
	Name string

	// Text is a raw Arena decklist. Empty when URL is set.
	Text string

	// URL is a deck page URL for the scraper registry.
	URL string
}

// ItemResult is the outcome for one item.
type ItemResult struct {
	Item Item
	Deck *deck.Deck
	Err  error
}

// Summary reports one batch run.
type Summary struct {
	RunID     string
	Results   []ItemResult
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// Ingestor parses batches of decklist sources with a bounded worker pool.
// One failing item never aborts the rest of the batch.
type Ingestor struct {
	parser   *arena.Parser
	registry *scrape.Registry
	workers  int
	logger   *slog.Logger
}

// NewIngestor creates an ingestor. The registry may be nil when only text
// items are expected.
func NewIngestor(parser *arena.Parser, registry *scrape.Registry, workers int, logger *slog.Logger) *Ingestor {
	if workers < 1 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{parser: parser, registry: registry, workers: workers, logger: logger}
}

// Run parses all items and returns the per-item outcomes in input order.
func (ing *Ingestor) Run(ctx context.Context, items []Item) *Summary {
	start := time.Now()
	summary := &Summary{
		RunID:   uuid.NewString(),
		Results: make([]ItemResult, len(items)),
	}
	logger := ing.logger.With("run_id", summary.RunID)
	logger.Info("batch started", "items", len(items), "workers", ing.workers)

	for i := range items {
		summary.Results[i] = ItemResult{Item: items[i], Err: fmt.Errorf("not processed")}
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < ing.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				d, err := ing.one(ctx, items[i])
				summary.Results[i] = ItemResult{Item: items[i], Deck: d, Err: err}
				if err != nil {
					logger.Warn("item failed", "item", items[i].Name, "error", err)
				}
			}
		}()
	}

feed:
	for i := range items {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	for i := range summary.Results {
		if summary.Results[i].Deck != nil {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	summary.Elapsed = time.Since(start)
	logger.Info("batch finished",
		"succeeded", summary.Succeeded, "failed", summary.Failed, "elapsed", summary.Elapsed)
	return summary
}

func (ing *Ingestor) one(ctx context.Context, item Item) (*deck.Deck, error) {
	switch {
	case item.URL != "":
		if ing.registry == nil {
			return nil, fmt.Errorf("no scraper registry configured for %s", item.URL)
		}
		return ing.registry.Scrape(ctx, item.URL)
	case item.Text != "":
		return ing.parser.ParseText(item.Text, deck.Metadata{"name": item.Name})
	default:
		return nil, fmt.Errorf("empty item: %s", item.Name)
	}
}
