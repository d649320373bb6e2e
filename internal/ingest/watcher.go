package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/z33kz33k/mtgcards/internal/deck"
	"github.com/z33kz33k/mtgcards/internal/deck/arena"
)

// Handler receives every deck parsed from the drop directory.
type Handler func(path string, d *deck.Deck)

// Watcher ingests Arena decklist files dropped into a directory. Files
// already present on start are processed once, then file system events pick
// up new arrivals; a polling ticker backstops missed events.
type Watcher struct {
	dir     string
	parser  *arena.Parser
	handler Handler
	logger  *slog.Logger

	mu   sync.Mutex
	seen map[string]bool
}

// NewWatcher creates a drop-directory watcher.
func NewWatcher(dir string, parser *arena.Parser, handler Handler, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		dir:     dir,
		parser:  parser,
		handler: handler,
		logger:  logger,
		seen:    make(map[string]bool),
	}
}

// Start watches the directory until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logger.Info("watching drop directory", "dir", w.dir)
	w.scan()

	// Backup polling in case file events are missed.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-watcher.Events:
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.process(event.Name)
			}
		case err := <-watcher.Errors:
			w.logger.Warn("file watcher error", "error", err)
		case <-ticker.C:
			w.scan()
		}
	}
}

// scan processes any decklist files not handled yet.
func (w *Watcher) scan() {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Warn("failed to read drop directory", "dir", w.dir, "error", err)
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			w.process(filepath.Join(w.dir, entry.Name()))
		}
	}
}

func (w *Watcher) process(path string) {
	if !strings.HasSuffix(path, ".txt") {
		return
	}
	w.mu.Lock()
	done := w.seen[path]
	w.mu.Unlock()
	if done {
		return
	}

	// An empty read usually means the create event fired before the
	// content landed; leave the file unmarked so the next event or poll
	// retries it.
	text, err := os.ReadFile(path)
	if err != nil || len(text) == 0 {
		return
	}

	w.mu.Lock()
	if w.seen[path] {
		w.mu.Unlock()
		return
	}
	w.seen[path] = true
	w.mu.Unlock()
	name := strings.TrimSuffix(filepath.Base(path), ".txt")
	d, err := w.parser.ParseText(string(text), deck.Metadata{"name": name})
	if err != nil {
		w.logger.Warn("failed to parse decklist file", "path", path, "error", err)
		return
	}
	w.logger.Info("decklist ingested", "path", path)
	w.handler(path, d)
}
