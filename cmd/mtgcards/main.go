package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/cards/scryfall"
	"github.com/z33kz33k/mtgcards/internal/charts"
	"github.com/z33kz33k/mtgcards/internal/config"
	"github.com/z33kz33k/mtgcards/internal/deck"
	"github.com/z33kz33k/mtgcards/internal/deck/arena"
	"github.com/z33kz33k/mtgcards/internal/export"
	"github.com/z33kz33k/mtgcards/internal/ingest"
	"github.com/z33kz33k/mtgcards/internal/scrape"
	"github.com/z33kz33k/mtgcards/internal/storage"
	"github.com/z33kz33k/mtgcards/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "sync":
		runSyncCommand()
	case "parse":
		runParseCommand()
	case "export":
		runExportCommand()
	case "scrape":
		runScrapeCommand()
	case "batch":
		runBatchCommand()
	case "watch":
		runWatchCommand()
	case "chart":
		runChartCommand()
	case "migrate":
		runMigrateCommand()
	case "version":
		fmt.Printf("mtgcards %s\n", version.GetVersion())
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("mtgcards - MTG decklist parsing and scraping toolkit")
	fmt.Println()
	fmt.Println("Usage: mtgcards <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sync     - Download the Scryfall card dataset into the local database")
	fmt.Println("  parse    - Parse an Arena decklist file and print a summary")
	fmt.Println("  export   - Parse a decklist and export it to a deckfile format")
	fmt.Println("  scrape   - Scrape a deck from a supported site URL")
	fmt.Println("  batch    - Ingest multiple decklist files or URLs concurrently")
	fmt.Println("  watch    - Watch a directory for dropped decklist files")
	fmt.Println("  chart    - Render a mana curve chart for a decklist")
	fmt.Println("  migrate  - Run database schema migrations")
	fmt.Println("  version  - Print the application version")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  mtgcards sync")
	fmt.Println("  mtgcards parse -file deck.txt -format standard")
	fmt.Println("  mtgcards export -file deck.txt -to forge -out ./decks")
	fmt.Println("  mtgcards scrape -url https://www.mtggoldfish.com/deck/1234")
	fmt.Println("  mtgcards watch -dir ./dropbox")
	fmt.Println()
}

// loadConfig loads and validates the application configuration.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	return cfg
}

// newLogger builds the application logger honoring debug mode.
func newLogger(cfg *config.Config, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug || cfg.App.DebugMode {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore opens the card database and returns the store.
func openStore(cfg *config.Config) (*storage.DB, *storage.CardStore) {
	path, err := cfg.DatabasePath()
	if err != nil {
		log.Fatalf("Error resolving database path: %v", err)
	}

	db, err := storage.Open(storage.DefaultConfig(path))
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	return db, storage.NewCardStore(db)
}

// buildResolver loads the card pool from the store and indexes it.
func buildResolver(ctx context.Context, store *storage.CardStore) *cards.Resolver {
	list, err := store.LoadCards(ctx)
	if err != nil {
		log.Fatalf("Error loading cards: %v", err)
	}
	if len(list) == 0 {
		log.Fatal("Card database is empty. Run 'mtgcards sync' first.")
	}
	return cards.NewResolver(cards.NewPool(list))
}

// buildRegistry wires all supported deck site scrapers.
func buildRegistry(cfg *config.Config, resolver *cards.Resolver, logger *slog.Logger) *scrape.Registry {
	timeout, err := cfg.GetScrapeTimeout()
	if err != nil {
		log.Fatalf("Invalid scrape timeout: %v", err)
	}

	client := scrape.NewClient(&scrape.ClientConfig{
		RequestTimeout:    timeout,
		RequestsPerSecond: cfg.Scrape.RequestsPerSecond,
		Logger:            logger,
	})

	registry := &scrape.Registry{}
	registry.Register(scrape.NewGoldfishScraper(client, resolver, cfg.App.DefaultFormat))
	registry.Register(scrape.NewMoxfieldScraper(client, resolver))
	registry.Register(scrape.NewArchidektScraper(client, resolver))
	registry.Register(scrape.NewDeckstatsScraper(client, resolver, cfg.App.DefaultFormat))
	return registry
}

func runSyncCommand() {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	force := fs.Bool("force", false, "Re-download even if the dataset is fresh")
	debug := fs.Bool("d", false, "Enable debug logging")
	parseFlags(fs)

	cfg := loadConfig()
	logger := newLogger(cfg, *debug)

	db, store := openStore(cfg)
	defer closeDB(db)

	ctx := context.Background()

	if !*force {
		ttl, err := cfg.GetSyncTTL()
		if err != nil {
			log.Fatalf("Invalid sync TTL: %v", err)
		}
		last, err := store.LastSync(ctx)
		if err != nil {
			log.Fatalf("Error reading sync state: %v", err)
		}
		if !last.IsZero() && time.Since(last) < ttl {
			fmt.Printf("Card dataset is fresh (synced %s). Use -force to re-download.\n",
				last.Format(time.RFC3339))
			return
		}
	}

	fmt.Println("Downloading Scryfall default cards dataset...")

	clientConfig := scryfall.DefaultClientConfig()
	clientConfig.Logger = logger
	client := scryfall.NewClient(clientConfig)

	list, err := client.DefaultCards(ctx)
	if err != nil {
		log.Fatalf("Error downloading card dataset: %v", err)
	}

	if err := store.SaveCards(ctx, list); err != nil {
		log.Fatalf("Error saving cards: %v", err)
	}

	fmt.Printf("Synced %d cards.\n", len(list))
}

func runParseCommand() {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	file := fs.String("file", "", "Path to an Arena decklist file (reads stdin when empty)")
	format := fs.String("format", "", "Deck format (default from config)")
	list := fs.Bool("list", false, "Print the decklist body instead of the summary")
	debug := fs.Bool("d", false, "Enable debug logging")
	parseFlags(fs)

	cfg := loadConfig()
	_ = newLogger(cfg, *debug)

	d := parseDeckFile(cfg, *file, *format)
	if *list {
		displayPlaysets(d)
		return
	}
	displayDeck(d)
}

func runExportCommand() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := fs.String("file", "", "Path to an Arena decklist file (reads stdin when empty)")
	format := fs.String("format", "", "Deck format (default from config)")
	to := fs.String("to", "arena", "Export format: arena or forge")
	out := fs.String("out", ".", "Output directory")
	name := fs.String("name", "", "Override the derived deck name")
	debug := fs.Bool("d", false, "Enable debug logging")
	parseFlags(fs)

	cfg := loadConfig()
	_ = newLogger(cfg, *debug)

	d := parseDeckFile(cfg, *file, *format)

	exporter := &export.Exporter{Name: *name}
	result, err := exporter.Export(d, export.Format(*to))
	if err != nil {
		log.Fatalf("Error exporting deck: %v", err)
	}

	dest := filepath.Join(*out, result.Filename)
	if err := os.WriteFile(dest, []byte(result.Content), 0o644); err != nil {
		log.Fatalf("Error writing deckfile: %v", err)
	}
	fmt.Printf("Exported to %s\n", dest)
}

func runScrapeCommand() {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	url := fs.String("url", "", "Deck page URL")
	list := fs.Bool("list", false, "Print the decklist body instead of the summary")
	debug := fs.Bool("d", false, "Enable debug logging")
	parseFlags(fs)

	if *url == "" {
		log.Fatal("The -url flag is required")
	}

	cfg := loadConfig()
	logger := newLogger(cfg, *debug)

	db, store := openStore(cfg)
	defer closeDB(db)

	ctx := context.Background()
	resolver := buildResolver(ctx, store)
	registry := buildRegistry(cfg, resolver, logger)

	d, err := registry.Scrape(ctx, *url)
	if err != nil {
		log.Fatalf("Error scraping deck: %v", err)
	}

	if *list {
		displayPlaysets(d)
		return
	}
	displayDeck(d)
}

func runBatchCommand() {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	format := fs.String("format", "", "Deck format (default from config)")
	workers := fs.Int("workers", 0, "Concurrent workers (default from config)")
	debug := fs.Bool("d", false, "Enable debug logging")
	parseFlags(fs)

	args := fs.Args()
	if len(args) == 0 {
		log.Fatal("Usage: mtgcards batch [options] <file-or-url> ...")
	}

	cfg := loadConfig()
	logger := newLogger(cfg, *debug)

	db, store := openStore(cfg)
	defer closeDB(db)

	ctx := context.Background()
	resolver := buildResolver(ctx, store)
	registry := buildRegistry(cfg, resolver, logger)
	parser := newParser(cfg, resolver, *format)

	items := make([]ingest.Item, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			items = append(items, ingest.Item{Name: arg, URL: arg})
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			log.Fatalf("Error reading %s: %v", arg, err)
		}
		items = append(items, ingest.Item{Name: filepath.Base(arg), Text: string(data)})
	}

	n := *workers
	if n == 0 {
		n = cfg.Ingest.Workers
	}

	summary := ingest.NewIngestor(parser, registry, n, logger).Run(ctx, items)

	for _, result := range summary.Results {
		if result.Err != nil {
			fmt.Printf("FAIL %s: %v\n", result.Item.Name, result.Err)
			continue
		}
		fmt.Printf("OK   %s (%s, %d cards)\n",
			result.Item.Name, result.Deck.Color(), len(result.Deck.Mainboard()))
	}
	fmt.Printf("\n%d succeeded, %d failed in %s\n",
		summary.Succeeded, summary.Failed, summary.Elapsed.Round(time.Millisecond))

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func runWatchCommand() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	dir := fs.String("dir", "", "Directory to watch (default from config)")
	format := fs.String("format", "", "Deck format (default from config)")
	out := fs.String("out", "", "Export parsed decks to this directory as Arena files")
	debug := fs.Bool("d", false, "Enable debug logging")
	parseFlags(fs)

	cfg := loadConfig()
	logger := newLogger(cfg, *debug)

	watchDir := *dir
	if watchDir == "" {
		watchDir = cfg.Ingest.DropDir
	}
	if watchDir == "" {
		log.Fatal("No watch directory. Pass -dir or set ingest.drop_dir in the config.")
	}

	db, store := openStore(cfg)
	defer closeDB(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver := buildResolver(ctx, store)
	parser := newParser(cfg, resolver, *format)

	exporter := &export.Exporter{}
	handler := func(path string, d *deck.Deck) {
		fmt.Printf("Parsed %s: %s (%s)\n", filepath.Base(path), d.Name(), d.Color())
		if *out == "" {
			return
		}
		result, err := exporter.Export(d, export.FormatArena)
		if err != nil {
			logger.Error("export failed", "path", path, "error", err)
			return
		}
		dest := filepath.Join(*out, result.Filename)
		if err := os.WriteFile(dest, []byte(result.Content), 0o644); err != nil {
			logger.Error("write failed", "path", dest, "error", err)
		}
	}

	watcher := ingest.NewWatcher(watchDir, parser, handler, logger)

	fmt.Printf("Watching %s for decklist files. Press Ctrl+C to stop.\n", watchDir)

	done := make(chan error, 1)
	go func() { done <- watcher.Start(ctx) }()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		cancel()
		<-done
	case err := <-done:
		if err != nil {
			log.Fatalf("Watcher error: %v", err)
		}
	}
}

func runChartCommand() {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	file := fs.String("file", "", "Path to an Arena decklist file (reads stdin when empty)")
	format := fs.String("format", "", "Deck format (default from config)")
	out := fs.String("out", "mana_curve.html", "Output HTML file")
	debug := fs.Bool("d", false, "Enable debug logging")
	parseFlags(fs)

	cfg := loadConfig()
	_ = newLogger(cfg, *debug)

	d := parseDeckFile(cfg, *file, *format)

	if err := charts.RenderManaCurveFile(d, charts.DefaultChartConfig(), *out); err != nil {
		log.Fatalf("Error rendering chart: %v", err)
	}
	fmt.Printf("Chart written to %s\n", *out)
}

func runMigrateCommand() {
	cfg := loadConfig()
	path, err := cfg.DatabasePath()
	if err != nil {
		log.Fatalf("Error resolving database path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("Error creating database directory: %v", err)
	}

	fmt.Println("Applying pending migrations...")
	if err := storage.Migrate(path); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
	fmt.Println("Migrations applied successfully!")
}

// parseFlags parses the subcommand flag set against the remaining args.
func parseFlags(fs *flag.FlagSet) {
	// ExitOnError flag sets never return an error from Parse.
	_ = fs.Parse(os.Args[2:])
}

// newParser builds an Arena parser for the requested format, falling back to
// the configured default.
func newParser(cfg *config.Config, resolver *cards.Resolver, format string) *arena.Parser {
	if format == "" {
		format = cfg.App.DefaultFormat
	}
	parser, err := arena.NewParser(resolver, format)
	if err != nil {
		log.Fatalf("Error creating parser: %v", err)
	}
	return parser
}

// parseDeckFile reads and parses a decklist from a file or stdin.
func parseDeckFile(cfg *config.Config, file, format string) *deck.Deck {
	var (
		data []byte
		err  error
		name string
	)
	if file == "" {
		data, err = readStdin()
	} else {
		data, err = os.ReadFile(file)
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	if err != nil {
		log.Fatalf("Error reading decklist: %v", err)
	}

	db, store := openStore(cfg)
	defer closeDB(db)

	resolver := buildResolver(context.Background(), store)
	parser := newParser(cfg, resolver, format)

	metadata := deck.Metadata{}
	if name != "" {
		metadata["name"] = name
	}

	d, err := parser.ParseText(string(data), metadata)
	if err != nil {
		log.Fatalf("Error parsing deck: %v", err)
	}
	return d
}

func readStdin() ([]byte, error) {
	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		return nil, fmt.Errorf("no decklist on stdin; pass -file or pipe a decklist")
	}
	return io.ReadAll(os.Stdin)
}

func closeDB(db *storage.DB) {
	if err := db.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
