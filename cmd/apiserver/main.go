// Package main provides a standalone REST API server exposing the decklist
// parsing, export, and scraping endpoints over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/z33kz33k/mtgcards/internal/api"
	"github.com/z33kz33k/mtgcards/internal/cards"
	"github.com/z33kz33k/mtgcards/internal/config"
	"github.com/z33kz33k/mtgcards/internal/scrape"
	"github.com/z33kz33k/mtgcards/internal/storage"
)

var (
	port   = flag.Int("port", 0, "API server port (default from config)")
	dbPath = flag.String("db-path", "", "Database path (default from config)")
	debug  = flag.Bool("d", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level := slog.LevelInfo
	if *debug || cfg.App.DebugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	finalPort := *port
	if finalPort == 0 {
		finalPort = cfg.API.Port
	}

	finalDBPath := *dbPath
	if finalDBPath == "" {
		finalDBPath, err = cfg.DatabasePath()
		if err != nil {
			log.Fatalf("Failed to resolve database path: %v", err)
		}
	}

	fmt.Println("mtgcards - REST API Server")
	fmt.Println("==========================")
	fmt.Println()
	fmt.Printf("Database: %s\n", finalDBPath)

	db, err := storage.Open(storage.DefaultConfig(finalDBPath))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	ctx := context.Background()

	store := storage.NewCardStore(db)
	list, err := store.LoadCards(ctx)
	if err != nil {
		log.Fatalf("Failed to load cards: %v", err)
	}
	if len(list) == 0 {
		log.Fatal("Card database is empty. Run 'mtgcards sync' first.")
	}
	fmt.Printf("Loaded %d cards\n", len(list))

	resolver := cards.NewResolver(cards.NewPool(list))

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

	server := api.NewServer(&api.Config{Port: finalPort, Logger: logger}, resolver, registry)

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()

	fmt.Println()
	fmt.Printf("API server running at http://localhost:%d\n", finalPort)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("API server failed: %v", err)
		}
		return
	}

	fmt.Println()
	fmt.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("API server stopped.")
}
