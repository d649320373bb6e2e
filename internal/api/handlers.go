package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/z33kz33k/mtgcards/internal/deck"
	"github.com/z33kz33k/mtgcards/internal/deck/arena"
	"github.com/z33kz33k/mtgcards/internal/export"
	"github.com/z33kz33k/mtgcards/internal/scrape"
)

type parseRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"`
	Name   string `json:"name,omitempty"`
}

type exportRequest struct {
	parseRequest
	Target string `json:"target"` // "arena" or "forge"
}

type scrapeRequest struct {
	URL string `json:"url"`
}

type exportResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]any{
		"status":  "ok",
		"formats": s.resolver.Pool().Formats(),
	})
}

func (s *Server) parseDeck(r *http.Request, req *parseRequest) (*deck.Deck, error) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, &badRequestError{fmt.Errorf("malformed request body: %w", err)}
	}
	parser, err := arena.NewParser(s.resolver, req.Format)
	if err != nil {
		return nil, &badRequestError{err}
	}
	metadata := deck.Metadata{}
	if req.Name != "" {
		metadata["name"] = req.Name
	}
	return parser.ParseText(req.Text, metadata)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	d, err := s.parseDeck(r, &req)
	if err != nil {
		writeDeckError(w, err)
		return
	}
	writeSuccess(w, newDeckView(d))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	d, err := s.parseDeck(r, &req.parseRequest)
	if err != nil {
		writeDeckError(w, err)
		return
	}
	exported, err := (&export.Exporter{Name: req.Name}).Export(d, export.Format(req.Target))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeSuccess(w, exportResponse{Filename: exported.Filename, Content: exported.Content})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err))
		return
	}
	d, err := s.registry.Scrape(r.Context(), req.URL)
	if err != nil {
		writeDeckError(w, err)
		return
	}
	writeSuccess(w, newDeckView(d))
}

// badRequestError marks failures caused by the request itself rather than
// the decklist content.
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string { return e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }

func writeDeckError(w http.ResponseWriter, err error) {
	var (
		badRequest *badRequestError
		invalid    *deck.InvalidDeckError
		parseErr   *deck.ParseError
		transition *deck.TransitionError
	)
	switch {
	case errors.As(err, &badRequest), errors.Is(err, scrape.ErrUnsupportedURL):
		writeError(w, http.StatusBadRequest, err)
	case errors.As(err, &invalid), errors.As(err, &parseErr), errors.As(err, &transition):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
