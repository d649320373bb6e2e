package cards

import (
	"strings"
	"sync"
)

// Resolver answers card lookups against an injected pool. Format and set
// sub-pools are built on first use and cached for the resolver's lifetime;
// the cache only ever holds derived views of the immutable pool, so
// concurrent population races are benign.
type Resolver struct {
	pool *Pool

	mu          sync.RWMutex
	formatPools map[string]*Pool
	setPools    map[string]*Pool
}

// NewResolver creates a resolver over the given pool.
func NewResolver(pool *Pool) *Resolver {
	return &Resolver{
		pool:        pool,
		formatPools: make(map[string]*Pool),
		setPools:    make(map[string]*Pool),
	}
}

// Pool returns the full backing pool.
func (r *Resolver) Pool() *Pool { return r.pool }

// FormatPool returns the cached sub-pool of cards legal in the given format.
func (r *Resolver) FormatPool(format string) *Pool {
	format = strings.ToLower(format)
	r.mu.RLock()
	pool, ok := r.formatPools[format]
	r.mu.RUnlock()
	if ok {
		return pool
	}
	pool = r.pool.FormatCards(format)
	r.mu.Lock()
	r.formatPools[format] = pool
	r.mu.Unlock()
	return pool
}

// SetPool returns the cached sub-pool of cards in the given set.
func (r *Resolver) SetPool(setCode string) *Pool {
	setCode = strings.ToLower(setCode)
	r.mu.RLock()
	pool, ok := r.setPools[setCode]
	r.mu.RUnlock()
	if ok {
		return pool
	}
	pool = r.pool.SetCards(setCode)
	r.mu.Lock()
	r.setPools[setCode] = pool
	r.mu.Unlock()
	return pool
}

// KnowsFormat reports whether the given format designation appears in the
// pool's legality data.
func (r *Resolver) KnowsFormat(format string) bool {
	return r.FormatPool(format).Len() > 0
}

// ByName resolves a card by name within the given format's legal pool.
func (r *Resolver) ByName(name, format string) *Card {
	return r.FormatPool(format).FindByName(name)
}

// ByCollectorNumber resolves a card by collector number within a set. The
// second return is false when the set code itself is unknown, which happens
// for Arena-specific Alchemy set codes; callers should then fall back to
// name-based resolution.
func (r *Resolver) ByCollectorNumber(number, setCode string) (*Card, bool) {
	if !r.pool.HasSet(setCode) {
		return nil, false
	}
	return r.pool.FindByCollectorNumber(number, setCode), true
}

// ByID resolves a card by its Scryfall ID.
func (r *Resolver) ByID(id string) *Card { return r.pool.FindByID(id) }

// Playset resolves a card and returns quantity copies of it. When a set code
// is given the set's pool is searched by name first; otherwise (or on a set
// miss) the format pool is searched. An unresolvable name yields an empty
// playset, never an error.
func (r *Resolver) Playset(name string, quantity int, setCode, format string) []*Card {
	if setCode != "" {
		if card := r.SetPool(setCode).FindByName(name); card != nil {
			return repeatCard(card, quantity)
		}
	}
	if card := r.ByName(name, format); card != nil {
		return repeatCard(card, quantity)
	}
	return nil
}

func repeatCard(card *Card, quantity int) []*Card {
	playset := make([]*Card, quantity)
	for i := range playset {
		playset[i] = card
	}
	return playset
}
