package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
	"github.com/movieflix/movieflix-api/internal/pkg/debounce"
)

// fetchErrorMessage is the page-level message shown for any failed fetch.
const fetchErrorMessage = "Error fetching movies. Please try again later."

const fetchTimeout = 15 * time.Second

// BrowseSession holds the transient search state of the browse surface:
// the raw search term, its debounced counterpart, the last fetched movie
// list, the loading flag, and the page-level error message. Keystrokes
// enter through SetSearchTerm; only a value that has been quiet for the
// debounce delay triggers a catalog fetch.
type BrowseSession struct {
	catalog ports.CatalogService
	log     zerolog.Logger
	deb     *debounce.Debouncer[string]

	mu            sync.Mutex
	searchTerm    string
	debouncedTerm string
	movies        []domain.Movie
	loading       bool
	errorMessage  string
	fetchSeq      uint64
}

func NewBrowseSession(catalog ports.CatalogService, delay time.Duration, log zerolog.Logger) *BrowseSession {
	b := &BrowseSession{catalog: catalog, log: log}
	b.deb = debounce.New(delay, b.fetch)
	return b
}

// Start kicks off the initial default-browse fetch (empty query selects the
// trending list) without waiting out the debounce delay.
func (b *BrowseSession) Start() {
	go b.fetch("")
}

// SetSearchTerm records one keystroke. The catalog is only queried once the
// term has been stable for the full debounce delay.
func (b *BrowseSession) SetSearchTerm(term string) {
	b.mu.Lock()
	b.searchTerm = term
	b.mu.Unlock()

	b.deb.Schedule(term)
}

// Snapshot returns a copy of the current state.
func (b *BrowseSession) Snapshot() ports.BrowseSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	movies := make([]domain.Movie, len(b.movies))
	copy(movies, b.movies)

	return ports.BrowseSnapshot{
		SearchTerm:    b.searchTerm,
		DebouncedTerm: b.debouncedTerm,
		Movies:        movies,
		Loading:       b.loading,
		ErrorMessage:  b.errorMessage,
	}
}

// fetch queries the catalog for term and applies the outcome. Each fetch
// takes a sequence number; a fetch that finishes after a newer one started
// is discarded, so a slow stale response never overwrites fresher results.
func (b *BrowseSession) fetch(term string) {
	b.mu.Lock()
	b.debouncedTerm = term
	b.loading = true
	b.errorMessage = ""
	b.fetchSeq++
	seq := b.fetchSeq
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	movies, err := b.catalog.Search(ctx, term)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.fetchSeq {
		return
	}

	b.loading = false
	if err != nil {
		b.errorMessage = fetchErrorMessage
		b.movies = nil
		return
	}
	b.movies = movies
}
