package ports

import (
	"context"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

// CatalogClient talks to the remote movie catalog. An empty query selects
// the discover/trending endpoint; a non-empty query selects search.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]domain.Movie, error)
}

// CatalogService wraps the client with the fire-and-forget search-count
// side channel.
type CatalogService interface {
	Search(ctx context.Context, query string) ([]domain.Movie, error)
}

// SearchHit is one counted search: the query together with its top result.
type SearchHit struct {
	Query string
	Movie domain.Movie
}

// SearchCounter records search popularity. Failures are logged and ignored
// by callers.
type SearchCounter interface {
	Record(ctx context.Context, hit SearchHit) error
}

// SearchEvents accepts hits for asynchronous recording.
type SearchEvents interface {
	Enqueue(hit SearchHit)
}

// BrowseSnapshot is the transient search state of the browse surface.
// It is in-memory only and rebuilt empty on restart.
type BrowseSnapshot struct {
	SearchTerm    string         `json:"search_term"`
	DebouncedTerm string         `json:"debounced_term"`
	Movies        []domain.Movie `json:"movies"`
	Loading       bool           `json:"loading"`
	ErrorMessage  string         `json:"error_message,omitempty"`
}

// BrowseSession drives debounced live search: keystrokes go in through
// SetSearchTerm, the settled value triggers a catalog fetch, and Snapshot
// exposes the latest state.
type BrowseSession interface {
	Start()
	SetSearchTerm(term string)
	Snapshot() BrowseSnapshot
}
