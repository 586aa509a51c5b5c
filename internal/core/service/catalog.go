package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

// CatalogService fronts the catalog client and feeds the search-count side
// channel.
type CatalogService struct {
	client ports.CatalogClient
	events ports.SearchEvents
	log    zerolog.Logger
}

func NewCatalogService(client ports.CatalogClient, events ports.SearchEvents, log zerolog.Logger) *CatalogService {
	return &CatalogService{client: client, events: events, log: log}
}

// Search runs the catalog lookup. When the query is non-empty and produced
// at least one result, the query and its top result are handed to the
// search counter exactly once, fire-and-forget.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	movies, err := s.client.Search(ctx, query)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("catalog search failed")
		return nil, err
	}

	if query != "" && len(movies) > 0 {
		s.events.Enqueue(ports.SearchHit{Query: query, Movie: movies[0]})
	}

	return movies, nil
}
