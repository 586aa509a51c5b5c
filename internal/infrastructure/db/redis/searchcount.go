package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/movieflix/movieflix-api/internal/core/ports"
)

const (
	countKeyPrefix = "searchcount:"
	topKeyPrefix   = "searchtop:"
)

// SearchCounter tracks search popularity in Redis: a per-query hit counter
// plus a snapshot of the query's top result.
type SearchCounter struct {
	client *redis.Client
}

func NewSearchCounter(client *redis.Client) *SearchCounter {
	return &SearchCounter{client: client}
}

type topMovie struct {
	MovieID    int64  `json:"movie_id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

func (c *SearchCounter) Record(ctx context.Context, hit ports.SearchHit) error {
	top, err := json.Marshal(topMovie{
		MovieID:    hit.Movie.ID,
		Title:      hit.Movie.Title,
		PosterPath: hit.Movie.PosterPath,
	})
	if err != nil {
		return fmt.Errorf("marshal top result: %w", err)
	}

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, countKeyPrefix+hit.Query)
	pipe.Set(ctx, topKeyPrefix+hit.Query, top, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record search hit: %w", err)
	}
	return nil
}
