package memory

import (
	"context"
	"sync"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

// SearchCounter keeps per-query hit counts and top results in memory.
type SearchCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	top    map[string]domain.Movie
}

func NewSearchCounter() *SearchCounter {
	return &SearchCounter{
		counts: make(map[string]int64),
		top:    make(map[string]domain.Movie),
	}
}

func (c *SearchCounter) Record(_ context.Context, hit ports.SearchHit) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts[hit.Query]++
	c.top[hit.Query] = hit.Movie
	return nil
}

// Count reports how many times query has been recorded.
func (c *SearchCounter) Count(query string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[query]
}

// Top returns the last recorded top result for query.
func (c *SearchCounter) Top(query string) (domain.Movie, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.top[query]
	return m, ok
}
