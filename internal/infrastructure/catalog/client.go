// Package catalog implements the HTTP client for the remote movie catalog
// (TMDB API v3).
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/movieflix/movieflix-api/internal/api/metrics"
	"github.com/movieflix/movieflix-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for the catalog client.
type Config struct {
	BaseURL string
	// APIKey is the bearer token sent on every request.
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type movieResult struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	PosterPath       string  `json:"poster_path"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language"`
	ReleaseDate      string  `json:"release_date"`
}

// catalogResponse covers both the success shape ({results: [...]}) and the
// API's error shape ({success: false, status_message: "..."}).
type catalogResponse struct {
	Results       []movieResult `json:"results"`
	Success       *bool         `json:"success"`
	StatusMessage string        `json:"status_message"`
}

// Search fetches movies for query. An empty query is the default-browse
// path: it calls the discover endpoint sorted by popularity instead of
// search. All failures come back wrapped in domain.ErrCatalogUnavailable,
// carrying the upstream status_message when one was decoded.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	endpoint := c.baseURL + "/discover/movie?sort_by=popularity.desc"
	label := "discover"
	if query != "" {
		endpoint = c.baseURL + "/search/movie?query=" + url.QueryEscape(query)
		label = "search"
	}

	start := time.Now()
	movies, err := c.get(ctx, endpoint)
	metrics.CatalogRequestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.CatalogRequestsTotal.WithLabelValues(label, result).Inc()

	return movies, err
}

func (c *Client) get(ctx context.Context, endpoint string) ([]domain.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	var payload catalogResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if decodeErr == nil && payload.StatusMessage != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, payload.StatusMessage)
		}
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrCatalogUnavailable, decodeErr)
	}

	// A 2xx body can still carry the API's own failure flag.
	if payload.Success != nil && !*payload.Success {
		msg := payload.StatusMessage
		if msg == "" {
			msg = "unsuccessful response"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, msg)
	}

	movies := make([]domain.Movie, 0, len(payload.Results))
	for _, r := range payload.Results {
		movies = append(movies, domain.Movie{
			ID:               r.ID,
			Title:            r.Title,
			PosterPath:       r.PosterPath,
			VoteAverage:      r.VoteAverage,
			OriginalLanguage: r.OriginalLanguage,
			ReleaseDate:      r.ReleaseDate,
		})
	}
	return movies, nil
}
