package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/movieflix/movieflix-api/internal/api/metrics"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes search hits to a fixed set of workers using consistent
// hashing on the query, so hits for the same query are counted in order.
// Recording is fire-and-forget: failures are logged and dropped.
type Dispatcher struct {
	workers []chan ports.SearchHit
	counter ports.SearchCounter
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, counter ports.SearchCounter, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.SearchHit, numWorkers),
		counter: counter,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SearchHit, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a hit to the worker responsible for its query. A full
// worker buffer drops the hit rather than blocking the search path.
func (d *Dispatcher) Enqueue(hit ports.SearchHit) {
	idx := d.shardIndex(hit.Query)
	select {
	case d.workers[idx] <- hit:
		metrics.SearchHitsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("query", hit.Query).Int("worker_id", idx).Msg("search hit dropped, worker buffer full")
	}
}

// shardIndex maps a query deterministically to a worker index.
func (d *Dispatcher) shardIndex(query string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(query))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SearchHit) {
	for {
		select {
		case <-ctx.Done():
			return
		case hit, ok := <-ch:
			if !ok {
				return
			}
			metrics.SearchHitsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.counter.Record(ctx, hit); err != nil {
				d.log.Error().Err(err).
					Str("query", hit.Query).
					Int("worker_id", id).
					Msg("search hit recording failed")
				continue
			}
			metrics.SearchHitsRecordedTotal.Inc()
		}
	}
}
