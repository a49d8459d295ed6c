package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quickpost/quickpost-api/internal/api/metrics"
	"github.com/quickpost/quickpost-api/internal/core/domain"
	"github.com/quickpost/quickpost-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the user id, so events for one account are persisted in the
// order they were recorded. Implements ports.AuditSink.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an event to the worker responsible for its user id. When
// the worker's buffer is full the event is dropped with a warning: the
// audit trail must never stall a login or refresh request.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	i := d.shardIndex(event.UserID)
	select {
	case d.workers[i] <- event:
	default:
		d.log.Warn().Str("user_id", event.UserID).Str("action", event.Action).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	gauge := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			gauge.Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("user_id", event.UserID).
					Str("action", event.Action).
					Int("worker_id", id).
					Msg("audit event persistence failed")
			}
		}
	}
}
