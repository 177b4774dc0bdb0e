package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the reference code, so notifications about one booking or
// inquiry are delivered in order.
type Dispatcher struct {
	workers []chan ports.NotificationInput
	service ports.NotifierService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotifierService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its reference.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.NotificationInput) {
	d.workers[d.shardIndex(in.Reference)] <- in
}

func (d *Dispatcher) shardIndex(reference string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(reference))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, in); err != nil {
				d.log.Error().Err(err).
					Str("reference", in.Reference).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}
