package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/api/metrics"
	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// DedupChecker suppresses repeat sends of the same notification. Optional.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, contactID, channel string) (bool, error)
	Mark(ctx context.Context, contactID, channel string) error
}

// Dispatcher fans contact requests out to every configured notifier from a
// fixed set of workers, sharded by contact ID so retries of the same request
// never interleave. Delivery is fire-and-forget: failures are logged and
// counted, never surfaced to the submitting request.
type Dispatcher struct {
	workers   []chan domain.ContactRequest
	notifiers []ports.Notifier
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. dedup may be nil, in which case
// delivery is at-least-once.
func NewDispatcher(numWorkers int, notifiers []ports.Notifier, dedup DedupChecker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan domain.ContactRequest, numWorkers),
		notifiers: notifiers,
		dedup:     dedup,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ContactRequest, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a contact request to the worker responsible for it. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(contact domain.ContactRequest) {
	d.workers[d.shardIndex(contact.ID)] <- contact
}

// shardIndex maps a contact ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(contactID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(contactID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ContactRequest) {
	for {
		select {
		case <-ctx.Done():
			return
		case contact, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, contact)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, contact domain.ContactRequest) {
	for _, n := range d.notifiers {
		channel := n.Channel()

		if d.dedup != nil {
			dup, err := d.dedup.IsDuplicate(ctx, contact.ID, channel)
			if err != nil {
				// Dedup store unavailable; deliver anyway.
				d.log.Warn().Err(err).
					Str("channel", channel).
					Msg("notification dedup check failed")
			} else if dup {
				continue
			}
		}

		if err := n.Notify(ctx, contact); err != nil {
			metrics.NotificationsErrorsTotal.WithLabelValues(channel).Inc()
			d.log.Error().Err(err).
				Str("contact_id", contact.ID).
				Str("channel", channel).
				Int("worker_id", workerID).
				Msg("notification delivery failed")
			continue
		}

		metrics.NotificationsSentTotal.WithLabelValues(channel).Inc()
		if d.dedup != nil {
			if err := d.dedup.Mark(ctx, contact.ID, channel); err != nil {
				d.log.Warn().Err(err).
					Str("channel", channel).
					Msg("notification dedup mark failed")
			}
		}
	}
}
