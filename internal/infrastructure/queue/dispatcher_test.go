package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

type recordingNotifier struct {
	mu      sync.Mutex
	channel string
	seen    []string
	err     error
}

func (n *recordingNotifier) Channel() string { return n.channel }

func (n *recordingNotifier) Notify(_ context.Context, contact domain.ContactRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, contact.ID)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.seen)
}

type memoryDedup struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newMemoryDedup() *memoryDedup {
	return &memoryDedup{keys: make(map[string]bool)}
}

func (d *memoryDedup) IsDuplicate(_ context.Context, contactID, channel string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keys[contactID+":"+channel], nil
}

func (d *memoryDedup) Mark(_ context.Context, contactID, channel string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys[contactID+":"+channel] = true
	return nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcher_FansOutToAllChannels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telegram := &recordingNotifier{channel: "telegram"}
	email := &recordingNotifier{channel: "email"}
	d := NewDispatcher(2, []ports.Notifier{telegram, email}, nil, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.ContactRequest{ID: "c-1", Name: "A"})

	waitFor(t, func() bool { return telegram.count() == 1 && email.count() == 1 })
}

// One channel failing must not stop delivery on the others.
func TestDispatcher_FailureDoesNotBlockOtherChannels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	failing := &recordingNotifier{channel: "telegram", err: errors.New("api down")}
	email := &recordingNotifier{channel: "email"}
	d := NewDispatcher(1, []ports.Notifier{failing, email}, nil, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.ContactRequest{ID: "c-2"})

	waitFor(t, func() bool { return email.count() == 1 })
}

func TestDispatcher_DedupSuppressesRepeats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telegram := &recordingNotifier{channel: "telegram"}
	d := NewDispatcher(1, []ports.Notifier{telegram}, newMemoryDedup(), zerolog.Nop())
	d.Start(ctx)

	contact := domain.ContactRequest{ID: "c-3"}
	d.Enqueue(contact)
	waitFor(t, func() bool { return telegram.count() == 1 })

	d.Enqueue(contact)
	// Give the worker time to (not) deliver the duplicate.
	time.Sleep(50 * time.Millisecond)
	if telegram.count() != 1 {
		t.Fatalf("expected duplicate to be suppressed, got %d deliveries", telegram.count())
	}
}

// A failed send must not be marked as delivered, so a retry can still go out.
func TestDispatcher_FailedSendNotMarked(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := &recordingNotifier{channel: "telegram", err: errors.New("flaky")}
	dedup := newMemoryDedup()
	d := NewDispatcher(1, []ports.Notifier{notifier}, dedup, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(domain.ContactRequest{ID: "c-4"})
	waitFor(t, func() bool { return notifier.count() == 1 })

	notifier.mu.Lock()
	notifier.err = nil
	notifier.mu.Unlock()

	d.Enqueue(domain.ContactRequest{ID: "c-4"})
	waitFor(t, func() bool { return notifier.count() == 2 })
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, nil, nil, zerolog.Nop())
	first := d.shardIndex("contact-abc")
	for i := 0; i < 10; i++ {
		if d.shardIndex("contact-abc") != first {
			t.Fatal("shard index must be deterministic per contact id")
		}
	}
}
