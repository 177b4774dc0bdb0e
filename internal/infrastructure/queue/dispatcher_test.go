package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/planet-nakshatra/consultation-api/internal/core/ports"
)

type recordingNotifier struct {
	mu        sync.Mutex
	processed []ports.NotificationInput
	done      chan struct{}
	expect    int
}

func newRecordingNotifier(expect int) *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}), expect: expect}
}

func (n *recordingNotifier) Process(_ context.Context, in ports.NotificationInput) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.processed = append(n.processed, in)
	if len(n.processed) == n.expect {
		close(n.done)
	}
	return nil
}

func (n *recordingNotifier) wait(t *testing.T) []ports.NotificationInput {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for notifications")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.NotificationInput, len(n.processed))
	copy(out, n.processed)
	return out
}

func TestDispatcher_DeliversAll(t *testing.T) {
	notifier := newRecordingNotifier(10)
	d := NewDispatcher(4, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(ports.NotificationInput{
			Kind:      ports.NotifyInquiryReceived,
			Reference: fmt.Sprintf("INQ-%08d", i),
		})
	}

	processed := notifier.wait(t)
	if len(processed) != 10 {
		t.Fatalf("expected 10 notifications, got %d", len(processed))
	}
}

func TestDispatcher_OrderedPerReference(t *testing.T) {
	const n = 20
	notifier := newRecordingNotifier(n)
	d := NewDispatcher(4, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// same reference always lands on the same worker, so recipients
	// must come out in enqueue order
	for i := 0; i < n; i++ {
		d.Enqueue(ports.NotificationInput{
			Kind:      ports.NotifyBookingConfirmed,
			Reference: "PN123456ABCD",
			Recipient: fmt.Sprintf("r%d", i),
		})
	}

	processed := notifier.wait(t)
	for i, in := range processed {
		if in.Recipient != fmt.Sprintf("r%d", i) {
			t.Fatalf("out of order at %d: %s", i, in.Recipient)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingNotifier(0), zerolog.Nop())

	first := d.shardIndex("PN123456ABCD")
	for i := 0; i < 100; i++ {
		if d.shardIndex("PN123456ABCD") != first {
			t.Fatalf("shard index not stable")
		}
	}
}
