package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.ActivityInput
}

func (s *recordingService) Process(_ context.Context, in ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, in)
	return nil
}

func (s *recordingService) snapshot() []ports.ActivityInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.ActivityInput, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, want int, count func() int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if count() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", want, count())
}

func TestDispatcher_ShardingIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &recordingService{}, zerolog.Nop())

	for _, email := range []string{"a@example.com", "b@example.com", "jane@example.com"} {
		first := d.shardIndex(email)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(email); got != first {
				t.Fatalf("shardIndex(%q) flapped: %d then %d", email, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shardIndex(%q) = %d, out of range", email, first)
		}
	}
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Enqueue(ports.ActivityInput{
			Email: fmt.Sprintf("user%d@example.com", i),
			Kind:  domain.ActivityLogin,
			At:    time.Now().UTC(),
		})
	}

	waitFor(t, n, func() int { return len(svc.snapshot()) })
}

func TestDispatcher_PerEmailOrdering(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Interleave events for two accounts; each account's sequence is encoded
	// in the timestamp.
	base := time.Unix(0, 0).UTC()
	const perEmail = 30
	for i := 0; i < perEmail; i++ {
		at := base.Add(time.Duration(i) * time.Second)
		d.Enqueue(ports.ActivityInput{Email: "jane@example.com", Kind: domain.ActivityLogin, At: at})
		d.Enqueue(ports.ActivityInput{Email: "john@example.com", Kind: domain.ActivityLoginFailed, At: at})
	}

	waitFor(t, 2*perEmail, func() int { return len(svc.snapshot()) })

	seen := map[string]time.Time{}
	for _, e := range svc.snapshot() {
		if last, ok := seen[e.Email]; ok && e.At.Before(last) {
			t.Fatalf("events for %s processed out of order: %v after %v", e.Email, e.At, last)
		}
		seen[e.Email] = e.At
	}
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	// Workers are never started, so buffers fill up and stay full.
	d := NewDispatcher(1, &recordingService{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2*channelBuffer; i++ {
			d.Enqueue(ports.ActivityInput{Email: "jane@example.com", Kind: domain.ActivityLogin})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
