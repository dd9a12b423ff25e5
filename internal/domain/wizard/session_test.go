package wizard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PavaniTiago/felice-endomarketing-api/internal/domain/entities"
)

func TestCountdownFinishes(t *testing.T) {
	var mu sync.Mutex
	var ticks []int
	done := make(chan struct{})

	StartCountdown(3, 5*time.Millisecond, func(remaining int) {
		mu.Lock()
		ticks = append(ticks, remaining)
		mu.Unlock()
	}, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(ticks) != 3 || ticks[0] != 2 || ticks[2] != 0 {
		t.Fatalf("unexpected ticks %v", ticks)
	}
}

func TestCountdownStopPreventsCallbacks(t *testing.T) {
	var calls atomic.Int32
	c := StartCountdown(2, 20*time.Millisecond, func(int) { calls.Add(1) }, func() { calls.Add(100) })
	c.Stop()
	c.Stop()

	time.Sleep(80 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Fatalf("callbacks ran after stop: %d", n)
	}
	if c.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", c.Remaining())
	}
}

func completeSession(t *testing.T, fx fixture, tick time.Duration) *Session {
	t.Helper()
	s := newSession(fx.form, tick)
	steps := []func() (Snapshot, error){
		s.Start,
		func() (Snapshot, error) { return s.Select(fx.skin.ID, fx.skin.Options[0].ID) },
		s.Next,
		func() (Snapshot, error) { return s.Select(fx.body.ID, fx.body.Options[0].ID) },
		s.Next,
		s.Next,
		func() (Snapshot, error) { return s.SetContact("Paula Lima", "11 91234-5678") },
	}
	for i, step := range steps {
		if _, err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return s
}

func TestSessionSubmitStartsCountdownAndRedirects(t *testing.T) {
	fx := newFixture()
	s := completeSession(t, fx, 5*time.Millisecond)

	snap, receipt, err := s.Submit(context.Background(), &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State.Step != StepSuccess || snap.Countdown != SuccessCountdownSeconds {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if receipt.Interests != 2 {
		t.Fatalf("expected 2 interests, got %d", receipt.Interests)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if snap = s.Snapshot(); snap.Redirect {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !snap.Redirect || snap.State.Step != StepWelcome {
		t.Fatalf("expected redirect back to welcome, got %+v", snap)
	}
}

func TestSessionResetCancelsCountdown(t *testing.T) {
	fx := newFixture()
	s := completeSession(t, fx, 20*time.Millisecond)
	if _, _, err := s.Submit(context.Background(), &fakeStore{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := s.Reset()
	if snap.State.Step != StepWelcome || snap.Countdown != 0 {
		t.Fatalf("unexpected snapshot after reset %+v", snap)
	}
	time.Sleep(150 * time.Millisecond)
	if s.Snapshot().Redirect {
		t.Fatal("cancelled countdown must not redirect")
	}
}

type blockingStore struct {
	fakeStore
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) CreateLead(ctx context.Context, lead *entities.Lead) error {
	close(b.entered)
	<-b.release
	return b.fakeStore.CreateLead(ctx, lead)
}

func TestSessionRejectsConcurrentSubmit(t *testing.T) {
	fx := newFixture()
	s := completeSession(t, fx, time.Hour)
	store := &blockingStore{entered: make(chan struct{}), release: make(chan struct{})}

	errc := make(chan error, 1)
	go func() {
		_, _, err := s.Submit(context.Background(), store)
		errc <- err
	}()

	<-store.entered
	snap, _, err := s.Submit(context.Background(), store)
	if !errors.Is(err, ErrCannotSubmit) {
		t.Fatalf("second submit: expected ErrCannotSubmit, got %v", err)
	}
	if !snap.State.IsSubmitting || snap.CanSubmit {
		t.Fatal("snapshot must report the submission in progress")
	}

	close(store.release)
	if err := <-errc; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	s.Close()
}

func TestSessionSelectUsesQuestionMultiplicity(t *testing.T) {
	fx := newFixture()
	s := newSession(fx.form, time.Second)
	if _, err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Select(fx.skin.ID, fx.skin.Options[0].ID)
	snap, err := s.Select(fx.skin.ID, fx.skin.Options[1].ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := snap.State.Answers[fx.skin.ID]; len(got) != 2 {
		t.Fatalf("multi-select question should keep both options, got %v", got)
	}
	if snap.Question == nil || snap.Question.ID != fx.skin.ID {
		t.Fatal("snapshot must expose the current question")
	}
}
