package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC))
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1}, clock)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	clock.Advance(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second half-open probe to be rejected, got %v", err)
	}
	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_DoIgnoresNonTransientErrors(t *testing.T) {
	t.Parallel()

	transient := errors.New("upstream 503")
	permanent := errors.New("upstream 404")
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1}, clockwork.NewFakeClock())
	isTransient := func(err error) bool { return errors.Is(err, transient) }

	if err := b.Do(func() error { return permanent }, isTransient); !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after permanent error, got %s", state)
	}

	_ = b.Do(func() error { return transient }, isTransient)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after transient error, got %s", state)
	}
	if err := b.Do(func() error { return nil }, isTransient); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open rejection, got %v", err)
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	got := CircuitBreakerConfig{Enabled: false, FailureThreshold: 7, OpenTimeout: -time.Second}.WithDefaults(SnapshotFeedCircuit)
	want := CircuitBreakerConfig{Enabled: false, FailureThreshold: 7, OpenTimeout: SnapshotFeedCircuit.OpenTimeout, HalfOpenMaxReq: SnapshotFeedCircuit.HalfOpenMaxReq}
	if got != want {
		t.Fatalf("WithDefaults()=%+v want=%+v", got, want)
	}
}
