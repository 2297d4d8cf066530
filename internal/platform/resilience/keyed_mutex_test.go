package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	m := NewKeyedMutex()
	var inFlight, maxInFlight atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("2025:1")
			defer unlock()

			current := inFlight.Add(1)
			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}
			inFlight.Add(-1)
		}()
	}
	wg.Wait()

	if got := maxInFlight.Load(); got != 1 {
		t.Fatalf("expected at most one holder per key, got %d", got)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.locks) != 0 {
		t.Fatalf("expected lock table to drain, got %d entries", len(m.locks))
	}
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	t.Parallel()

	m := NewKeyedMutex()
	unlockA := m.Lock("2025:1")
	unlockB := m.Lock("2025:2")
	unlockB()
	unlockA()
}
