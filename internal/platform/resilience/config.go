package resilience

import "time"

// CircuitBreakerConfig tunes the breaker in front of one upstream feed.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold is the number of consecutive transient failures that
	// opens the circuit.
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

var (
	// SnapshotFeedCircuit fits feeds pulled as one large file a few times a
	// day, where a retry storm costs minutes of bandwidth.
	SnapshotFeedCircuit = CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      2 * time.Minute,
		HalfOpenMaxReq:   1,
	}
	// APIFeedCircuit fits small JSON endpoints hit on the request path.
	APIFeedCircuit = CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
)

// WithDefaults replaces unset or out-of-range fields with fallback's. Enabled
// is left as configured.
func (c CircuitBreakerConfig) WithDefaults(fallback CircuitBreakerConfig) CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = fallback.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = fallback.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = fallback.HalfOpenMaxReq
	}
	return c
}
