package upstream

// breaker.go — circuit breaker guarding calls to the remote financing API
// (Closed → Open → Half-Open). When the remote API is down, the console
// fast-fails instead of stacking 30-second timeouts behind every page load.

import (
	"errors"
	"sync"
	"time"
)

// BreakerState represents the current circuit breaker state.
type BreakerState int

const (
	StateClosed   BreakerState = iota // normal — requests flow
	StateOpen                         // tripped — fast-fail all requests
	StateHalfOpen                     // probing — one request allowed
)

// String returns a human-readable state name (for the health endpoint and logs).
func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned when a call is attempted while the breaker is open.
var ErrCircuitOpen = errors.New("upstream circuit breaker is open")

// BreakerConfig holds tunable parameters.
type BreakerConfig struct {
	FailureThreshold int           // consecutive failures to trip open
	SuccessThreshold int           // consecutive half-open successes to close
	OpenTimeout      time.Duration // how long to stay open before probing
}

// DefaultBreakerConfig returns the defaults used for the financing API.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenTimeout:      30 * time.Second,
	}
}

// Breaker implements the pattern with thread-safe state transitions.
type Breaker struct {
	mu          sync.Mutex
	state       BreakerState
	failures    int
	successes   int
	lastFailure time.Time
	cfg         BreakerConfig
}

// NewBreaker creates a breaker in the closed state.
func NewBreaker(cfg BreakerConfig) *Breaker {
	def := DefaultBreakerConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = def.SuccessThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}
	return &Breaker{state: StateClosed, cfg: cfg}
}

// State returns the current state, applying the open → half-open transition
// when the open timeout has elapsed.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateOpen && time.Since(b.lastFailure) >= b.cfg.OpenTimeout {
		b.state = StateHalfOpen
		b.successes = 0
	}
	return b.state
}

// Execute runs fn through the breaker, returning ErrCircuitOpen immediately
// when the breaker is open.
func (b *Breaker) Execute(fn func() error) error {
	if b.State() == StateOpen {
		return ErrCircuitOpen
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.onFailure()
		return err
	}
	b.onSuccess()
	return nil
}

// onFailure records a failure (must be called under lock).
func (b *Breaker) onFailure() {
	b.failures++
	b.lastFailure = time.Now()

	switch b.state {
	case StateClosed:
		if b.failures >= b.cfg.FailureThreshold {
			b.state = StateOpen
			b.successes = 0
		}
	case StateHalfOpen:
		// A failed trial request reopens the breaker.
		b.state = StateOpen
		b.failures = 0
	}
}

// onSuccess records a success (must be called under lock).
func (b *Breaker) onSuccess() {
	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.state = StateClosed
			b.failures = 0
			b.successes = 0
		}
	}
}
