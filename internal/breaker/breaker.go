// Package breaker wraps upstream API calls in a sony/gobreaker circuit breaker.
// An open circuit fails fast with ErrOpen; callers degrade the same way they do
// for any other upstream failure.
package breaker

import (
	"errors"
	"fmt"
	"time"

	"book-curator/backend/internal/logging"
	"book-curator/backend/internal/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrOpen is returned when the circuit rejects a call.
var ErrOpen = errors.New("circuit breaker is open")

// Settings configures a Breaker. Zero values take the defaults below.
type Settings struct {
	// ConsecutiveFailures opens the circuit (default 5)
	ConsecutiveFailures uint32
	// OpenTimeout is how long the circuit stays open before probing (default 30s)
	OpenTimeout time.Duration
	// Interval resets closed-state counts (default 1m)
	Interval time.Duration
	// IsSuccessful overrides which errors count as failures
	IsSuccessful func(err error) bool
}

// Breaker guards one upstream service.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[any]
}

// New creates a Breaker named after the upstream service.
func New(name string, s Settings) *Breaker {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 5
	}
	if s.OpenTimeout == 0 {
		s.OpenTimeout = 30 * time.Second
	}
	if s.Interval == 0 {
		s.Interval = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	threshold := s.ConsecutiveFailures
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:         name,
		MaxRequests:  1,
		Interval:     s.Interval,
		Timeout:      s.OpenTimeout,
		IsSuccessful: s.IsSuccessful,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Breaker{name: name, cb: cb}
}

// Name returns the guarded service name.
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current circuit state as a string.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Do runs fn under the breaker. Rejections are reported as ErrOpen.
func Do[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T

	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%s: %w", b.name, ErrOpen)
		}
		return zero, err
	}

	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
