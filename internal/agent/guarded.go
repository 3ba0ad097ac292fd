package agent

import (
	"context"
	"errors"
	"time"

	"book-curator/backend/internal/agent/deps"
	"book-curator/backend/internal/breaker"
	"book-curator/backend/internal/logging"
	"book-curator/backend/internal/metrics"
)

// DefaultCompletionTimeout bounds a single completion call
const DefaultCompletionTimeout = 30 * time.Second

// GuardedCompleter bounds every call with a timeout and a circuit breaker.
// It makes exactly one attempt per call.
type GuardedCompleter struct {
	next    deps.Completer
	service string
	timeout time.Duration
	breaker *breaker.Breaker
}

// NewGuardedCompleter wraps next. service names the provider in logs and metrics.
func NewGuardedCompleter(service string, next deps.Completer, timeout time.Duration) *GuardedCompleter {
	if timeout <= 0 {
		timeout = DefaultCompletionTimeout
	}
	return &GuardedCompleter{
		next:    next,
		service: service,
		timeout: timeout,
		breaker: breaker.New(service+"-api", breaker.Settings{
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrEmptyCompletion)
			},
		}),
	}
}

// Complete implements deps.Completer.
func (g *GuardedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	text, err := breaker.Do(g.breaker, func() (string, error) {
		return g.next.Complete(ctx, prompt)
	})
	took := time.Since(start)

	outcome := classifyError(err)
	metrics.UpstreamDuration.WithLabelValues(g.service).Observe(took.Seconds())
	metrics.UpstreamRequests.WithLabelValues(g.service, outcome).Inc()

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("service", g.service).
			Str("outcome", outcome).
			Dur("took", took).
			Msg("[COMPLETION] Request failed")
		return "", err
	}

	logging.Ctx(ctx).Debug().
		Str("service", g.service).
		Int("chars", len(text)).
		Dur("took", took).
		Msg("[COMPLETION] Request completed")
	return text, nil
}
