package agent

import (
	"context"
	"errors"
	"net"
	"strings"

	"book-curator/backend/internal/breaker"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrMissingAPIKey is returned when a completion client is built without a key.
	ErrMissingAPIKey = errors.New("completion API key is not set")
	// ErrEmptyCompletion is returned when the model answered with no text.
	ErrEmptyCompletion = errors.New("completion returned no text")
)

// Failure classes used in logs and metrics
const (
	outcomeSuccess     = "success"
	outcomeTimeout     = "timeout"
	outcomeQuota       = "quota"
	outcomeCircuitOpen = "circuit_open"
	outcomeUpstream    = "upstream"
)

// classifyError tags a completion failure for logs and metrics.
func classifyError(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if errors.Is(err, breaker.ErrOpen) {
		return outcomeCircuitOpen
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return outcomeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return outcomeTimeout
	}
	if isRateLimitError(err) {
		return outcomeQuota
	}
	return outcomeUpstream
}

// isRateLimitError checks for provider quota errors (gRPC ResourceExhausted or HTTP 429).
func isRateLimitError(err error) bool {
	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "ResourceExhausted") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
