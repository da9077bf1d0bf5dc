package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/markdave123-py/healthsense/internal/core"
)

// Guarded bounds every call to the wrapped provider with a per-attempt timeout
// and retries exactly once when the first failure is transient.
type Guarded struct {
	inner   core.LLMProvider
	timeout time.Duration
	log     *zap.Logger
}

func NewGuarded(inner core.LLMProvider, timeout time.Duration, logger *zap.Logger) *Guarded {
	return &Guarded{inner: inner, timeout: timeout, log: logger.With(zap.String("component", "llm"))}
}

func (g *Guarded) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	out, err := g.attempt(ctx, systemPrompt, userPrompt)
	if err == nil {
		return out, nil
	}
	// The caller gave up; a second attempt cannot help.
	if ctx.Err() != nil || !IsTransient(err) {
		return "", err
	}

	g.log.Warn("llm call failed, retrying once", zap.Error(err))
	out, err = g.attempt(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (g *Guarded) attempt(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	actx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	out, err := g.inner.Generate(actx, systemPrompt, userPrompt)
	g.log.Debug("llm attempt finished", zap.Duration("duration", time.Since(start)), zap.Bool("ok", err == nil))
	return out, err
}

// IsTransient reports whether err is worth one more attempt: a timed-out attempt,
// a throttled or unavailable backend, or a server-side fault.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	switch status.Code(err) {
	case codes.Unavailable, codes.ResourceExhausted, codes.Internal, codes.DeadlineExceeded:
		return true
	}
	return false
}

var _ core.LLMProvider = (*Guarded)(nil)
