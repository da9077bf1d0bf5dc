package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeProvider struct {
	calls atomic.Int32
	fn    func(ctx context.Context, call int32) (string, error)
}

func (f *fakeProvider) Generate(ctx context.Context, _, _ string) (string, error) {
	n := f.calls.Add(1)
	return f.fn(ctx, n)
}

func TestGuarded_SuccessFirstTry(t *testing.T) {
	p := &fakeProvider{fn: func(context.Context, int32) (string, error) { return "hello", nil }}
	g := NewGuarded(p, time.Second, zap.NewNop())

	out, err := g.Generate(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.EqualValues(t, 1, p.calls.Load())
}

func TestGuarded_RetriesTransientOnce(t *testing.T) {
	p := &fakeProvider{fn: func(_ context.Context, call int32) (string, error) {
		if call == 1 {
			return "", &googleapi.Error{Code: http.StatusServiceUnavailable}
		}
		return "second", nil
	}}
	g := NewGuarded(p, time.Second, zap.NewNop())

	out, err := g.Generate(context.Background(), "", "q")
	require.NoError(t, err)
	assert.Equal(t, "second", out)
	assert.EqualValues(t, 2, p.calls.Load())
}

func TestGuarded_GivesUpAfterSecondFailure(t *testing.T) {
	p := &fakeProvider{fn: func(context.Context, int32) (string, error) {
		return "", status.Error(codes.Unavailable, "down")
	}}
	g := NewGuarded(p, time.Second, zap.NewNop())

	_, err := g.Generate(context.Background(), "", "q")
	require.Error(t, err)
	assert.EqualValues(t, 2, p.calls.Load())
}

func TestGuarded_NoRetryOnPermanentError(t *testing.T) {
	p := &fakeProvider{fn: func(context.Context, int32) (string, error) {
		return "", &googleapi.Error{Code: http.StatusBadRequest}
	}}
	g := NewGuarded(p, time.Second, zap.NewNop())

	_, err := g.Generate(context.Background(), "", "q")
	require.Error(t, err)
	assert.EqualValues(t, 1, p.calls.Load())
}

func TestGuarded_AttemptTimeoutIsRetried(t *testing.T) {
	p := &fakeProvider{fn: func(ctx context.Context, call int32) (string, error) {
		if call == 1 {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "late but fine", nil
	}}
	g := NewGuarded(p, 20*time.Millisecond, zap.NewNop())

	out, err := g.Generate(context.Background(), "", "q")
	require.NoError(t, err)
	assert.Equal(t, "late but fine", out)
	assert.EqualValues(t, 2, p.calls.Load())
}

func TestGuarded_CancelledCallerIsNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &fakeProvider{fn: func(context.Context, int32) (string, error) {
		cancel()
		return "", &googleapi.Error{Code: http.StatusTooManyRequests}
	}}
	g := NewGuarded(p, time.Second, zap.NewNop())

	_, err := g.Generate(ctx, "", "q")
	require.Error(t, err)
	assert.EqualValues(t, 1, p.calls.Load())
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "wrapped deadline", err: fmt.Errorf("gemini generate: %w", context.DeadlineExceeded), want: true},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "429", err: &googleapi.Error{Code: http.StatusTooManyRequests}, want: true},
		{name: "wrapped 502", err: fmt.Errorf("gemini generate: %w", &googleapi.Error{Code: http.StatusBadGateway}), want: true},
		{name: "403", err: &googleapi.Error{Code: http.StatusForbidden}, want: false},
		{name: "grpc resource exhausted", err: status.Error(codes.ResourceExhausted, "quota"), want: true},
		{name: "grpc invalid argument", err: status.Error(codes.InvalidArgument, "bad"), want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}
