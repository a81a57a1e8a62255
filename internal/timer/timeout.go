package timer

import (
	"context"
	"time"

	"weather-dashboard/internal/apperrors"
)

// DefaultRequestTimeout bounds an outbound call when the caller gives no timeout.
const DefaultRequestTimeout = 10 * time.Second

// Call runs fn under a deadline of d. When the deadline wins, fn's context is
// aborted and the result is an apperrors.TimeoutError, which callers treat as
// any other network failure.
func Call[T any](ctx context.Context, d time.Duration, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	if d <= 0 {
		d = DefaultRequestTimeout
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	abort := AfterFunc(d, cancel)

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		done <- result{v: v, err: err}
	}()

	var zero T
	select {
	case r := <-done:
		if !abort.Cancel() && abort.Fired() {
			return zero, apperrors.Timeout(op)
		}
		if r.err != nil && ctx.Err() != nil {
			return zero, apperrors.Network(op, r.err)
		}
		return r.v, r.err
	case <-ctx.Done():
		if abort.Fired() {
			return zero, apperrors.Timeout(op)
		}
		abort.Cancel()
		return zero, apperrors.Network(op, ctx.Err())
	}
}

// WithTimeout is Call for operations without a result.
func WithTimeout(ctx context.Context, d time.Duration, op string, fn func(ctx context.Context) error) error {
	_, err := Call(ctx, d, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
