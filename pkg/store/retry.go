package store

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Retrying wraps a Persister and retries failed saves with exponential
// backoff. Encoding failures are never retried. Loads go straight through.
type Retrying[R any] struct {
	inner    Persister[R]
	maxTries uint
	interval time.Duration
	logger   Logger
}

// RetryOption configures a Retrying persister.
type RetryOption func(*retryOptions)

type retryOptions struct {
	logger Logger
}

// WithRetryLogger reports each failed attempt to logger.
func WithRetryLogger(logger Logger) RetryOption {
	return func(o *retryOptions) {
		o.logger = logger
	}
}

// NewRetrying allows up to retries extra save attempts, the first one after
// interval. retries <= 0 disables retrying.
func NewRetrying[R any](inner Persister[R], retries int, interval time.Duration, opts ...RetryOption) *Retrying[R] {
	o := retryOptions{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if retries < 0 {
		retries = 0
	}
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Retrying[R]{
		inner:    inner,
		maxTries: uint(retries) + 1,
		interval: interval,
		logger:   o.logger,
	}
}

// Target returns the wrapped persister's target.
func (r *Retrying[R]) Target() string { return r.inner.Target() }

// Load delegates to the wrapped persister.
func (r *Retrying[R]) Load() ([]R, error) { return r.inner.Load() }

// Save retries the wrapped Save until it succeeds or the attempts run out.
// The last error is returned unchanged.
func (r *Retrying[R]) Save(records []R) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.interval
	b.MaxInterval = 20 * r.interval

	attempt := 0
	_, err := backoff.Retry(context.Background(), func() (struct{}, error) {
		attempt++
		err := r.inner.Save(records)
		if err == nil {
			return struct{}{}, nil
		}
		if IsEncodeError(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		r.logger.Warnf("save to %s failed (attempt %d of %d): %v", r.inner.Target(), attempt, r.maxTries, err)
		return struct{}{}, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(r.maxTries))
	return err
}
