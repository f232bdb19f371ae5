package genai

import (
	"context"
	"errors"
	"time"
)

const (
	defaultRetryAttempts = 2
	defaultRetryDelay    = time.Second
)

// RetryingGenerator wraps a Generator with a bounded retry. Only transport
// failures (*GenerationError) are retried; output that arrives but cannot be
// decoded is the caller's problem, not a retry case.
type RetryingGenerator struct {
	inner    Generator
	attempts int
	delay    time.Duration
}

// WithRetry wraps gen with up to attempts tries separated by delay.
func WithRetry(gen Generator, attempts int, delay time.Duration) *RetryingGenerator {
	if attempts < 1 {
		attempts = defaultRetryAttempts
	}
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	return &RetryingGenerator{inner: gen, attempts: attempts, delay: delay}
}

func (r *RetryingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", &GenerationError{Provider: "retry", Err: ctx.Err()}
			case <-time.After(r.delay):
			}
		}

		text, err := r.inner.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}

		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

func (r *RetryingGenerator) IsConfigured() bool {
	return r.inner.IsConfigured()
}
