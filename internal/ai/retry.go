package ai

import (
	"context"
	"fmt"
	"time"
)

// Retry defaults matching the deck tool's schedule: one attempt plus five
// retries, waiting 1s, 2s, 4s, 8s and 16s.
const (
	DefaultMaxRetries = 5
	DefaultBaseDelay  = time.Second
)

// State is a position in the retry state machine:
//
//	Idle -> Attempting -> Success
//	                   -> Backoff -> Attempting
//	                   -> Exhausted
type State int

const (
	StateIdle State = iota
	StateAttempting
	StateBackoff
	StateSuccess
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttempting:
		return "attempting"
	case StateBackoff:
		return "backoff"
	case StateSuccess:
		return "success"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// RetryConfig configures exponential backoff retry behavior.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	// Zero means a single attempt.
	MaxRetries int
	// BaseDelay seeds the default Exponential backoff (default 1s).
	BaseDelay time.Duration
	// Backoff returns the wait before retry k (0-indexed). Nil uses
	// Exponential(BaseDelay).
	Backoff BackoffFunc
	// Retryable decides whether an error may be retried. Nil retries
	// every error.
	Retryable func(error) bool
	// Sleep waits between attempts. Nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error

	OnRetry func(attempt int, delay time.Duration, err error)
	OnState func(state State, attempt int)
}

// DefaultRetryConfig returns the 5-retry, 1s-base exponential policy.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
	}
}

func (cfg RetryConfig) withDefaults() RetryConfig {
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Backoff == nil {
		cfg.Backoff = Exponential(cfg.BaseDelay)
	}
	if cfg.Retryable == nil {
		cfg.Retryable = RetryAll
	}
	if cfg.Sleep == nil {
		cfg.Sleep = SleepContext
	}
	return cfg
}

func (cfg RetryConfig) enter(state State, attempt int) {
	if cfg.OnState != nil {
		cfg.OnState(state, attempt)
	}
}

// RetryWithBackoff runs fn until it succeeds, the retry budget is spent, an
// error is rejected by cfg.Retryable, or ctx is cancelled during a wait.
// Delays: Backoff(0), Backoff(1), ... which by default is BaseDelay,
// BaseDelay*2, BaseDelay*4, ...
func RetryWithBackoff(ctx context.Context, cfg RetryConfig, fn func() error) error {
	cfg = cfg.withDefaults()
	cfg.enter(StateIdle, 0)

	for attempt := 0; ; attempt++ {
		cfg.enter(StateAttempting, attempt)

		err := fn()
		if err == nil {
			cfg.enter(StateSuccess, attempt)
			return nil
		}

		if !cfg.Retryable(err) {
			cfg.enter(StateExhausted, attempt)
			return fmt.Errorf("non-retryable failure on attempt %d: %w", attempt+1, err)
		}

		if attempt >= cfg.MaxRetries {
			cfg.enter(StateExhausted, attempt)
			return fmt.Errorf("max retries (%d) exceeded: %w", cfg.MaxRetries, err)
		}

		delay := cfg.Backoff(attempt)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, delay, err)
		}

		cfg.enter(StateBackoff, attempt)
		if err := cfg.Sleep(ctx, delay); err != nil {
			return err
		}
	}
}

// Retry is RetryWithBackoff for operations that produce a value. The value
// of the successful attempt is returned; on failure the zero value is.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(context.Context) (T, error)) (T, error) {
	var result T
	err := RetryWithBackoff(ctx, cfg, func() error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// SleepContext waits for d or until ctx is done, returning ctx.Err() in the
// latter case.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
