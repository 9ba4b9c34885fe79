package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSleeper records requested waits and returns immediately, so tests can
// assert on the backoff schedule without spending wall-clock time.
type fakeSleeper struct {
	delays []time.Duration
}

func (f *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	f.delays = append(f.delays, d)
	return ctx.Err()
}

func (f *fakeSleeper) total() time.Duration {
	var sum time.Duration
	for _, d := range f.delays {
		sum += d
	}
	return sum
}

// failN returns an op that fails n times and then succeeds.
func failN(n int, attempts *int) func() error {
	return func() error {
		*attempts++
		if *attempts <= n {
			return errors.New("transient")
		}
		return nil
	}
}

func TestRetryWithBackoff_SucceedsAfterNFailures(t *testing.T) {
	for n := 0; n <= DefaultMaxRetries; n++ {
		sleeper := &fakeSleeper{}
		cfg := DefaultRetryConfig()
		cfg.Sleep = sleeper.Sleep

		attempts := 0
		err := RetryWithBackoff(context.Background(), cfg, failN(n, &attempts))

		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n+1, attempts, "n=%d: should stop retrying after the first success", n)
		assert.Len(t, sleeper.delays, n, "n=%d: one wait per failure", n)
	}
}

func TestRetryWithBackoff_ExhaustsAfterSixAttempts(t *testing.T) {
	sleeper := &fakeSleeper{}
	cfg := DefaultRetryConfig()
	cfg.Sleep = sleeper.Sleep

	attempts := 0
	last := errors.New("attempt 6 failed")
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		if attempts == 6 {
			return last
		}
		return errors.New("fail")
	})

	require.Error(t, err)
	assert.Equal(t, 6, attempts, "1 initial attempt + 5 retries")
	assert.ErrorIs(t, err, last, "final error is propagated")
	assert.Contains(t, err.Error(), "max retries (5) exceeded")
}

func TestRetryWithBackoff_ExponentialSchedule(t *testing.T) {
	sleeper := &fakeSleeper{}
	cfg := DefaultRetryConfig()
	cfg.Sleep = sleeper.Sleep

	_ = RetryWithBackoff(context.Background(), cfg, func() error {
		return errors.New("always fail")
	})

	expected := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
	}
	assert.Equal(t, expected, sleeper.delays)
	assert.Equal(t, 31*time.Second, sleeper.total())
}

func TestRetryWithBackoff_ZeroMaxRetriesMeansSingleAttempt(t *testing.T) {
	sleeper := &fakeSleeper{}
	attempts := 0

	err := RetryWithBackoff(context.Background(), RetryConfig{MaxRetries: 0, Sleep: sleeper.Sleep}, func() error {
		attempts++
		return errors.New("fail")
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, sleeper.delays)
}

func TestRetryWithBackoff_DefaultBaseDelay(t *testing.T) {
	sleeper := &fakeSleeper{}
	cfg := RetryConfig{MaxRetries: 1, Sleep: sleeper.Sleep}

	_ = RetryWithBackoff(context.Background(), cfg, func() error { return errors.New("fail") })

	assert.Equal(t, []time.Duration{DefaultBaseDelay}, sleeper.delays)
}

func TestRetryWithBackoff_CustomBackoff(t *testing.T) {
	sleeper := &fakeSleeper{}
	cfg := RetryConfig{
		MaxRetries: 3,
		Backoff:    Constant(250 * time.Millisecond),
		Sleep:      sleeper.Sleep,
	}

	_ = RetryWithBackoff(context.Background(), cfg, func() error { return errors.New("fail") })

	assert.Equal(t, []time.Duration{250 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond}, sleeper.delays)
}

func TestRetryWithBackoff_OnRetryCallback(t *testing.T) {
	type call struct {
		attempt int
		delay   time.Duration
		err     string
	}
	var calls []call

	cfg := DefaultRetryConfig()
	cfg.MaxRetries = 3
	cfg.Sleep = (&fakeSleeper{}).Sleep
	cfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		calls = append(calls, call{attempt, delay, err.Error()})
	}

	attempts := 0
	_ = RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return errors.New("boom")
	})

	require.Len(t, calls, 3, "no callback after the final attempt")
	for i, c := range calls {
		assert.Equal(t, i, c.attempt)
		assert.Equal(t, time.Duration(1<<i)*time.Second, c.delay)
		assert.Equal(t, "boom", c.err)
	}
}

func TestRetryWithBackoff_CallbackNotCalledOnImmediateSuccess(t *testing.T) {
	called := false
	cfg := DefaultRetryConfig()
	cfg.OnRetry = func(int, time.Duration, error) { called = true }

	err := RetryWithBackoff(context.Background(), cfg, func() error { return nil })

	require.NoError(t, err)
	assert.False(t, called)
}

func TestRetryWithBackoff_StateTransitions(t *testing.T) {
	t.Run("success after one retry", func(t *testing.T) {
		var states []State
		cfg := DefaultRetryConfig()
		cfg.Sleep = (&fakeSleeper{}).Sleep
		cfg.OnState = func(s State, _ int) { states = append(states, s) }

		attempts := 0
		require.NoError(t, RetryWithBackoff(context.Background(), cfg, failN(1, &attempts)))

		assert.Equal(t, []State{StateIdle, StateAttempting, StateBackoff, StateAttempting, StateSuccess}, states)
	})

	t.Run("exhausted", func(t *testing.T) {
		var states []State
		cfg := RetryConfig{MaxRetries: 1, Sleep: (&fakeSleeper{}).Sleep}
		cfg.OnState = func(s State, _ int) { states = append(states, s) }

		require.Error(t, RetryWithBackoff(context.Background(), cfg, func() error { return errors.New("x") }))

		assert.Equal(t, []State{StateIdle, StateAttempting, StateBackoff, StateAttempting, StateExhausted}, states)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "attempting", StateAttempting.String())
	assert.Equal(t, "backoff", StateBackoff.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestRetryWithBackoff_NonRetryableStopsImmediately(t *testing.T) {
	sleeper := &fakeSleeper{}
	cfg := DefaultRetryConfig()
	cfg.Sleep = sleeper.Sleep
	cfg.Retryable = RetryTransient

	attempts := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		attempts++
		return &SchemaError{Problems: []string{"(root): slides is required"}}
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, sleeper.delays)
	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestRetryWithBackoff_ContextCancellation(t *testing.T) {
	t.Run("returns immediately when context cancelled during sleep", func(t *testing.T) {
		cfg := RetryConfig{MaxRetries: 5, BaseDelay: 10 * time.Second}

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		err := RetryWithBackoff(ctx, cfg, func() error { return errors.New("fail") })

		require.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("respects pre-cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		attempts := 0
		err := RetryWithBackoff(ctx, DefaultRetryConfig(), func() error {
			attempts++
			return errors.New("fail")
		})

		assert.Equal(t, context.Canceled, err)
		assert.Equal(t, 1, attempts)
	})
}

func TestRetry_ReturnsValue(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.Sleep = (&fakeSleeper{}).Sleep

	attempts := 0
	got, err := Retry(context.Background(), cfg, func(context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "partial", errors.New("fail")
		}
		return "deck", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "deck", got)
	assert.Equal(t, 3, attempts)
}

func TestRetry_ZeroValueOnFailure(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 1, Sleep: (&fakeSleeper{}).Sleep}

	got, err := Retry(context.Background(), cfg, func(context.Context) (*int, error) {
		n := 7
		return &n, errors.New("fail")
	})

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestSleepContext(t *testing.T) {
	t.Run("waits for the duration", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, SleepContext(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("zero duration returns at once", func(t *testing.T) {
		assert.NoError(t, SleepContext(context.Background(), 0))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, SleepContext(ctx, time.Hour), context.Canceled)
	})
}
