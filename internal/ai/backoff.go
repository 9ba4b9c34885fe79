package ai

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffFunc returns the delay before retry k, counted from 0.
type BackoffFunc func(retry int) time.Duration

// Exponential waits base * 2^k before retry k. There is no jitter and no cap;
// a delay too large for time.Duration saturates at its maximum.
func Exponential(base time.Duration) BackoffFunc {
	return func(retry int) time.Duration {
		if retry < 0 {
			retry = 0
		}
		if base <= 0 {
			return 0
		}
		if retry >= 63 || base > time.Duration(math.MaxInt64>>uint(retry)) {
			return time.Duration(math.MaxInt64)
		}
		return base << uint(retry)
	}
}

// Constant waits d before every retry.
func Constant(d time.Duration) BackoffFunc {
	return func(int) time.Duration { return d }
}

// WithCap limits every delay produced by b to limit.
func WithCap(b BackoffFunc, limit time.Duration) BackoffFunc {
	return func(retry int) time.Duration {
		d := b(retry)
		if d > limit {
			return limit
		}
		return d
	}
}

// WithJitter spreads each delay of b uniformly over [d*(1-fraction), d].
// rnd returns values in [0,1); nil uses math/rand/v2.
func WithJitter(b BackoffFunc, fraction float64, rnd func() float64) BackoffFunc {
	if rnd == nil {
		rnd = rand.Float64
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return func(retry int) time.Duration {
		d := b(retry)
		return d - time.Duration(float64(d)*fraction*rnd())
	}
}
