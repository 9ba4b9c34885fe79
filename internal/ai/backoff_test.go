package ai

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	b := Exponential(time.Second)

	for k := 0; k <= 4; k++ {
		assert.Equal(t, time.Duration(1<<k)*1000*time.Millisecond, b(k), "retry %d", k)
	}
	assert.Equal(t, 32*time.Second, b(5), "no cap")
	assert.Equal(t, time.Second, b(-1), "negative retry treated as first")
}

func TestExponential_SaturatesInsteadOfOverflowing(t *testing.T) {
	b := Exponential(time.Second)

	assert.Equal(t, time.Duration(1<<33)*time.Second, b(33))
	for _, k := range []int{34, 40, 62, 63, 64, 1000} {
		assert.Equal(t, time.Duration(math.MaxInt64), b(k), "retry %d", k)
	}
	assert.Equal(t, time.Duration(0), Exponential(0)(10))
}

func TestConstant(t *testing.T) {
	b := Constant(3 * time.Second)
	assert.Equal(t, 3*time.Second, b(0))
	assert.Equal(t, 3*time.Second, b(9))
}

func TestWithCap(t *testing.T) {
	b := WithCap(Exponential(time.Second), 5*time.Second)

	assert.Equal(t, time.Second, b(0))
	assert.Equal(t, 4*time.Second, b(2))
	assert.Equal(t, 5*time.Second, b(3))
	assert.Equal(t, 5*time.Second, b(10))
}

func TestWithJitter(t *testing.T) {
	t.Run("max jitter draw halves the delay", func(t *testing.T) {
		b := WithJitter(Constant(10*time.Second), 0.5, func() float64 { return 1 })
		assert.Equal(t, 5*time.Second, b(0))
	})

	t.Run("zero draw keeps the delay", func(t *testing.T) {
		b := WithJitter(Constant(10*time.Second), 0.5, func() float64 { return 0 })
		assert.Equal(t, 10*time.Second, b(0))
	})

	t.Run("fraction is clamped", func(t *testing.T) {
		b := WithJitter(Constant(10*time.Second), 3, func() float64 { return 1 })
		assert.Equal(t, time.Duration(0), b(0))
	})

	t.Run("default source stays in range", func(t *testing.T) {
		b := WithJitter(Exponential(time.Second), 0.25, nil)
		for i := 0; i < 50; i++ {
			d := b(2)
			assert.GreaterOrEqual(t, d, 3*time.Second)
			assert.LessOrEqual(t, d, 4*time.Second)
		}
	})
}
