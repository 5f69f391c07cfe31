package ticker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerDeliversWhileArmed(t *testing.T) {
	source := New()
	var count atomic.Int64

	source.Arm(func() { count.Add(1) }, 5*time.Millisecond)
	require.True(t, source.Armed())
	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)

	source.Disarm()
	assert.False(t, source.Armed())

	// Give a racing tick time to land, then make sure nothing else arrives.
	time.Sleep(20 * time.Millisecond)
	settled := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, count.Load())
}

func TestTickerRearmReplacesCallback(t *testing.T) {
	source := New()
	var first, second atomic.Int64

	source.Arm(func() { first.Add(1) }, 5*time.Millisecond)
	require.Eventually(t, func() bool { return first.Load() >= 1 }, time.Second, time.Millisecond)

	source.Arm(func() { second.Add(1) }, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	settled := first.Load()
	require.Eventually(t, func() bool { return second.Load() >= 2 }, time.Second, time.Millisecond)
	assert.Equal(t, settled, first.Load())

	source.Disarm()
	source.Disarm()
}

func TestManual(t *testing.T) {
	source := NewManual()
	assert.Zero(t, source.Fire(3))

	calls := 0
	source.Arm(func() {
		calls++
		if calls == 2 {
			source.Disarm()
		}
	}, time.Second)

	assert.True(t, source.Armed())
	assert.Equal(t, time.Second, source.Period())
	assert.Equal(t, 2, source.Fire(5))
	assert.Equal(t, 2, calls)
	assert.False(t, source.Armed())
	assert.Nil(t, source.Callback())
	assert.Equal(t, 1, source.Arms())
}
