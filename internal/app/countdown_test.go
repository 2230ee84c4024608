package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForTickers(t *testing.T, clock *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, n), "expected exactly %d live tickers", n)
}

func TestCountdown_TicksEveryInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var ticks atomic.Int32
	c := NewCountdown(clock, time.Second, func(<-chan struct{}) { ticks.Add(1) })

	require.True(t, c.Start())
	assert.True(t, c.Running())
	waitForTickers(t, clock, 1)

	for i := int32(1); i <= 3; i++ {
		clock.Advance(time.Second)
		assert.Eventually(t, func() bool { return ticks.Load() == i }, time.Second, time.Millisecond)
	}

	c.Stop()
}

func TestCountdown_StartTwiceKeepsOneTicker(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var ticks atomic.Int32
	c := NewCountdown(clock, time.Second, func(<-chan struct{}) { ticks.Add(1) })

	require.True(t, c.Start())
	assert.False(t, c.Start())
	waitForTickers(t, clock, 1)

	clock.Advance(time.Second)
	assert.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)
	assert.Never(t, func() bool { return ticks.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)

	c.Stop()
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var ticks atomic.Int32
	c := NewCountdown(clock, time.Second, func(<-chan struct{}) { ticks.Add(1) })

	assert.False(t, c.Stop(), "stopping a countdown that never started")

	require.True(t, c.Start())
	waitForTickers(t, clock, 1)
	assert.True(t, c.Stop())
	assert.False(t, c.Stop())
	assert.False(t, c.Running())

	waitForTickers(t, clock, 0)
	clock.Advance(5 * time.Second)
	assert.Never(t, func() bool { return ticks.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestCountdown_Restart(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var ticks atomic.Int32
	c := NewCountdown(clock, time.Second, func(<-chan struct{}) { ticks.Add(1) })

	require.True(t, c.Start())
	require.True(t, c.Stop())
	waitForTickers(t, clock, 0)

	require.True(t, c.Start())
	waitForTickers(t, clock, 1)
	clock.Advance(time.Second)
	assert.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, time.Millisecond)

	c.Stop()
}

func TestCountdown_StopClosesRunChannel(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan (<-chan struct{}), 1)
	c := NewCountdown(clock, time.Second, func(stop <-chan struct{}) { fired <- stop })

	require.True(t, c.Start())
	waitForTickers(t, clock, 1)
	clock.Advance(time.Second)

	var stop <-chan struct{}
	select {
	case stop = <-fired:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
	select {
	case <-stop:
		t.Fatal("stop closed while running")
	default:
	}

	require.True(t, c.Stop())
	select {
	case <-stop:
	default:
		t.Fatal("stop still open after Stop")
	}
}
