package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickFiresOncePerPeriod(t *testing.T) {
	var fires []uint64
	task := NewTask(0, 100*time.Millisecond, func(delta time.Duration, count uint64) {
		fires = append(fires, count)
	})

	task.Tick(50 * time.Millisecond)
	assert.Empty(t, fires)

	task.Tick(100 * time.Millisecond)
	assert.Equal(t, []uint64{0}, fires)

	task.Tick(250 * time.Millisecond)
	assert.Equal(t, []uint64{0, 1}, fires)
}

func TestTickPassesElapsedDelta(t *testing.T) {
	var deltas []time.Duration
	task := NewTask(0, 10*time.Millisecond, func(delta time.Duration, count uint64) {
		deltas = append(deltas, delta)
	})

	task.Tick(35 * time.Millisecond)
	require := assert.New(t)
	require.Len(deltas, 3)
	for _, d := range deltas {
		require.Equal(35*time.Millisecond, d)
	}
}

func TestZeroValueTaskIsNoOpOnTick(t *testing.T) {
	var task Task
	assert.NotPanics(t, func() { task.Tick(time.Second) })
}

func TestTickDrainsAccumulatorAcrossCalls(t *testing.T) {
	var count int
	task := NewTask(0, time.Second, func(delta time.Duration, c uint64) {
		count++
	})

	task.Tick(900 * time.Millisecond)
	assert.Equal(t, 0, count)

	task.Tick(1100 * time.Millisecond)
	assert.Equal(t, 1, count)
}
