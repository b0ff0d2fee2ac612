// Package ticker implements the fixed-period cooperative task scheduler used
// by the firmware-adjacent control loop (spec component H).
package ticker

import (
	"time"

	"github.com/google/uuid"
)

// Callback is invoked once per elapsed period. delta is the time elapsed
// between the previous call to Tick (or the task's creation, for the first
// Tick) and the Tick making this invocation; every invocation made by the
// same Tick receives the same delta. count is the number of times the
// callback has fired before this call.
type Callback func(delta time.Duration, count uint64)

// Task holds a period, an accumulator, and a user callback. Repeatedly
// calling Tick with an advancing clock fires the callback once for every
// whole period elapsed, draining the accumulator rather than dropping
// missed periods — a burst of delay is made up with back-to-back callback
// invocations on the next Tick, not silently absorbed.
//
// The zero Task (no callback) is a no-op on Tick; there is no package-level
// singleton or global clock, unlike the firmware original this is ported
// from, so that callers can run as many independent tasks as they need and
// drive them from whatever clock (wall, simulated, replayed) fits their use.
type Task struct {
	id       uuid.UUID
	callback Callback
	period   time.Duration
	lastTime time.Duration
	accum    time.Duration
	count    uint64
}

// NewTask constructs a Task with the given period and callback, with its
// internal clock initialized to now (the caller's choice of time base — wall
// clock, simulation time, or a recorded frame timestamp). Each Task is
// assigned a fresh identifier so a caller juggling many tasks (logging,
// metrics, cancellation bookkeeping) can tell them apart without having to
// invent its own naming scheme.
func NewTask(now, period time.Duration, callback Callback) *Task {
	return &Task{
		id:       uuid.New(),
		callback: callback,
		period:   period,
		lastTime: now,
	}
}

// ID returns the task's identifier. The zero Task has the nil UUID.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Tick advances the task's clock to now, adds the time elapsed since the
// last call to Tick (or since construction, for the first call) to the
// accumulator, and fires the callback once for every whole period the
// accumulator holds. Any remainder carries over to the next call.
func (t *Task) Tick(now time.Duration) {
	if t.callback == nil {
		return
	}

	delta := now - t.lastTime
	t.accum += delta
	deltaSinceLastTick := delta
	t.lastTime = now

	for t.accum >= t.period {
		t.callback(deltaSinceLastTick, t.count)
		t.accum -= t.period
		t.count++
	}
}
