package willowui

import (
	"math"
)

// Default timing for RepeatButton, in seconds.
const (
	DefaultRepeatDelay    = 0.35
	DefaultRepeatInterval = 0.05
)

// RepeatState is the phase of a RepeatTimer.
type RepeatState uint8

const (
	RepeatIdle      RepeatState = iota // not held
	RepeatWaiting                      // held, delay not yet reached
	RepeatRepeating                    // held past the delay, firing every interval
)

func (s RepeatState) String() string {
	switch s {
	case RepeatIdle:
		return "idle"
	case RepeatWaiting:
		return "waiting"
	case RepeatRepeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// RepeatTimer turns a held condition into a stream of actions: one when the
// hold has lasted Delay seconds, then one every Interval seconds. It consumes
// one elapsed-time value per frame and carries surplus time between frames.
type RepeatTimer struct {
	delay    float64
	interval float64
	held     float64
	state    RepeatState
}

// NewRepeatTimer creates an idle timer. Invalid arguments fall back to
// DefaultRepeatDelay and DefaultRepeatInterval.
func NewRepeatTimer(delay, interval float64) *RepeatTimer {
	t := &RepeatTimer{delay: DefaultRepeatDelay, interval: DefaultRepeatInterval}
	t.SetDelay(delay)
	t.SetInterval(interval)
	return t
}

// Delay returns the hold time before the first action.
func (t *RepeatTimer) Delay() float64 { return t.delay }

// Interval returns the time between repeated actions.
func (t *RepeatTimer) Interval() float64 { return t.interval }

// State returns the current phase.
func (t *RepeatTimer) State() RepeatState { return t.state }

// Accumulated returns the held time not yet consumed by an action.
func (t *RepeatTimer) Accumulated() float64 { return t.held }

// SetDelay sets the hold time before the first action. Negative, NaN and
// infinite values are ignored and the last valid delay is kept.
func (t *RepeatTimer) SetDelay(d float64) {
	if d >= 0 && !math.IsInf(d, 1) {
		t.delay = d
	}
}

// SetInterval sets the time between repeats. Values that are not strictly
// positive and finite are ignored and the last valid interval is kept.
func (t *RepeatTimer) SetInterval(i float64) {
	if i > 0 && !math.IsInf(i, 1) {
		t.interval = i
	}
}

// Reset returns the timer to idle with nothing accumulated.
func (t *RepeatTimer) Reset() {
	t.state = RepeatIdle
	t.held = 0
}

// Update advances the timer by dt seconds and returns how many actions fire
// this frame. A frame with held false resets the timer and fires nothing.
//
// The frame that crosses the delay fires exactly once and carries the surplus
// forward; while repeating, every full interval in the accumulator fires, so
// one long frame can fire several times.
func (t *RepeatTimer) Update(dt float64, held bool) int {
	if !held {
		t.Reset()
		return 0
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	t.held += dt

	switch t.state {
	case RepeatIdle:
		t.state = RepeatWaiting
		fallthrough
	case RepeatWaiting:
		if t.held < t.delay {
			return 0
		}
		t.held -= t.delay
		t.state = RepeatRepeating
		return 1
	}

	fires := 0
	for t.held >= t.interval {
		t.held -= t.interval
		fires++
	}
	return fires
}
