package core

import "time"

// FixedStep converts elapsed wall-clock time into simulation steps at a steady
// steps-per-second rate, independent of how often it is polled.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// maxCatchUp bounds the steps owed after a stall (window drag, breakpoint).
const maxCatchUp = 1000

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(sps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(sps)
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.step = time.Second / time.Duration(sps)
}

// Restart forgets any accumulated time.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Due reports how many steps should run since the previous call.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
	}
	return n
}
