package game

import (
	"time"

	"mini-raster/internal/config"
)

// spinWindow is how close to the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces a loop to a frame cap read fresh on every Wait, so the
// cap can change while running.
type FPSLimiter struct {
	limit   func() int
	next    time.Time
	hitches int
}

// NewFPSLimiter paces to config.GetFPSLimit.
func NewFPSLimiter() *FPSLimiter {
	return NewFPSLimiterFunc(config.GetFPSLimit)
}

// NewFPSLimiterFunc paces to whatever limit returns; 0 or less is unlimited.
func NewFPSLimiterFunc(limit func() int) *FPSLimiter {
	return &FPSLimiter{limit: limit}
}

// Hitches counts frames that ran more than a whole frame late and forced
// the schedule to restart.
func (f *FPSLimiter) Hitches() int { return f.hitches }

// Wait blocks until the next frame is due and returns how long it waited.
func (f *FPSLimiter) Wait() time.Duration {
	limit := f.limit()
	if limit <= 0 {
		f.next = time.Time{}
		return 0
	}
	frame := time.Second / time.Duration(limit)

	start := time.Now()
	if f.next.IsZero() {
		f.next = start.Add(frame)
	} else {
		f.next = f.next.Add(frame)
	}

	// sleep most of the way, spin the rest
	if remaining := time.Until(f.next); remaining > spinWindow {
		time.Sleep(remaining - spinWindow)
	}
	for time.Now().Before(f.next) {
	}

	if late := time.Since(f.next); late > frame {
		f.hitches++
		f.next = time.Now().Add(frame)
	}
	return time.Since(start)
}
