// Package clock provides the time sources that drive the tick loop.
package clock

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNegativeDelta = errors.New("negative time delta")

// Source exposes cumulative elapsed seconds and the delta of the current tick.
type Source interface {
	Elapsed() float64
	Delta() float64
}

// Manual is advanced explicitly by the host or by tests.
type Manual struct {
	mu      sync.RWMutex
	elapsed float64
	delta   float64
}

func NewManual() *Manual {
	return &Manual{}
}

// Advance moves the clock forward by dt seconds and makes dt the current delta.
func (m *Manual) Advance(dt float64) error {
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed += dt
	m.delta = dt
	return nil
}

// Set jumps to an absolute elapsed time with the given delta.
func (m *Manual) Set(elapsed, delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed = elapsed
	m.delta = delta
}

func (m *Manual) Elapsed() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.elapsed
}

func (m *Manual) Delta() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.delta
}

// Frame is a wall clock sampled once per frame. Time spent paused is not counted
// and a single delta never exceeds MaxDelta.
type Frame struct {
	mu       sync.RWMutex
	now      func() time.Time
	last     time.Time
	elapsed  time.Duration
	delta    time.Duration
	maxDelta time.Duration
	paused   bool
}

// NewFrame creates a frame clock. maxDelta <= 0 disables the cap.
func NewFrame(maxDelta time.Duration) *Frame {
	return newFrame(time.Now, maxDelta)
}

func newFrame(now func() time.Time, maxDelta time.Duration) *Frame {
	return &Frame{now: now, last: now(), maxDelta: maxDelta}
}

// Tick samples the wall clock and returns the new delta.
func (f *Frame) Tick() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	d := now.Sub(f.last)
	f.last = now
	if f.paused || d < 0 {
		d = 0
	}
	if f.maxDelta > 0 && d > f.maxDelta {
		d = f.maxDelta
	}
	f.delta = d
	f.elapsed += d
	return d
}

func (f *Frame) Pause() {
	f.mu.Lock()
	f.paused = true
	f.mu.Unlock()
}

func (f *Frame) Resume() {
	f.mu.Lock()
	f.paused = false
	f.last = f.now()
	f.mu.Unlock()
}

func (f *Frame) IsPaused() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.paused
}

func (f *Frame) Elapsed() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.elapsed.Seconds()
}

func (f *Frame) Delta() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.delta.Seconds()
}
