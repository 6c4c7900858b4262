// Package schedule decides on which ticks a new object is spawned.
package schedule

import (
	"fmt"
	"math"

	"github.com/zeusync/spacedrift/internal/core/space"
)

// Scheduler fires when elapsed time falls in the first Window seconds of every Interval.
// It is stateless: a frame that skips over the band misses that spawn.
type Scheduler struct {
	Interval float64 `json:"interval" yaml:"interval"`
	Window   float64 `json:"window" yaml:"window"`
}

var (
	// Reference fires every 2.5s with a 0.0303s band.
	Reference = Scheduler{Interval: 2.5, Window: 0.0303}
	// Relaxed fires every 3s with a 0.04s band.
	Relaxed = Scheduler{Interval: 3.0, Window: 0.04}
)

// Preset looks up a named scheduler.
func Preset(name string) (Scheduler, error) {
	switch name {
	case "", "reference":
		return Reference, nil
	case "relaxed":
		return Relaxed, nil
	default:
		return Scheduler{}, fmt.Errorf("%w: unknown schedule preset %q", space.ErrConfiguration, name)
	}
}

// New validates and returns a scheduler.
func New(interval, window float64) (Scheduler, error) {
	s := Scheduler{Interval: interval, Window: window}
	return s, s.Validate()
}

func (s Scheduler) Validate() error {
	if !(s.Interval > 0) || math.IsInf(s.Interval, 0) {
		return fmt.Errorf("%w: schedule interval must be positive, got %v", space.ErrConfiguration, s.Interval)
	}
	if !(s.Window >= 0) || s.Window >= s.Interval {
		return fmt.Errorf("%w: schedule window must be in [0, %v), got %v", space.ErrConfiguration, s.Interval, s.Window)
	}
	return nil
}

// IsDue reports whether elapsed mod Interval <= Window.
func (s Scheduler) IsDue(elapsed float64) bool {
	if elapsed < 0 || math.IsNaN(elapsed) {
		return false
	}
	return math.Mod(elapsed, s.Interval) <= s.Window
}
