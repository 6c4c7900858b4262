package main

import (
	"github.com/zeusync/spacedrift/internal/core/clock"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
)

// togglePause flips the frame clock between paused and running.
// Time spent paused is not added to the simulation.
func togglePause(frames *clock.Frame, logger log.Log) bool {
	if frames.IsPaused() {
		frames.Resume()
		logger.Info("Simulation resumed", log.Float64("elapsed", frames.Elapsed()))
		return false
	}
	frames.Pause()
	logger.Info("Simulation paused", log.Float64("elapsed", frames.Elapsed()))
	return true
}
