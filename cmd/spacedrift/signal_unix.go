//go:build unix

package main

import (
	"os"
	"syscall"
)

// pauseSignals toggle the simulation clock.
func pauseSignals() []os.Signal {
	return []os.Signal{syscall.SIGUSR1}
}
