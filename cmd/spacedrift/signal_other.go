//go:build !unix

package main

import "os"

func pauseSignals() []os.Signal { return nil }
