// Package cancel implements cooperative cancellation of a batch run.
package cancel

import (
	"context"
	"os"
	"sync/atomic"
)

const (
	// MsgShuttingDown is emitted for the first and second interrupt.
	MsgShuttingDown = "shutting down after current operations finish"
	// MsgTerminating is emitted right before the process is terminated.
	MsgTerminating = "forcefully terminating process"

	// forceAfter is the interrupt count that terminates the process.
	forceAfter = 3
)

// Signal is the process-wide quit flag. Workers poll Requested between pairs.
type Signal struct {
	quit       atomic.Bool
	interrupts atomic.Int32

	notify func(msg string)
	exit   func(code int)
}

// New creates a Signal. notify receives the operator messages, exit terminates the process.
// Nil functions default to doing nothing and os.Exit respectively.
func New(notify func(msg string), exit func(code int)) *Signal {
	if notify == nil {
		notify = func(string) {}
	}
	if exit == nil {
		exit = os.Exit
	}
	return &Signal{notify: notify, exit: exit}
}

// Requested reports whether a graceful shutdown was requested.
func (s *Signal) Requested() bool {
	return s.quit.Load()
}

// Request asks the workers to stop after their current pair.
func (s *Signal) Request() {
	s.quit.Store(true)
}

// Interrupt handles one operator interrupt. The first two request a graceful
// shutdown, the third terminates the process with status 1.
func (s *Signal) Interrupt() {
	if s.interrupts.Add(1) < forceAfter {
		s.notify(MsgShuttingDown)
		s.Request()
		return
	}
	s.notify(MsgTerminating)
	s.exit(1)
}

// Watch forwards every value received on signals to Interrupt until ctx is done
// or the channel is closed.
func (s *Signal) Watch(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			s.Interrupt()
		}
	}
}
