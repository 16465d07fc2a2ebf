// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
)

// discardInterrupts catches keyboard signals so they reach the foreground
// child but never terminate the interpreter. Caught signals are restored to
// their default disposition in children, unlike ignored ones.
// The returned function restores default handling.
func discardInterrupts(logger *log.Logger) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, interruptSignals...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigChan:
				logger.Debug("discarded signal", "signal", sig)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
