// SPDX-License-Identifier: MPL-2.0

//go:build unix

package cmd

import (
	"os"
	"syscall"
)

var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGQUIT}
