// SPDX-License-Identifier: MPL-2.0

// Package shell runs the interactive read, tokenize, dispatch loop.
//
// A Dispatcher routes one tokenized command line either to a builtin or to
// the process launcher. A Shell drives the Dispatcher from a line reader
// until a builtin asks to terminate or input ends.
package shell
