// SPDX-License-Identifier: MPL-2.0

// Package runtime launches external programs for kash.
//
// NativeRuntime resolves the command name the way a POSIX shell does (names
// containing a slash are taken relative to the working directory, bare names
// are searched on $PATH), starts the program as a child process sharing the
// interpreter's standard streams and blocks until the child exits or is killed
// by a signal. A stopped child keeps the call blocked.
//
// Launch never fails the interpreter. Every outcome, including "not found"
// and spawn failures, is described by a Result.
package runtime
