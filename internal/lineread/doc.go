// SPDX-License-Identifier: MPL-2.0

// Package lineread acquires one line of input per prompt cycle.
//
// Two readers implement the Reader interface: StreamReader wraps any io.Reader
// with a growable buffer and is used for pipes, files and tests; TerminalReader
// drives an interactive line editor (github.com/chzyer/readline) with history
// when the input is a terminal. New picks between them.
//
// Both readers report exhausted input as io.EOF with an empty line, which is
// distinct from an empty line that was terminated by the user.
package lineread
