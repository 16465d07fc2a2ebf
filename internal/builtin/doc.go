// SPDX-License-Identifier: MPL-2.0

// Package builtin provides the commands kash executes in-process.
//
// A Registry is an ordered, immutable table built once at startup. Lookup uses
// exact, case-sensitive name comparison in registration order and the first
// match wins. Every builtin receives the full token sequence, with the command
// name at index zero, and returns a Status telling the interactive loop whether
// to keep prompting.
//
// The standard table (Default) holds:
//   - cd: change the process working directory
//   - exit: stop the interpreter
//   - help: describe the builtins
package builtin
