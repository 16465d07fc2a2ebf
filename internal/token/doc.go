// SPDX-License-Identifier: MPL-2.0

// Package token splits a command line into whitespace-delimited tokens.
//
// The delimiter set is space, tab, carriage return, newline and bell. Runs of
// delimiters collapse into a single split point, so no empty token is ever
// produced. There are no quoting, escaping or substitution rules: every token is
// an exact substring of the input line.
package token
