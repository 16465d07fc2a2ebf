// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates configuration documents against CUE schemas and
// formats CUE errors with JSON-path prefixes.
package cueutil
