// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the kash command line.
package cmd
