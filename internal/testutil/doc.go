// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover resource cleanup (MustClose, DeferClose), filesystem fixtures
// (MustMkdirAll, WriteExecutable) and working directory checks (Getwd).
package testutil
