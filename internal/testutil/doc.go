// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate.
//
// The env helpers (MustSetenv, MustUnsetenv) and MustChdir return a cleanup
// function that restores the previous state; tests using them must not call
// t.Parallel.
package testutil
