// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the operation that failed, the resource involved
// and remediation hints. Errors that correspond to a catalog entry also carry
// an Id, and the CLI renders that entry's Markdown guidance with glamour.
package issue
