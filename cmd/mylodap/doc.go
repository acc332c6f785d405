// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for mylo-dap.
//
// The root command carries the global --verbose and --config-file flags.
// `resolve` turns a launch configuration into a launch descriptor for the
// mylo debug adapter, and `config` inspects or creates the application
// configuration file.
package cmd
