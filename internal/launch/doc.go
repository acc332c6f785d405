// SPDX-License-Identifier: MPL-2.0

// Package launch turns a debug-session configuration into a launch descriptor
// for the mylo debug adapter.
//
// The resolver validates the configuration, resolves the working directory,
// merges the environment and assembles the argument vector. It is a pure
// function of its inputs: host state (environment, workspace folders) is passed
// in through HostContext and nothing is read from the process.
//
// Two launch modes exist. Full-context mode starts the adapter with --dap and
// forwards the merged environment and resolved working directory. Minimal mode
// starts it with --debug and forwards nothing, so the adapter inherits the
// host's environment and working directory.
package launch
