// SPDX-License-Identifier: MPL-2.0

// Package config handles mylo-dap configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/mylo-dap/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/mylo-dap/config.cue on
// macOS, %APPDATA%\mylo-dap\config.cue on Windows) and validated against the
// embedded config_schema.cue. MYLO_DAP_* environment variables override file
// values, e.g. MYLO_DAP_EXECUTABLE or MYLO_DAP_OUTPUT_FORMAT.
//
// The settings choose the deployment of the launch resolver: which adapter
// executable to start and whether to run it in full-context or minimal mode.
package config
