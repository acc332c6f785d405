// SPDX-License-Identifier: MPL-2.0

// Package launchfile reads mylo session configurations from disk or stdin.
//
// Two document shapes are accepted, in JSON (comments allowed) or CUE:
//
//	{"version": "0.2.0", "configurations": [{"type": "mylo", "name": "Debug", "program": "main.mylo"}]}
//	{"program": "main.mylo", "cwd": "/work"}
//
// Both are validated against the embedded launch_schema.cue. Editor variables
// such as ${workspaceFolder} are not substituted; the editor is expected to
// hand over resolved values.
package launchfile
