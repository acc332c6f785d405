// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE parsing steps shared by the launch-file and
// configuration loaders:
//
//  1. Compile the embedded schema and look up its root definition
//  2. Compile the user document and unify it with that definition
//  3. Validate, then decode into a Go value
//
// # Usage
//
//	//go:embed launch_schema.cue
//	var schema []byte
//
//	doc, err := cueutil.Decode[map[string]any](schema, data, "#LaunchFile",
//	    cueutil.WithFilename(".vscode/launch.json"))
//	if err != nil {
//	    return nil, err // names the file and the offending field
//	}
//
// JSON is a subset of CUE, so launch.json files (including their // comments)
// go through the same path as .cue files.
package cueutil
