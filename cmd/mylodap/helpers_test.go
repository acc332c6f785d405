// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

type testEnv struct {
	app    *App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	cfgDir string
}

// newTestApp builds an App reading stdin from the given string, seeing
// environ as the host environment and using an empty config directory.
func newTestApp(t *testing.T, stdin string, environ ...string) *testEnv {
	t.Helper()

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		cfgDir: t.TempDir(),
	}
	app, err := NewApp(Dependencies{
		Environ:   func() []string { return environ },
		ConfigDir: env.cfgDir,
		Stdin:     strings.NewReader(stdin),
		Stdout:    env.stdout,
		Stderr:    env.stderr,
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	env.app = app
	return env
}

func (e *testEnv) run(args ...string) error {
	root := NewRootCommand(e.app)
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
