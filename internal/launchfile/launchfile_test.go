// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const vscodeLaunch = `{
	// Use IntelliSense to learn about possible attributes.
	"version": "0.2.0",
	"configurations": [
		{
			"type": "node",
			"request": "launch",
			"name": "Other debugger",
			"program": "index.js",
		},
		{
			"type": "mylo",
			"request": "launch",
			"name": "Debug main",
			"program": "/src/main.mylo",
			"cwd": "/src",
			"env": {"MYLO_TRACE": "1", "PORT": 8080},
		},
		{
			"type": "mylo",
			"request": "launch",
			"name": "Debug tests",
			"program": "/src/tests.mylo",
		},
	],
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestParse_LaunchFile(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(vscodeLaunch), "launch.json")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if len(f.Configurations) != 2 {
		t.Fatalf("len(Configurations) = %d, want 2", len(f.Configurations))
	}
	if f.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", f.Skipped)
	}
	if got, want := f.Names(), []string{"Debug main", "Debug tests"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	first := f.Configurations[0]
	if first.Program() != "/src/main.mylo" {
		t.Errorf("Program() = %q", first.Program())
	}
	if first.Cwd() != "/src" {
		t.Errorf("Cwd() = %q", first.Cwd())
	}
	env := first.Env()
	if env["MYLO_TRACE"] != "1" || env["PORT"] != "8080" {
		t.Errorf("Env() = %v, want MYLO_TRACE=1 PORT=8080", env)
	}
}

func TestParse_SingleConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		filename    string
		data        string
		wantProgram string
	}{
		{name: "json", filename: "session.json", data: `{"program": "/a/b.mylo", "stopOnEntry": true}`, wantProgram: "/a/b.mylo"},
		{name: "cue", filename: "session.cue", data: "program: \"/a/b.mylo\"\ncwd: \"/work\"\n", wantProgram: "/a/b.mylo"},
		{name: "empty object", filename: "empty.json", data: `{}`, wantProgram: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(tt.data), tt.filename)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			cfg, err := f.Select("")
			if err != nil {
				t.Fatalf("Select() error: %v", err)
			}
			if cfg.Program() != tt.wantProgram {
				t.Errorf("Program() = %q, want %q", cfg.Program(), tt.wantProgram)
			}
		})
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		contains string
	}{
		{name: "program not a string", data: `{"program": 42}`, contains: "program"},
		{name: "nested program not a string", data: `{"configurations": [{"program": ["x"]}]}`, contains: "configurations[0].program"},
		{name: "env value object", data: `{"program": "/p", "env": {"A": {"B": "c"}}}`, contains: "env.A"},
		{name: "configurations not a list", data: `{"configurations": "nope"}`, contains: "configurations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), "bad.json")
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should contain %q", err.Error(), tt.contains)
			}
			if !strings.HasPrefix(err.Error(), "bad.json") {
				t.Errorf("error %q should start with the file name", err.Error())
			}
		})
	}
}

func TestFile_Select(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(vscodeLaunch), "launch.json")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	cfg, err := f.Select("Debug tests")
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if cfg.Program() != "/src/tests.mylo" {
		t.Errorf("Program() = %q, want /src/tests.mylo", cfg.Program())
	}

	cfg, err = f.Select("")
	if err != nil {
		t.Fatalf("Select(\"\") error: %v", err)
	}
	if cfg.Name() != "Debug main" {
		t.Errorf("Select(\"\") picked %q, want first mylo configuration", cfg.Name())
	}

	_, err = f.Select("Other debugger")
	if !errors.Is(err, ErrConfigurationNotFound) {
		t.Fatalf("Select() error = %v, want ErrConfigurationNotFound", err)
	}
	var nfErr *ConfigurationNotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("Select() error type = %T", err)
	}
	if !slices.Equal(nfErr.Available, []string{"Debug main", "Debug tests"}) {
		t.Errorf("Available = %v", nfErr.Available)
	}
}

func TestFile_SelectNoConfigurations(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(`{"version": "0.2.0", "configurations": [{"type": "go", "program": "x"}]}`), "launch.json")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	_, err = f.Select("")
	if !errors.Is(err, ErrNoConfigurations) {
		t.Errorf("Select() error = %v, want ErrNoConfigurations", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "launch.json", vscodeLaunch)
	f, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Path != path {
		t.Errorf("Path = %q, want %q", f.Path, path)
	}
	if len(f.Configurations) != 2 {
		t.Errorf("len(Configurations) = %d, want 2", len(f.Configurations))
	}
}

func TestLoad_Stdin(t *testing.T) {
	t.Parallel()

	f, err := Load(StdinPath, strings.NewReader(`{"program": "/from/stdin.mylo"}`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if f.Path != StdinPath {
		t.Errorf("Path = %q, want %q", f.Path, StdinPath)
	}
	if got := f.Configurations[0].Program(); got != "/from/stdin.mylo" {
		t.Errorf("Program() = %q", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
