// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"maps"
	"slices"
	"testing"
)

const testExe = "/opt/mylo/bin/mylo"

func testHost(folders ...string) HostContext {
	return HostContext{
		Env:              map[string]string{"PATH": "/usr/bin", "HOME": "/home/dev", "FOO": "host"},
		WorkspaceFolders: folders,
	}
}

func TestResolve_FullContextNoCwdNoFolders(t *testing.T) {
	t.Parallel()

	r := Resolver{Executable: testExe, FullContext: true}
	host := testHost()

	d, err := r.Resolve(ParseSessionConfig(map[string]any{"program": "/a/b.mylo"}), host)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if d.Executable != testExe {
		t.Errorf("Executable = %q, want %q", d.Executable, testExe)
	}
	if want := []string{"--dap", "/a/b.mylo"}; !slices.Equal(d.Args, want) {
		t.Errorf("Args = %v, want %v", d.Args, want)
	}
	if d.Dir != "" {
		t.Errorf("Dir = %q, want inherited (empty)", d.Dir)
	}
	if !maps.Equal(d.Env, host.Env) {
		t.Errorf("Env = %v, want host env %v", d.Env, host.Env)
	}
	if d.Mode != ModeFullContext {
		t.Errorf("Mode = %q, want %q", d.Mode, ModeFullContext)
	}
}

func TestResolve_FullContextWithCwdAndEnv(t *testing.T) {
	t.Parallel()

	r := Resolver{Executable: testExe, FullContext: true}
	host := testHost("/ws/one")
	cfg := ParseSessionConfig(map[string]any{
		"program": "/a/b.mylo",
		"cwd":     "/work",
		"env":     map[string]any{"FOO": "1"},
	})

	d, err := r.Resolve(cfg, host)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if want := []string{"--dap", "/a/b.mylo"}; !slices.Equal(d.Args, want) {
		t.Errorf("Args = %v, want %v", d.Args, want)
	}
	if d.Dir != "/work" {
		t.Errorf("Dir = %q, want %q", d.Dir, "/work")
	}
	want := map[string]string{"PATH": "/usr/bin", "HOME": "/home/dev", "FOO": "1"}
	if !maps.Equal(d.Env, want) {
		t.Errorf("Env = %v, want %v", d.Env, want)
	}
	if host.Env["FOO"] != "host" {
		t.Errorf("host env was modified: FOO = %q", host.Env["FOO"])
	}
}

func TestResolve_Minimal(t *testing.T) {
	t.Parallel()

	r := Resolver{Executable: testExe, FullContext: false}
	cfg := ParseSessionConfig(map[string]any{
		"program": "/a/b.mylo",
		"cwd":     "/work",
		"env":     map[string]any{"FOO": "1"},
	})

	d, err := r.Resolve(cfg, testHost("/ws/one"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if want := []string{"--debug", "/a/b.mylo"}; !slices.Equal(d.Args, want) {
		t.Errorf("Args = %v, want %v", d.Args, want)
	}
	if !d.InheritsEnv() {
		t.Errorf("Env = %v, want inherited (nil)", d.Env)
	}
	if !d.InheritsDir() {
		t.Errorf("Dir = %q, want inherited (empty)", d.Dir)
	}
	if d.Mode != ModeMinimal {
		t.Errorf("Mode = %q, want %q", d.Mode, ModeMinimal)
	}
}

func TestResolve_MissingProgram(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "empty config", raw: map[string]any{}},
		{name: "nil config", raw: nil},
		{name: "empty program", raw: map[string]any{"program": ""}},
		{name: "null program", raw: map[string]any{"program": nil}},
		{name: "object program", raw: map[string]any{"program": map[string]any{"path": "/a"}}},
		{name: "boolean program", raw: map[string]any{"program": false}},
		{name: "numeric program", raw: map[string]any{"program": 0}},
		{name: "only cwd and env", raw: map[string]any{"cwd": "/work", "env": map[string]any{"A": "1"}}},
	}

	for _, fullContext := range []bool{true, false} {
		r := Resolver{Executable: testExe, FullContext: fullContext}
		for _, tt := range tests {
			t.Run(tt.name+"/"+r.Mode().String(), func(t *testing.T) {
				t.Parallel()

				d, err := r.Resolve(ParseSessionConfig(tt.raw), testHost("/ws"))
				if d != nil {
					t.Errorf("Resolve() descriptor = %+v, want nil", d)
				}
				if !errors.Is(err, ErrMissingProgram) {
					t.Fatalf("Resolve() error = %v, want ErrMissingProgram", err)
				}
				var mpErr *MissingProgramError
				if !errors.As(err, &mpErr) {
					t.Errorf("Resolve() error type = %T, want *MissingProgramError", err)
				}
			})
		}
	}
}

func TestResolve_NonStringCwdFallsBackToWorkspace(t *testing.T) {
	t.Parallel()

	r := Resolver{Executable: testExe, FullContext: true}
	cfg := ParseSessionConfig(map[string]any{"program": "/a.mylo", "cwd": false})

	d, err := r.Resolve(cfg, testHost("/ws"))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if d.Dir != "/ws" {
		t.Errorf("Dir = %q, want %q", d.Dir, "/ws")
	}
}

func TestResolve_MissingProgramCarriesName(t *testing.T) {
	t.Parallel()

	r := Resolver{Executable: testExe, FullContext: true}
	_, err := r.Resolve(ParseSessionConfig(map[string]any{"name": "Debug main"}), HostContext{})

	var mpErr *MissingProgramError
	if !errors.As(err, &mpErr) {
		t.Fatalf("Resolve() error = %v, want *MissingProgramError", err)
	}
	if mpErr.Name != "Debug main" {
		t.Errorf("Name = %q, want %q", mpErr.Name, "Debug main")
	}
	want := `no program specified in launch configuration "Debug main"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestResolve_DescriptorsAreIndependent(t *testing.T) {
	t.Parallel()

	r := Resolver{Executable: testExe, FullContext: true}
	host := testHost()
	cfg := ParseSessionConfig(map[string]any{"program": "/a/b.mylo"})

	first, err := r.Resolve(cfg, host)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	first.Env["INJECTED"] = "x"
	first.Args[1] = "/changed"

	second, err := r.Resolve(cfg, host)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if _, ok := second.Env["INJECTED"]; ok {
		t.Error("mutating one descriptor's env leaked into the next")
	}
	if _, ok := host.Env["INJECTED"]; ok {
		t.Error("mutating a descriptor's env leaked into the host env")
	}
	if second.Args[1] != "/a/b.mylo" {
		t.Errorf("Args[1] = %q, want %q", second.Args[1], "/a/b.mylo")
	}
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode Mode
		want bool
	}{
		{mode: ModeFullContext, want: true},
		{mode: ModeMinimal, want: false},
		{mode: "", want: true},
		{mode: "bogus", want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()
			r := NewResolver(testExe, tt.mode)
			if r.FullContext != tt.want {
				t.Errorf("NewResolver(%q).FullContext = %v, want %v", tt.mode, r.FullContext, tt.want)
			}
			if r.Executable != testExe {
				t.Errorf("Executable = %q, want %q", r.Executable, testExe)
			}
		})
	}
}

func TestResolver_IgnoredOverrides(t *testing.T) {
	t.Parallel()

	cfg := NewSessionConfig("/a/b.mylo", "/work", map[string]string{"A": "1"})

	if got := (Resolver{FullContext: true}).IgnoredOverrides(cfg); got != nil {
		t.Errorf("full-context IgnoredOverrides() = %v, want nil", got)
	}
	if got := (Resolver{}).IgnoredOverrides(cfg); !slices.Equal(got, []string{KeyCwd, KeyEnv}) {
		t.Errorf("minimal IgnoredOverrides() = %v, want [cwd env]", got)
	}
	if got := (Resolver{}).IgnoredOverrides(NewSessionConfig("/a", "", nil)); len(got) != 0 {
		t.Errorf("minimal IgnoredOverrides() without overrides = %v, want empty", got)
	}
}
