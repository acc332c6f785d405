// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

const (
	// ModeFullContext forwards the merged environment and working directory
	// and starts the adapter's DAP entry point.
	ModeFullContext Mode = "full-context"
	// ModeMinimal forwards nothing and starts the plain debug entry point.
	ModeMinimal Mode = "minimal"

	// FlagDAP selects the debug-adapter-protocol entry point of mylo.
	FlagDAP = "--dap"
	// FlagDebug selects the interactive debug entry point of mylo.
	FlagDebug = "--debug"
)

// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
var ErrInvalidMode = errors.New("invalid launch mode")

type (
	// Mode names one of the two launch policies.
	Mode string

	// InvalidModeError is returned when a Mode value is not recognized.
	// It wraps ErrInvalidMode for errors.Is() compatibility.
	InvalidModeError struct {
		Value Mode
	}

	// Descriptor is a ready-to-spawn adapter invocation.
	//
	// A nil Env means the process inherits the host environment unchanged, and
	// an empty Dir means it inherits the host working directory.
	Descriptor struct {
		Mode       Mode              `json:"mode" toml:"mode"`
		Executable string            `json:"executable" toml:"executable"`
		Args       []string          `json:"args" toml:"args"`
		Env        map[string]string `json:"env,omitempty" toml:"env,omitempty"`
		Dir        string            `json:"cwd,omitempty" toml:"cwd,omitempty"`
	}
)

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// IsValid returns whether the Mode is one of the defined launch modes.
func (m Mode) IsValid() (bool, []error) {
	switch m {
	case ModeFullContext, ModeMinimal:
		return true, nil
	default:
		return false, []error{&InvalidModeError{Value: m}}
	}
}

// Flag returns the command-line token that selects the adapter entry point.
func (m Mode) Flag() string {
	if m == ModeMinimal {
		return FlagDebug
	}
	return FlagDAP
}

// Error implements the error interface for InvalidModeError.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid launch mode %q (valid: %s, %s)", e.Value, ModeFullContext, ModeMinimal)
}

// Unwrap returns ErrInvalidMode for errors.Is() compatibility.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// InheritsEnv reports whether the process should inherit the host environment.
func (d *Descriptor) InheritsEnv() bool { return d.Env == nil }

// InheritsDir reports whether the process should inherit the host working directory.
func (d *Descriptor) InheritsDir() bool { return d.Dir == "" }

// Argv returns the full argument vector, executable first.
func (d *Descriptor) Argv() []string {
	return append([]string{d.Executable}, d.Args...)
}

// Environ returns Env as sorted KEY=VALUE pairs, or nil when the environment
// is inherited.
func (d *Descriptor) Environ() []string {
	if d.Env == nil {
		return nil
	}
	out := make([]string, 0, len(d.Env))
	for _, k := range slices.Sorted(maps.Keys(d.Env)) {
		out = append(out, k+"="+d.Env[k])
	}
	return out
}

// CommandLine renders the descriptor as a bash command line. A
// resolved directory becomes a leading cd (with -- so a leading dash is not
// read as an option), and an explicit environment is
// applied with env -i so that it replaces the inherited one.
func (d *Descriptor) CommandLine() (string, error) {
	var parts []string

	if d.Dir != "" {
		dir, err := quote(d.Dir)
		if err != nil {
			return "", err
		}
		parts = append(parts, "cd", "--", dir, "&&")
	}

	if d.Env != nil {
		parts = append(parts, "env", "-i")
		for _, kv := range d.Environ() {
			q, err := quote(kv)
			if err != nil {
				return "", err
			}
			parts = append(parts, q)
		}
	}

	for _, arg := range d.Argv() {
		q, err := quote(arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, q)
	}

	return strings.Join(parts, " "), nil
}

func quote(s string) (string, error) {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("quoting %q: %w", s, err)
	}
	return q, nil
}
