// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"maps"
	"strings"

	"github.com/spf13/cast"
)

// Recognized session configuration keys.
const (
	KeyProgram = "program"
	KeyCwd     = "cwd"
	KeyEnv     = "env"
	KeyName    = "name"
	KeyType    = "type"
	KeyRequest = "request"
)

type (
	// SessionConfig is the per-session configuration supplied by the editor.
	// Construct it with ParseSessionConfig or NewSessionConfig; the zero value
	// has no program and fails validation.
	SessionConfig struct {
		program string
		cwd     string
		env     map[string]string
		name    string
		typ     string
		request string
	}

	// HostContext carries the ambient host facts the resolver may consult.
	HostContext struct {
		// Env is the host process environment.
		Env map[string]string
		// WorkspaceFolders are the open workspace folder paths, in editor order.
		WorkspaceFolders []string
	}
)

// NewSessionConfig builds a SessionConfig from already-typed values.
// A nil env means the configuration has no env overrides.
func NewSessionConfig(program, cwd string, env map[string]string) SessionConfig {
	return SessionConfig{
		program: program,
		cwd:     cwd,
		env:     maps.Clone(env),
	}
}

// ParseSessionConfig reads the recognized keys out of a generic mapping, as
// decoded from launch.json. Unknown keys are ignored. A string-valued key
// holding anything other than a string (false, 0, an object) is treated as
// absent, and so is an env value that is not a mapping. Scalar env values are
// stringified.
func ParseSessionConfig(raw map[string]any) SessionConfig {
	var cfg SessionConfig
	cfg.program = optionalString(raw, KeyProgram)
	cfg.cwd = optionalString(raw, KeyCwd)
	cfg.name = optionalString(raw, KeyName)
	cfg.typ = optionalString(raw, KeyType)
	cfg.request = optionalString(raw, KeyRequest)

	// cast would parse a JSON object out of a string; only real mappings count.
	if v, ok := raw[KeyEnv]; ok && v != nil {
		if _, isString := v.(string); !isString {
			if env, err := cast.ToStringMapStringE(v); err == nil {
				cfg.env = maps.Clone(env)
			}
		}
	}

	return cfg
}

func optionalString(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

// Program returns the configured program path, or "" when absent.
func (c SessionConfig) Program() string { return c.program }

// Cwd returns the configured working directory, or "" when absent.
func (c SessionConfig) Cwd() string { return c.cwd }

// Env returns a copy of the configured environment overrides.
// It returns nil when the configuration has no env key.
func (c SessionConfig) Env() map[string]string { return maps.Clone(c.env) }

// HasEnv reports whether the configuration supplies env overrides.
func (c SessionConfig) HasEnv() bool { return c.env != nil }

// Name returns the configuration's display name, if any.
func (c SessionConfig) Name() string { return c.name }

// Type returns the debugger type the configuration targets, if any.
func (c SessionConfig) Type() string { return c.typ }

// Request returns the request kind ("launch", "attach"), if any.
func (c SessionConfig) Request() string { return c.request }

// HostContextFromEnviron builds a HostContext from KEY=VALUE pairs as returned
// by os.Environ. Entries without a separator are skipped. When a name repeats,
// the first occurrence wins, as with getenv.
func HostContextFromEnviron(environ, workspaceFolders []string) HostContext {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		idx := findEnvSeparator(entry)
		if idx == -1 {
			continue
		}
		key := entry[:idx]
		if _, seen := env[key]; seen {
			continue
		}
		env[key] = entry[idx+1:]
	}

	return HostContext{
		Env:              env,
		WorkspaceFolders: append([]string(nil), workspaceFolders...),
	}
}

// findEnvSeparator returns the index of the first '=' that separates a name
// from its value. On Windows, variables such as "=C:" start with '=', so a
// leading '=' is part of the name.
func findEnvSeparator(entry string) int {
	if entry == "" {
		return -1
	}
	idx := strings.IndexByte(entry[1:], '=')
	if idx == -1 {
		return -1
	}
	return idx + 1
}
