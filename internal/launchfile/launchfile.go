// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mylo-lang/mylo-dap/internal/launch"
	"github.com/mylo-lang/mylo-dap/pkg/cueutil"
)

const (
	// DebuggerType is the launch.json "type" that targets mylo.
	DebuggerType = "mylo"

	// StdinPath is the path argument that selects standard input.
	StdinPath = "-"

	configurationsKey = "configurations"
)

//go:embed launch_schema.cue
var schema []byte

var (
	// ErrNoConfigurations is returned when a launch file has no mylo configurations.
	ErrNoConfigurations = errors.New("no mylo launch configurations")
	// ErrConfigurationNotFound is the sentinel error wrapped by ConfigurationNotFoundError.
	ErrConfigurationNotFound = errors.New("launch configuration not found")
)

type (
	// File is a parsed launch document.
	File struct {
		// Path is where the document was read from ("-" for stdin).
		Path string
		// Configurations are the mylo configurations in document order.
		Configurations []launch.SessionConfig
		// Skipped counts configurations targeting other debuggers.
		Skipped int
	}

	// ConfigurationNotFoundError is returned when no configuration has the
	// requested name. It wraps ErrConfigurationNotFound.
	ConfigurationNotFoundError struct {
		Name      string
		Available []string
	}
)

// Error implements the error interface for ConfigurationNotFoundError.
func (e *ConfigurationNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("launch configuration %q not found", e.Name)
	}
	return fmt.Sprintf("launch configuration %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Unwrap returns ErrConfigurationNotFound for errors.Is() compatibility.
func (e *ConfigurationNotFoundError) Unwrap() error { return ErrConfigurationNotFound }

// Load reads a launch document from path, or from stdin when path is "-".
func Load(path string, stdin io.Reader) (*File, error) {
	if path == StdinPath {
		return Read(stdin, "<stdin>")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read launch file: %w", err)
	}
	return Parse(data, path)
}

// Read parses a launch document from r. The name is used in error messages.
func Read(r io.Reader, name string) (*File, error) {
	data, err := io.ReadAll(io.LimitReader(r, cueutil.DefaultMaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	f, err := Parse(data, name)
	if err != nil {
		return nil, err
	}
	f.Path = StdinPath
	return f, nil
}

// Parse validates data against the launch schema and collects its mylo
// configurations. A document without a configurations list is a single
// configuration.
func Parse(data []byte, filename string) (*File, error) {
	doc, err := cueutil.Decode[map[string]any](schema, data, "#LaunchFile", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}

	f := &File{Path: filename}

	list, ok := (*doc)[configurationsKey]
	if !ok {
		single, err := cueutil.Decode[map[string]any](schema, data, "#Configuration", cueutil.WithFilename(filename))
		if err != nil {
			return nil, err
		}
		f.add(*single)
		return f, nil
	}

	entries, _ := list.([]any)
	for _, entry := range entries {
		raw, _ := entry.(map[string]any)
		f.add(raw)
	}
	return f, nil
}

func (f *File) add(raw map[string]any) {
	cfg := launch.ParseSessionConfig(raw)
	if t := cfg.Type(); t != "" && t != DebuggerType {
		f.Skipped++
		return
	}
	f.Configurations = append(f.Configurations, cfg)
}

// Names returns the names of the mylo configurations, skipping unnamed ones.
func (f *File) Names() []string {
	var names []string
	for _, cfg := range f.Configurations {
		if cfg.Name() != "" {
			names = append(names, cfg.Name())
		}
	}
	return names
}

// Select returns the configuration called name, or the first configuration
// when name is empty.
func (f *File) Select(name string) (launch.SessionConfig, error) {
	if len(f.Configurations) == 0 {
		return launch.SessionConfig{}, fmt.Errorf("%s: %w", f.Path, ErrNoConfigurations)
	}
	if name == "" {
		return f.Configurations[0], nil
	}
	for _, cfg := range f.Configurations {
		if cfg.Name() == name {
			return cfg, nil
		}
	}
	return launch.SessionConfig{}, &ConfigurationNotFoundError{Name: name, Available: f.Names()}
}
