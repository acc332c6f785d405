// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/mylo-lang/mylo-dap/internal/config"
	"github.com/mylo-lang/mylo-dap/internal/issue"
	"github.com/mylo-lang/mylo-dap/internal/launch"
	"github.com/mylo-lang/mylo-dap/internal/launchfile"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const fileURIScheme = "file"

// resolveOptions holds the `resolve` flag values. Zero values defer to the
// application configuration.
type resolveOptions struct {
	launchFile       string
	name             string
	workspaceFolders []string
	executable       string
	minimal          bool
	fullContext      bool
	format           string
}

// newResolveCommand creates the `mylo-dap resolve` command.
func newResolveCommand(app *App) *cobra.Command {
	var opts resolveOptions

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the launch descriptor for a launch configuration",
		Long: `Resolve a launch configuration into the invocation of the mylo debug adapter.

The configuration is read from --config, or from stdin when the flag is
absent or "-". Both JSON (comments and trailing commas allowed) and CUE are
accepted. A document with a "configurations" list is treated as launch.json:
only entries with "type": "mylo" (or no type) are considered, and --name
selects one of them.

In full-context mode the adapter is started with --dap, the merged
environment and the resolved working directory. In minimal mode it is
started with --debug and inherits everything else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), app, opts)
		},
	}

	resolveCmd.Flags().StringVarP(&opts.launchFile, "config", "c", "", `launch configuration file ("-" for stdin)`)
	resolveCmd.Flags().StringVarP(&opts.name, "name", "n", "", "name of the configuration to use (default: the first mylo configuration)")
	resolveCmd.Flags().StringArrayVarP(&opts.workspaceFolders, "workspace-folder", "w", nil, "workspace folder path or file:// URI (repeatable, first one is the primary)")
	resolveCmd.Flags().StringVar(&opts.executable, "executable", "", "mylo executable (overrides the configured one)")
	resolveCmd.Flags().BoolVar(&opts.minimal, "minimal", false, "resolve in minimal mode (--debug, no env or cwd)")
	resolveCmd.Flags().BoolVar(&opts.fullContext, "full-context", false, "resolve in full-context mode (--dap with env and cwd)")
	resolveCmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, toml or shell (default from config)")
	resolveCmd.MarkFlagsMutuallyExclusive("minimal", "full-context")

	return resolveCmd
}

func runResolve(ctx context.Context, app *App, opts resolveOptions) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	resolver := cfg.Resolver()
	if opts.executable != "" {
		resolver.Executable = opts.executable
	}
	switch {
	case opts.minimal:
		resolver.FullContext = false
	case opts.fullContext:
		resolver.FullContext = true
	}

	format := cfg.Output.Format
	if opts.format != "" {
		format = config.OutputFormat(opts.format)
	}
	if valid, errs := format.IsValid(); !valid {
		return &ExitError{Code: ExitFailure, Err: errors.Join(errs...)}
	}

	folders, err := workspaceFolderPaths(opts.workspaceFolders)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	session, err := loadSession(app, opts)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	if ignored := resolver.IgnoredOverrides(session); len(ignored) > 0 {
		app.logger.Warn("minimal mode ignores session settings",
			"configuration", session.Name(),
			"ignored", strings.Join(ignored, ","))
	}

	host := launch.HostContextFromEnviron(app.Environ(), folders)
	desc, err := resolver.Resolve(session, host)
	if err != nil {
		return missingProgramError(session, err)
	}

	app.logger.Debug("resolved launch descriptor",
		"configuration", session.Name(),
		"mode", desc.Mode,
		"executable", desc.Executable,
		"cwd", desc.Dir)

	return writeDescriptor(app.stdout, desc, format)
}

// loadSession reads the launch document named by opts and selects one
// configuration from it.
func loadSession(app *App, opts resolveOptions) (launch.SessionConfig, error) {
	path := opts.launchFile
	if path == "" {
		path = launchfile.StdinPath
	}
	resource := path
	if path == launchfile.StdinPath {
		resource = "<stdin>"
	}

	file, err := launchfile.Load(path, app.stdin)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return launch.SessionConfig{}, issue.NewErrorContext().
				WithOperation("read launch configuration").
				WithResource(resource).
				WithIssue(issue.LaunchFileNotFoundId).
				WithSuggestion("Check the --config path").
				Wrap(err).
				BuildError()
		}
		return launch.SessionConfig{}, issue.NewErrorContext().
			WithOperation("parse launch configuration").
			WithResource(resource).
			WithIssue(issue.LaunchFileParseErrorId).
			Wrap(err).
			BuildError()
	}

	if file.Skipped > 0 {
		app.logger.Debug("skipped non-mylo configurations", "file", resource, "count", file.Skipped)
	}

	session, err := file.Select(opts.name)
	if err != nil {
		errCtx := issue.NewErrorContext().
			WithOperation("select launch configuration").
			WithResource(resource).
			WithIssue(issue.ConfigurationNotFoundId).
			Wrap(err)
		if names := file.Names(); len(names) > 0 {
			errCtx.WithSuggestion("Available configurations: " + strings.Join(names, ", "))
		}
		return launch.SessionConfig{}, errCtx.BuildError()
	}

	return session, nil
}

func missingProgramError(session launch.SessionConfig, err error) error {
	if !errors.Is(err, launch.ErrMissingProgram) {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return &ExitError{
		Code: ExitMissingProgram,
		Err: issue.NewErrorContext().
			WithOperation("resolve launch descriptor").
			WithResource(session.Name()).
			WithIssue(issue.MissingProgramId).
			WithSuggestion(`Set "program" to the mylo file to debug`).
			Wrap(err).
			BuildError(),
	}
}

// workspaceFolderPaths converts workspace folders given as file:// URIs to
// filesystem paths. Other values are returned unchanged.
func workspaceFolderPaths(folders []string) ([]string, error) {
	paths := make([]string, 0, len(folders))
	for _, folder := range folders {
		path, err := workspaceFolderPath(folder)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func workspaceFolderPath(folder string) (string, error) {
	if !strings.HasPrefix(folder, fileURIScheme+"://") {
		return folder, nil
	}

	u, err := url.Parse(folder)
	if err != nil {
		return "", fmt.Errorf("invalid workspace folder URI %q: %w", folder, err)
	}

	path := u.Path
	// file:///c:/src carries a Windows drive letter after the leading slash.
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	if u.Host != "" && u.Host != "localhost" {
		path = "//" + u.Host + path
	}
	return filepath.FromSlash(path), nil
}

// writeDescriptor prints desc to w in the given format.
func writeDescriptor(w io.Writer, desc *launch.Descriptor, format config.OutputFormat) error {
	var (
		out []byte
		err error
	)

	switch format {
	case config.OutputFormatTOML:
		out, err = toml.Marshal(desc)
	case config.OutputFormatShell:
		var line string
		line, err = desc.CommandLine()
		out = []byte(line + "\n")
	default:
		out, err = json.MarshalIndent(desc, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode launch descriptor as %s: %w", format, err)
	}

	_, err = w.Write(out)
	return err
}
