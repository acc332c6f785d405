// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mylo-lang/mylo-dap/internal/config"
	"github.com/mylo-lang/mylo-dap/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra command handler receives an App reference.
	App struct {
		Config  ConfigProvider
		Environ func() []string

		configDir string
		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer

		logHandler *log.Logger
		logger     *slog.Logger

		// global flag values, bound by NewRootCommand
		verbose    bool
		configFile string

		// colorScheme is the glamour style for rendered issues, taken from the
		// loaded configuration.
		colorScheme config.ColorScheme
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		// Environ returns the host environment as KEY=VALUE pairs.
		Environ func() []string
		// ConfigDir overrides the platform configuration directory.
		ConfigDir string
		Stdin     io.Reader
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options. The source
	// returned by LoadWithSource is "" when no file was read.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		LoadWithSource(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Environ == nil {
		deps.Environ = os.Environ
	}

	handler := log.NewWithOptions(deps.Stderr, log.Options{
		Prefix: config.AppName,
		Level:  log.WarnLevel,
	})

	return &App{
		Config:      deps.Config,
		Environ:     deps.Environ,
		configDir:   deps.ConfigDir,
		stdin:       deps.Stdin,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		logHandler:  handler,
		logger:      slog.New(handler),
		colorScheme: config.ColorSchemeAuto,
	}, nil
}

// Logger returns the structured logger writing to the App's stderr.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.configFile,
		ConfigDirPath:  a.configDir,
	}
}

// loadConfig loads the application configuration and applies its UI settings
// to the App. The --verbose flag wins over ui.verbose.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, _, err := a.loadConfigWithSource(ctx)
	return cfg, err
}

// loadConfigWithSource is loadConfig that also reports the file the
// configuration was read from.
func (a *App) loadConfigWithSource(ctx context.Context) (*config.Config, string, error) {
	cfg, source, err := a.Config.LoadWithSource(ctx, a.loadOptions())
	if err != nil {
		return nil, "", err
	}

	a.colorScheme = cfg.UI.ColorScheme
	if cfg.UI.Verbose {
		a.setVerbose(true)
	}

	return cfg, source, nil
}

// setVerbose turns verbose output on. It never turns it off.
func (a *App) setVerbose(verbose bool) {
	if !verbose {
		return
	}
	a.verbose = true
	a.logHandler.SetLevel(log.DebugLevel)
}

// handleError prints err to w. Actionable errors are printed with their
// suggestions followed by the linked catalog entry; anything else falls back
// to fang's default handler.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	ae, ok := issue.Find(err)
	if !ok {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(a.verbose))

	iss := ae.CatalogIssue()
	if iss == nil {
		return
	}
	rendered, renderErr := iss.Render(string(a.colorScheme))
	if renderErr != nil {
		a.logger.Debug("failed to render issue", "issue", iss.Id(), "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}
