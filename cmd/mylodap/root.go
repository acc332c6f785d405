// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the mylo-dap command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mylo-dap",
		Short: "Resolve launch configurations for the mylo debug adapter",
		Long: TitleStyle.Render("mylo-dap") + SubtitleStyle.Render(" - launch descriptors for the mylo debugger") + `

mylo-dap reads a debug launch configuration, either a single configuration
object or a launch.json with a "configurations" list, and prints how the
mylo debug adapter has to be started for it: executable, arguments,
environment and working directory.

` + SubtitleStyle.Render("Examples:") + `
  mylo-dap resolve --config .vscode/launch.json --workspace-folder .
  echo '{"program": "main.mylo"}' | mylo-dap resolve --format shell
  mylo-dap resolve --config launch.json --name "Debug tests" --minimal
  mylo-dap config show`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.setVerbose(app.verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configFile, "config-file", "", "config file (default is $XDG_CONFIG_HOME/mylo-dap/config.cue)")

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(newResolveCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(ExitFailure)
	}
	slog.SetDefault(app.Logger())

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}
