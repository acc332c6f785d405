// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mylo-lang/mylo-dap/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `mylo-dap config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mylo-dap configuration",
		Long: `Manage mylo-dap configuration.

Configuration is stored in:
  - Linux: ~/.config/mylo-dap/config.cue
  - macOS: ~/Library/Application Support/mylo-dap/config.cue
  - Windows: %APPDATA%\mylo-dap\config.cue

Every key can be overridden with a MYLO_DAP_* environment variable, for
example MYLO_DAP_EXECUTABLE or MYLO_DAP_OUTPUT_FORMAT.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, source, err := app.loadConfigWithSource(ctx)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	w := app.stdout
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if source != "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), source)
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("executable"), SuccessStyle.Render(cfg.Executable))
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("full_context"), SuccessStyle.Render(fmt.Sprintf("%v", cfg.FullContext)))
	fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("launch mode: "+cfg.LaunchMode().String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("output"))
	fmt.Fprintf(w, "  format: %s\n", SuccessStyle.Render(cfg.Output.Format.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App) error {
	cfgPath, err := config.CreateDefaultConfig(app.loadOptions())
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Configuration file at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(app *App) error {
	cfgPath, err := config.FilePath(app.loadOptions())
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", filepath.Dir(cfgPath))
	fmt.Fprintf(app.stdout, "Config file: %s\n", cfgPath)
	if !fileExists(cfgPath) {
		fmt.Fprintf(app.stdout, "%s\n", WarningStyle.Render("(file does not exist, run 'mylo-dap config init')"))
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
