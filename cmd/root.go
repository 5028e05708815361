// Package cmd provides the CLI commands for apptremind.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/apptremind/internal/cli"
	"github.com/manav03panchal/apptremind/internal/config"
	"github.com/manav03panchal/apptremind/internal/errors"
	"github.com/manav03panchal/apptremind/internal/logging"
	"github.com/manav03panchal/apptremind/internal/output"
	"github.com/manav03panchal/apptremind/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagColor    string
	flagDebug    bool
	flagTemplate string
)

// appCtx is the shared runtime context.
var appCtx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "apptremind",
	Short: "Write appointment reminders from a template",
	Long: `apptremind keeps a list of appointments and writes a reminder for each one
from a message template. The words "time" and "name" in the template are
replaced with the appointment's time and name.

Running apptremind without a subcommand starts the interactive menu.

Examples:
  apptremind
  apptremind --template "Hi name, see you at time"
  apptremind preview --name Ana --time "9 AM" --category interview`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRuntime,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appCtx != nil {
			err := appCtx.Close()
			appCtx = nil
			return err
		}
		return nil
	},
	RunE: runMenu,
}

// setupRuntime applies flags over the default configuration and opens the store.
func setupRuntime(cmd *cobra.Command, args []string) error {
	// Skip initialization for completion and help commands
	if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if appCtx != nil {
		// A previous command failed before its post-run hook.
		appCtx.Close()
	}

	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = flagColor
	}
	if flags.Changed("debug") {
		cfg.Debug = flagDebug
	}
	if flags.Changed("template") {
		cfg.Template = flagTemplate
	}

	if cfg.Debug {
		logging.InitDebug()
	}

	opts := runtime.DefaultOptions()
	opts.Template = cfg.Template
	opts.ColorMode = output.ParseColorMode(cfg.Color)
	opts.Input = cmd.InOrStdin()
	opts.Output = cmd.OutOrStdout()

	var err error
	appCtx, err = runtime.New(opts)
	if err != nil {
		return err
	}
	logging.DebugLog("runtime ready", "color", cfg.Color)
	return nil
}

// runMenu runs the interactive menu until quit or end of input.
func runMenu(cmd *cobra.Command, args []string) error {
	ctx := logging.NewSessionContext(cmd.Context())
	session := cli.NewSession(appCtx.Input, appCtx.CLIFormatter(), appCtx.Manager)
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if errors.IsSystemError(err) {
			logging.Warn("appointment store failed", logging.KeyError, err)
		}
		logging.ErrorContext(ctx, "session failed", logging.KeyError, err)
		return err
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the menu loop at its next prompt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		msg := err.Error()
		if errors.IsUserError(err) {
			msg = errors.FormatError(err)
		}
		os.Stderr.WriteString("Error: " + msg + "\n")
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagTemplate, "template", "",
		"Initial reminder template (default: built-in message)")

	// Add commands
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("apptremind %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}
