// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"typi-cli/internal/config"
	"typi-cli/internal/issue"

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

	// update overwrites an already-installed package version
	update bool
	// listInstalled lists cached packages instead of installing
	listInstalled bool
	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg *config.Config

	// rootCmd represents the base command; typi has no subcommands.
	rootCmd = &cobra.Command{
		Use:   "typi [source]",
		Short: "Install Typst packages into the local cache",
		Long: TitleStyle.Render("typi") + SubtitleStyle.Render(" - Install Typst packages into the local cache") + `

typi installs a Typst package so it can be imported as
@local/<name>:<version>. It reads the package's typst.toml, follows
#import, image(...) and read(...) references from the entrypoint, and
copies the resulting file closure into the local package cache.

Sources can be a package directory or a git repository (git+<url>),
which is shallow-cloned into a temporary directory for the install.

` + SubtitleStyle.Render("Examples:") + `
  typi path/to/package          Install the package at the given path
  typi git+https://git.host/u/pkg.git   Install straight from a repository
  typi -u path/to/package      Reinstall even if already cached
  typi -l                       List installed packages`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.Flags().BoolVarP(&update, "update", "u", false, "overwrite the package if it is already installed")
	rootCmd.Flags().BoolVarP(&listInstalled, "list", "l", false, "list installed packages and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/typi/config.toml)")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// runRoot dispatches between the listing mode and the install flow.
// A given path wins over --list, as the original interface did.
func runRoot(c *cobra.Command, args []string) error {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// The cache root exists before anything consults it.
	if err := os.MkdirAll(cfg.CacheRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", cfg.CacheRoot, err)
	}

	if len(args) == 0 {
		if listInstalled {
			return runList(c, cfg)
		}
		return errors.New("argument 'path' must be specified")
	}

	return runInstall(c, cfg, args[0])
}

// initRootConfig reads in the config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors carry suggestions; verbose mode shows the full chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
