// Package cmd provides Cobra CLI commands for meikai.
package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/meikai/internal/cli"
	"github.com/bnema/meikai/internal/domain/build"
	"github.com/spf13/cobra"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "meikai",
		Short: "A multi-window browser shell",
		Long: `Meikai - a browser where every page gets its own window.

Each window pairs a small title bar (back, forward, reload, address and
window buttons) with the page itself. Links that open new windows become
new meikai windows; sign-in pop-ups stay attached to the page that
opened them.

Use 'meikai browse' to open the launcher, or 'meikai browse <url>' to
open a page directly.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			app = cli.NewApp(buildInfo)
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// browseCmd is a placeholder for help - actual execution is in main.go
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the graphical shell",
	Long: `Launch the GTK4 shell.

Without a URL the launcher panel opens. With a URL a browser window opens
on it directly.

Examples:
  meikai browse                        # Open the launcher
  meikai browse https://example.com    # Open a window on a page`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
