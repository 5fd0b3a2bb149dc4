package cmd

import (
	"fmt"

	"github.com/bnema/meikai/internal/cli/styles"
	"github.com/bnema/meikai/internal/infrastructure/gtkhost"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, commit, toolchain, the compiled-in browser backend and the repository URL.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := styles.NewAboutRenderer(app.Theme).Render(styles.AboutInfo{
		Build:  app.BuildInfo,
		Native: gtkhost.IsNativeAvailable(),
	})
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
