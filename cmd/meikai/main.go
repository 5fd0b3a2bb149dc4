package main

import (
	"os"
	"runtime"

	"github.com/bnema/meikai/internal/bootstrap"
	"github.com/bnema/meikai/internal/cli/cmd"
	"github.com/bnema/meikai/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// Keep main on the thread the toolkit will be initialized on.
	runtime.LockOSThread()
}

func main() {
	info := build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}

	// GTK must own the main thread, so browse runs before cobra.
	if len(os.Args) > 1 && os.Args[1] == "browse" && !wantsHelp(os.Args[2:]) {
		var url string
		if len(os.Args) > 2 {
			url = os.Args[2]
		}
		os.Args = os.Args[:1]
		os.Exit(bootstrap.RunGUI(bootstrap.GUIOptions{URL: url, BuildInfo: info}))
	}

	cmd.SetBuildInfo(info)
	cmd.Execute()
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}
