package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags; module-aware builds fall back to the
// embedded build info.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the studyplan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("studyplan", resolveVersion())
	},
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
