package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information.",
	Long: `Print the release version together with the git commit, build timestamp
and Go runtime the binary was compiled with. Include this output when
reporting a problem.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("burnlens %s\n", version)
		cmd.Printf("  commit:  %s\n", commit)
		cmd.Printf("  built:   %s\n", date)
		cmd.Printf("  runtime: %s\n", runtime.Version())
	},
}
