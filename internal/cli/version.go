package cli

import (
	"fmt"
	"runtime"

	"github.com/casadocs/prlog/internal/build"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information",
	Long:    "Display version, commit, build date, and Go version information for prlog",
	Example: `  # Show version info
  prlog version

  # Plain output (for scripts)
  prlog version --plain`,
	Args: noArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionPlain {
			printPlainVersion(cmd)
			return
		}
		printPrettyVersion(cmd)
	},
}

func init() {
	versionCmd.GroupID = GroupSetup
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "prlog %s\n", build.Version)
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func printPrettyVersion(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", bold("prlog"), build.Version)
	if build.IsDevBuild() {
		fmt.Fprintln(w, dim("development build"))
	}
	fmt.Fprintf(w, "  %-9s %s\n", "commit", build.Commit)
	fmt.Fprintf(w, "  %-9s %s\n", "built", build.BuildDate)
	fmt.Fprintf(w, "  %-9s %s %s/%s\n", "go", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
