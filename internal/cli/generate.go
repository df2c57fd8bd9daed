package cli

import (
	"fmt"
	"os"

	"github.com/casadocs/prlog/internal/changelog"
	"github.com/casadocs/prlog/internal/progress"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the change log report",
	Long: `Run the pipeline once and write the change log report.

The three exports are read in full, correlated by line number, parsed and
filtered. The report is only written when every record parses; on any error
the previous report is left untouched.

Examples:
  prlog generate                                  # Use .prlog.yml or defaults
  prlog generate -o docs/changelog.rst            # Different output file
  prlog generate --dates export/dates.txt         # Override one input
  prlog generate -o -                             # Print the report instead`,
	Args:         noArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	generateCmd.GroupID = GroupPipeline
	rootCmd.AddCommand(generateCmd)

	addSourceFlags(generateCmd)
	addOutputFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts := pipelineOptions(cfg)

	if cfg.WritesToStdout() {
		res, err := changelog.Build(opts)
		if err != nil {
			return err
		}
		return res.Document.Render(cmd.OutOrStdout())
	}

	if runFlags.quiet {
		_, err := changelog.Generate(opts)
		return err
	}

	ind := progress.NewIndicator(cmd.OutOrStdout(), outputCapabilities(cmd))
	ind.Start("Generating " + cfg.OutputFile)
	res, err := changelog.Generate(opts)
	if err != nil {
		ind.Failure("Nothing written to " + cfg.OutputFile)
		return err
	}

	entries := len(res.Document.Records)
	ind.Success(fmt.Sprintf("Wrote %d %s (%d skipped) to %s",
		entries, plural(entries, "entry", "entries"), res.Skipped(), cfg.OutputFile))
	return nil
}

// outputCapabilities reports the terminal features of the command's output.
// Output redirected to anything but a file is treated as a plain stream.
func outputCapabilities(cmd *cobra.Command) progress.TerminalCapabilities {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return progress.DetectTerminalCapabilities(f)
	}
	return progress.TerminalCapabilities{}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
