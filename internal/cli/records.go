package cli

import (
	"encoding/json"
	"fmt"

	"github.com/casadocs/prlog/internal/changelog"
	clierrors "github.com/casadocs/prlog/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	recordsFormat string
	recordsAll    bool
	recordsPlain  bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the parsed records without writing the report",
	Long: `Run the pipeline up to filtering and print the records that would be
rendered. Nothing is written to the output file.

Use --all to include the records the filter drops; in text output they are
marked as dropped.

Examples:
  prlog records                   # Colored summary of each record
  prlog records --all --plain     # Include dropped records, no colors
  prlog records --format yaml     # Machine-readable output
  prlog records --format json`,
	Args:         noArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecords(cmd)
	},
}

func init() {
	recordsCmd.GroupID = GroupPipeline
	rootCmd.AddCommand(recordsCmd)

	addSourceFlags(recordsCmd)
	recordsCmd.Flags().StringVarP(&recordsFormat, "format", "f", "text", "Output format: text | yaml | json")
	recordsCmd.Flags().BoolVar(&recordsAll, "all", false, "Include records dropped by the filter")
	recordsCmd.Flags().BoolVar(&recordsPlain, "plain", false, "Plain text output (no colors)")
}

func runRecords(cmd *cobra.Command) error {
	switch recordsFormat {
	case "text", "yaml", "json":
	default:
		return clierrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unknown format %q", recordsFormat),
			"prlog records --format text|yaml|json",
		)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := changelog.Build(pipelineOptions(cfg))
	if err != nil {
		return err
	}

	records := res.Document.Records
	if recordsAll {
		records = res.Extracted
	}

	w := cmd.OutOrStdout()
	switch recordsFormat {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding records: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return nil
	}

	opts := changelog.FormatOptions{Plain: recordsPlain}
	if recordsAll {
		opts.Exclude = cfg.ExcludeComponent
	}
	return changelog.FormatTerminal(records, w, opts)
}
