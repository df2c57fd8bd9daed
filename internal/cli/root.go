// Package cli implements the prlog command line.
package cli

import (
	"fmt"

	"github.com/casadocs/prlog/internal/changelog"
	"github.com/casadocs/prlog/internal/config"
	clierrors "github.com/casadocs/prlog/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Command groups shown in help output.
const (
	GroupPipeline = "pipeline"
	GroupSetup    = "setup"
)

var (
	configPath string
	verbose    bool

	logger = zap.NewNop()
)

// pipelineFlags holds the per-run overrides shared by the commands that
// execute the pipeline.
type pipelineFlags struct {
	baseline         string
	pullRequests     string
	dates            string
	builds           string
	output           string
	excludeComponent string
	noteField        string
	quiet            bool
}

var runFlags pipelineFlags

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"baseline":          "baseline_file",
	"pull-requests":     "pull_requests_file",
	"dates":             "dates_file",
	"builds":            "builds_file",
	"output":            "output_file",
	"exclude-component": "exclude_component",
	"note-field":        "note_field",
}

var rootCmd = &cobra.Command{
	Use:   "prlog",
	Short: "Generate the pull request change log",
	Long: `prlog builds the pull request change log from three line-aligned exports:

  pull requests  one JSON record per line, after a header line
  dates          one git-style date per pull request line
  builds         one ref decoration per pull request line

Line N of each export describes the same pull request. Records whose only
component is Verification are left out. The report is written as
reStructuredText, replacing the previous output file.

Running prlog without a subcommand is the same as 'prlog generate'.`,
	Args:              noArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPipeline, Title: "Pipeline Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .prlog.yml in the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline diagnostics to stderr")

	addSourceFlags(rootCmd)
	addOutputFlags(rootCmd)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine(),
			fmt.Sprintf("Run '%s --help' for the list of flags", cmd.CommandPath()))
	})
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		clierrors.FprintError(rootCmd.ErrOrStderr(), clierrors.FromPipeline(err))
	}
	return err
}

// initLogger builds the zap logger: warnings only by default, debug output
// with --verbose.
func initLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l.Named("prlog")
	return nil
}

// noArgs rejects positional arguments with an argument error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	}
	return nil
}

func addSourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&runFlags.baseline, "baseline", "", "File whose first line is the baseline version")
	f.StringVar(&runFlags.pullRequests, "pull-requests", "", "Pull request metadata export")
	f.StringVar(&runFlags.dates, "dates", "", "Dates export")
	f.StringVar(&runFlags.builds, "builds", "", "Builds export")
	f.StringVar(&runFlags.excludeComponent, "exclude-component", "", "Drop records whose only component is this")
	f.StringVar(&runFlags.noteField, "note-field", "", "Metadata field under 'fields' holding the note")
}

func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&runFlags.output, "output", "o", "", "Report path, overwritten on success ('-' for stdout)")
	f.BoolVarP(&runFlags.quiet, "quiet", "q", false, "Do not print the summary line")
}

// loadConfig loads configuration and applies the flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	overrides := make(map[string]any)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ConfigPath: configPath,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger.Debug("configuration loaded",
		zap.String("config_file", cfg.ConfigFile),
		zap.Int("overrides", len(overrides)))
	return cfg, nil
}

// pipelineOptions translates configuration into pipeline options.
func pipelineOptions(cfg *config.Configuration) changelog.Options {
	return changelog.Options{
		Paths: changelog.SourcePaths{
			Baseline:     cfg.BaselineFile,
			PullRequests: cfg.PullRequestsFile,
			Dates:        cfg.DatesFile,
			Builds:       cfg.BuildsFile,
		},
		Output:           cfg.OutputFile,
		ExcludeComponent: cfg.ExcludeComponent,
		NoteField:        cfg.NoteField,
		Logger:           logger,
	}
}
