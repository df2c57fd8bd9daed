package cli

import (
	"fmt"
	"os"

	"github.com/casadocs/prlog/internal/config"
	clierrors "github.com/casadocs/prlog/internal/errors"
	"github.com/casadocs/prlog/internal/progress"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage prlog configuration",
	Long: `Manage prlog configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags (--dates, --output, ...)
  2. Environment variables (PRLOG_*)
  3. Config file (--config, or .prlog.yml / .prlog.yaml / .prlog.json)
  4. Built-in defaults`,
	Example: `  # Show the effective configuration
  prlog config show

  # Write a commented default config
  prlog config init`,
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the effective configuration as YAML",
	Args:         noArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default config file",
	Long: `Write a commented default config file (default: .prlog.yml).
An existing file is only replaced with --force.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigFile
		if len(args) == 1 {
			path = args[0]
		}
		return runConfigInit(cmd, path)
	},
}

func init() {
	configCmd.GroupID = GroupSetup
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)

	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
}

func runConfigShow(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	w := cmd.OutOrStdout()
	if cfg.ConfigFile != "" {
		fmt.Fprintf(w, "# source: %s\n", cfg.ConfigFile)
	} else {
		fmt.Fprintln(w, "# source: defaults")
	}
	_, err = w.Write(out)
	return err
}

func runConfigInit(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return clierrors.NewArgumentError(
			fmt.Sprintf("%s already exists", path),
			"Use --force to overwrite it",
			"Or run 'prlog config show' to see the current settings",
		)
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	progress.NewIndicator(cmd.OutOrStdout(), outputCapabilities(cmd)).Success("Wrote " + path)
	return nil
}
