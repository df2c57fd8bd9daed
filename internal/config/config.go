// Package config provides layered configuration for prlog using koanf.
// Configuration is loaded with priority: command-line overrides > environment
// variables (PRLOG_*) > config file (.prlog.yml, or --config) > defaults.
// YAML and JSON config files are both accepted; the extension selects the parser.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by prlog.
const EnvPrefix = "PRLOG_"

// Configuration holds the input and output locations of a pipeline run and
// the knobs of the record filter.
type Configuration struct {
	// BaselineFile holds the baseline version on its first line.
	BaselineFile string `koanf:"baseline_file" yaml:"baseline_file"`
	// PullRequestsFile is the metadata export; its first line is a header.
	PullRequestsFile string `koanf:"pull_requests_file" yaml:"pull_requests_file"`
	DatesFile        string `koanf:"dates_file" yaml:"dates_file"`
	BuildsFile       string `koanf:"builds_file" yaml:"builds_file"`
	// OutputFile is overwritten on every successful run. "-" means stdout.
	OutputFile string `koanf:"output_file" yaml:"output_file"`

	// ExcludeComponent drops records whose only component has this name.
	ExcludeComponent string `koanf:"exclude_component" yaml:"exclude_component"`
	// NoteField is the path below "fields" holding the release note.
	NoteField string `koanf:"note_field" yaml:"note_field"`

	// ConfigFile is the file the configuration was read from, if any.
	ConfigFile string `koanf:"-" yaml:"-"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath names the config file explicitly. It must exist.
	ConfigPath string
	// Dir is searched for a default config file when ConfigPath is empty
	// (default: current directory).
	Dir string
	// Overrides are applied last, keyed by config key. Command-line flags
	// land here.
	Overrides map[string]any
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	configFile, err := resolveConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := loadConfigFile(k, configFile); err != nil {
			return nil, err
		}
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying override %s: %w", key, err)
		}
	}

	cfg, err := finalizeConfig(k, configFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// resolveConfigFile returns the explicit config path, or the first default
// config file found in opts.Dir, or "" when there is none.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigPath != "" {
		if _, err := os.Stat(opts.ConfigPath); err != nil {
			return "", &ValidationError{FilePath: opts.ConfigPath, Message: "config file not found"}
		}
		return opts.ConfigPath, nil
	}
	return FindConfigFile(opts.Dir), nil
}

// loadConfigFile validates and loads a YAML or JSON config file
func loadConfigFile(k *koanf.Koanf, path string) error {
	if isJSON(path) {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return &ValidationError{FilePath: path, Message: "invalid JSON: " + err.Error()}
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf, configFile string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigFile = configFile

	source := configFile
	if source == "" {
		source = "config"
	}
	if err := ValidateConfigValues(&cfg, source); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: PRLOG_OUTPUT_FILE -> output_file
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// WritesToStdout reports whether the report goes to standard output.
func (c *Configuration) WritesToStdout() bool {
	return c.OutputFile == "-"
}
