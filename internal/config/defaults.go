package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# prlog configuration
# Values can be overridden with PRLOG_<KEY> environment variables or flags.

# Inputs
baseline_file: api_baseline.txt                  # First line is the baseline version
pull_requests_file: changelog/pullrequests.txt   # Metadata export (first line is a header)
dates_file: changelog/dates.txt                  # One git-style date per pull request line
builds_file: changelog/builds.txt                # One ref decoration per pull request line

# Output
output_file: changelog.rst                       # Overwritten on every run ("-" = stdout)

# Records
exclude_component: Verification                  # Drop records whose only component is this
note_field: customfield_10500                    # Field under "fields" holding the release note
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]any {
	return map[string]any{
		"baseline_file":      "api_baseline.txt",
		"pull_requests_file": "changelog/pullrequests.txt",
		"dates_file":         "changelog/dates.txt",
		"builds_file":        "changelog/builds.txt",
		"output_file":        "changelog.rst",
		"exclude_component":  "Verification",
		"note_field":         "customfield_10500",
	}
}
