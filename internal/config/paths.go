package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigFile is the config file written by 'prlog config init'.
const DefaultConfigFile = ".prlog.yml"

// configCandidates are checked in order when no config path is given.
var configCandidates = []string{DefaultConfigFile, ".prlog.yaml", ".prlog.json"}

// FindConfigFile returns the first default config file present in dir,
// or "" if there is none. An empty dir means the current directory.
func FindConfigFile(dir string) string {
	for _, name := range configCandidates {
		path := name
		if dir != "" {
			path = filepath.Join(dir, name)
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
