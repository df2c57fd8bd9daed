// Package testutil provides test utilities and helpers for prlog tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	// prlogBinaryPath caches the built prlog binary path.
	prlogBinaryPath string
	prlogBuildOnce  sync.Once
	prlogBuildErr   error
)

// E2EEnv runs the prlog binary in an isolated working directory with a
// sanitized environment, so no PRLOG_* variable of the caller leaks in.
type E2EEnv struct {
	t       *testing.T
	workDir string
	env     []string
}

// CommandResult captures the result of running a prlog command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv builds prlog (once per test binary) and creates a fresh working
// directory for it.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	prlogBuildOnce.Do(func() {
		prlogBinaryPath, prlogBuildErr = buildPrlog()
	})
	if prlogBuildErr != nil {
		t.Fatalf("building prlog: %v", prlogBuildErr)
	}

	workDir := t.TempDir()
	return &E2EEnv{
		t:       t,
		workDir: workDir,
		env:     isolatedEnv(workDir),
	}
}

func buildPrlog() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "prlog-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "prlog")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/prlog")
	cmd.Dir = repoRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("go build: %w\nOutput: %s", err, output)
	}
	return binaryPath, nil
}

// isolatedEnv keeps only the variables a child process needs to run.
func isolatedEnv(home string) []string {
	env := []string{"HOME=" + home}
	for _, key := range []string{"PATH", "TERM", "LANG", "LC_ALL", "TMPDIR"} {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	return env
}

// Setenv adds a variable to the child environment.
func (e *E2EEnv) Setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}

// WorkDir returns the directory commands run in.
func (e *E2EEnv) WorkDir() string {
	return e.workDir
}

// WriteFile writes content to a path relative to the working directory,
// creating parent directories.
func (e *E2EEnv) WriteFile(rel, content string) {
	e.t.Helper()

	path := filepath.Join(e.workDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", rel, err)
	}
}

// WriteLines writes lines joined by newlines with a trailing newline.
func (e *E2EEnv) WriteLines(rel string, lines ...string) {
	e.t.Helper()
	e.WriteFile(rel, strings.Join(lines, "\n")+"\n")
}

// ReadFile returns the content of a path relative to the working directory.
func (e *E2EEnv) ReadFile(rel string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(e.workDir, rel))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Run executes prlog with args in the isolated environment.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()

	cmd := exec.Command(prlogBinaryPath, args...)
	cmd.Dir = e.workDir
	cmd.Env = e.env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
	}

	return result
}
