package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/source"
)

// This file contains test utilities and mocks for testing CLI functions.

// mockFormRunner implements formRunner so tests can stand in for huh forms.
type mockFormRunner struct {
	// runErr is the error to return from Run()
	runErr error

	// onRun simulates user input by modifying form values
	onRun func()
}

// Run executes the mock form, optionally calling the onRun callback.
func (m *mockFormRunner) Run() error {
	if m.onRun != nil {
		m.onRun()
	}
	return m.runErr
}

// mockTerminalCheckFunc replaces terminalCheck and returns a restore func.
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockConfirm makes the overwrite prompt answer with answer.
func mockConfirm(t *testing.T, answer bool, runErr error) *int {
	t.Helper()
	calls := 0
	original := createOverwriteConfirmForm
	createOverwriteConfirmForm = func(_, _ string, confirm *bool) formRunner {
		calls++
		return &mockFormRunner{runErr: runErr, onRun: func() { *confirm = answer }}
	}
	t.Cleanup(func() { createOverwriteConfirmForm = original })
	return &calls
}

// isolateCLI points config and logs at temp directories and returns the
// project directory the test runs in.
func isolateCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("RCLI_HOME", t.TempDir())
	project := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(project))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	originalInit := loggerInit
	loggerInit = func(verbose, quiet bool) zerolog.Logger {
		return InitLoggerWithWriter(verbose, quiet, io.Discard)
	}
	t.Cleanup(func() { loggerInit = originalInit })
	return project
}

// setStdin feeds input to the "-" designator for the rest of the test.
func setStdin(t *testing.T, input string) {
	t.Helper()
	original := source.Stdin
	source.Stdin = strings.NewReader(input)
	t.Cleanup(func() { source.Stdin = original })
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func huhAborted() error {
	return huh.ErrUserAborted
}
