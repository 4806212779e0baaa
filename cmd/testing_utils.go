// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments and
// running commands with captured output.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	logger "github.com/jakejohns/chargon/internal/logging"
	"github.com/jakejohns/chargon/internal/passphrase"
)

// setupTestEnvironment isolates a test run: fresh flag state, a quiet
// logger, a throwaway config home, and no ambient passphrase.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	ResetGlobalState()
	Logger = logger.Logger{}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(passphrase.EnvVar, "")
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(ResetGlobalState)
	return t.TempDir()
}

// runCommand executes the root command with the given arguments, capturing
// everything written to stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	for _, reader := range []*os.File{stdoutReader, stderrReader} {
		go func(r *os.File) {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, r)
			outputChan <- buf.String()
		}(reader)
	}

	root := GetRootCmd()
	root.SetArgs(args)
	runErr := root.Execute()

	stdoutWriter.Close()
	stderrWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	output := <-outputChan
	output += <-outputChan

	return output, runErr
}

// writePassphraseFile creates a passphrase file inside dir.
func writePassphraseFile(t *testing.T, dir, pass string) string {
	t.Helper()
	path := filepath.Join(dir, "passfile")
	if err := os.WriteFile(path, []byte(pass+"\n"), 0600); err != nil {
		t.Fatalf("Failed to create passphrase file: %v", err)
	}
	return path
}
