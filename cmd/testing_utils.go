// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and running the CLI.
package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/passmap/internal/configs"
)

// setupTestEnvironment moves the test into a fresh working directory with an
// isolated config directory, and returns the working directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}
	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Setenv("PASSMAP_CONFIG_DIR", filepath.Join(tempDir, "config"))
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"PASSMAP_STORE", "PASSMAP_MIN_LENGTH", "PASSMAP_MAX_LENGTH", "PASSMAP_AUDIT"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	originalSettings := configs.ActiveSettings
	ResetGlobalState()

	// Cleanup function to restore original state
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.ActiveSettings = originalSettings
		ResetGlobalState()
	})

	return tempDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// runCLI executes the root command with args and returns everything it
// printed.
func runCLI(args ...string) (string, error) {
	ResetGlobalState()
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

// withStdin replaces os.Stdin with a pipe carrying input for the duration
// of the test.
func withStdin(t *testing.T, input string) {
	t.Helper()
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdin pipe: %v", err)
	}
	if _, err := writer.WriteString(input); err != nil {
		t.Fatalf("Failed to write stdin: %v", err)
	}
	writer.Close()

	original := os.Stdin
	os.Stdin = reader
	t.Cleanup(func() {
		os.Stdin = original
		reader.Close()
	})
}

// readStoreFile decodes the store file in dir.
func readStoreFile(t *testing.T, dir string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ".map.json"))
	if err != nil {
		t.Fatalf("Failed to read store: %v", err)
	}
	creds := map[string]string{}
	if err := json.Unmarshal(data, &creds); err != nil {
		t.Fatalf("Store is not valid JSON: %v\n%s", err, data)
	}
	return creds
}

// writeStoreFile replaces the store file in dir with raw content.
func writeStoreFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".map.json"), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write store: %v", err)
	}
}
