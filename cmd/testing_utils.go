// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments
// and capturing output.
package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/torvikdev/envstash/internal/configs"
)

// setupTestEnvironment points the user settings at a temp data directory
// and resets command state, restoring everything when the test finishes.
// It returns a fresh project directory to run commands against.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalSettings := configs.UserEnvstashSettings
	configs.UserEnvstashSettings = &configs.UserSettings{
		DataPath: t.TempDir(),
	}

	ResetGlobalState()

	t.Cleanup(func() {
		configs.UserEnvstashSettings = originalSettings
		ResetGlobalState()
	})

	return t.TempDir()
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	output := <-outputChan
	output += <-outputChan

	return output, err
}

// runCommand executes the root command with args, capturing combined output.
// Global flag state is reset first so earlier invocations don't leak flags
// into this one.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	ResetGlobalState()
	root := GetRootCmd()
	root.SetArgs(args)
	return captureOutput(func() error {
		return root.Execute()
	})
}
