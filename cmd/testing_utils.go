// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for isolating configuration,
// running commands and capturing their output.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/naclbox/internal/configs"
	"github.com/fatih/color"
)

// testKeyHex is 32 zero bytes as hex.
var testKeyHex = strings.Repeat("00", 32)

// setupTestEnvironment isolates configuration in a temp directory, clears
// override variables and resets command state. Returns the temp directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.UserNaclboxSettings
	originalConfig := configs.GlobalConfig
	configs.UserNaclboxSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		EnvFile:         filepath.Join(tempDir, ".env"),
	}

	t.Setenv(configs.EnvKeyFile, "")
	os.Unsetenv(configs.EnvKeyFile)
	t.Setenv(configs.EnvHex, "")
	os.Unsetenv(configs.EnvHex)
	t.Setenv("NO_COLOR", "1")

	originalNoColor := color.NoColor
	color.NoColor = true

	ResetGlobalState()
	t.Cleanup(func() {
		ResetGlobalState()
		configs.UserNaclboxSettings = originalSettings
		configs.GlobalConfig = originalConfig
		color.NoColor = originalNoColor
	})

	return tempDir
}

// runCLI executes the root command with args, feeding stdin, and returns
// captured stdout and stderr.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	ResetGlobalState()

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	RootCmd.SetIn(stdin)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()

	RootCmd.SetOut(nil)
	RootCmd.SetErr(nil)
	RootCmd.SetIn(nil)
	RootCmd.SetArgs(nil)

	return stdout.String(), stderr.String(), err
}

// writeKeyFile writes keyHex to a 0600 file in dir and returns its path.
func writeKeyFile(t *testing.T, dir, keyHex string) string {
	t.Helper()
	path := filepath.Join(dir, "key.hex")
	if err := os.WriteFile(path, []byte(keyHex+"\n"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}
	return path
}
