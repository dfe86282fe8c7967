package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/naclbox/internal/errors"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}

func TestSealAndOpenFilesCommands(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	workDir := filepath.Join(tempDir, "work")
	keyPath := writeKeyFile(t, tempDir, testKeyHex)
	writeTestFile(t, filepath.Join(workDir, "app", "db.json"), `{"password":"hunter2"}`)
	writeTestFile(t, filepath.Join(workDir, "app", "api.json"), `{"token":"abc"}`)
	writeTestFile(t, filepath.Join(workDir, "README.md"), "docs")
	chdir(t, workDir)

	stdout, _, err := runCLI(t, nil, "seal-files", "--key-file", keyPath, "app/**/*.json")
	if err != nil {
		t.Fatalf("seal-files failed: %v", err)
	}
	if !strings.Contains(stdout, "Files sealed successfully!") {
		t.Errorf("Expected success message, got %q", stdout)
	}
	for _, name := range []string{"db.json.box", "api.json.box"} {
		if _, err := os.Stat(filepath.Join(workDir, "app", name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(workDir, "README.md.box")); !os.IsNotExist(err) {
		t.Error("README.md should not have been sealed")
	}

	if err := os.Remove(filepath.Join(workDir, "app", "db.json")); err != nil {
		t.Fatal(err)
	}

	stdout, _, err = runCLI(t, nil, "open-files", "--key-file", keyPath, "app")
	if err != nil {
		t.Fatalf("open-files failed: %v", err)
	}
	if !strings.Contains(stdout, "Files opened successfully!") {
		t.Errorf("Expected success message, got %q", stdout)
	}

	data, err := os.ReadFile(filepath.Join(workDir, "app", "db.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"password":"hunter2"}` {
		t.Errorf("Unexpected opened content %q", data)
	}
}

func TestSealFilesCustomExtension(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	keyPath := writeKeyFile(t, tempDir, testKeyHex)
	writeTestFile(t, filepath.Join(tempDir, "notes.txt"), "n")
	chdir(t, tempDir)

	if _, _, err := runCLI(t, nil, "seal-files", "--key-file", keyPath, "--ext", ".sealed", "notes.txt"); err != nil {
		t.Fatalf("seal-files failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "notes.txt.sealed")); err != nil {
		t.Errorf("Expected notes.txt.sealed: %v", err)
	}
}

func TestOpenFilesWrongKey(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	keyPath := writeKeyFile(t, tempDir, testKeyHex)
	writeTestFile(t, filepath.Join(tempDir, "secret.txt"), "s")
	chdir(t, tempDir)

	if _, _, err := runCLI(t, nil, "seal-files", "--key-file", keyPath, "secret.txt"); err != nil {
		t.Fatalf("seal-files failed: %v", err)
	}
	if err := os.Remove(filepath.Join(tempDir, "secret.txt")); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, nil, "open-files", "--key", "ff"+testKeyHex[2:], "secret.txt.box")
	if !errors.Is(err, kerrors.ErrAuthenticationFailed) {
		t.Fatalf("Expected ErrAuthenticationFailed, got %v", err)
	}
	if !strings.Contains(stdout, "✗") {
		t.Errorf("Expected failure message, got %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "secret.txt")); !os.IsNotExist(err) {
		t.Error("Plaintext must not be written when authentication fails")
	}
}

func TestSealFilesNoMatches(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	chdir(t, tempDir)

	_, _, err := runCLI(t, nil, "seal-files", "--key", testKeyHex, "*.missing")
	if !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got %v", err)
	}
}
