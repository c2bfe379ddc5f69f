package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeSnapshot writes content to name inside a temp dir and returns the path
func writeSnapshot(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// resetFlags restores global flags and config to their defaults
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile, verbose, quiet, noColor = "", false, false, false
	inputFormat, inputEncoding = "", ""
	diffExpansion, diffStats = false, false
	applyScript = ""
	treeVisible, treeDepth = false, -1
	fmtTo, fmtOutput, fmtBOM, fmtEncAs = "", "", false, ""
	cfg = defaultConfig()
	cfg.Color = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return string(<-done), fnErr
}

// mkdirAll creates dir and returns it
func mkdirAll(t *testing.T, dir string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	return dir
}
