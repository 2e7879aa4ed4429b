package format

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grodin/ktfmt/internal/style"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunRewritesChangedFile(t *testing.T) {
	path := writeTempFile(t, "a.kt", "fun main() {}   \n")

	var stdout, stderr bytes.Buffer
	changed, err := Run(RunOptions{
		FileNames: []string{path},
		Options:   style.DefaultOptions(),
		Stdout:    &stdout,
		Stderr:    &stderr,
	})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d", changed)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fun main() {}\n" {
		t.Fatalf("file = %q", got)
	}
	if !strings.Contains(stderr.String(), path) {
		t.Fatalf("stderr = %q, want change report", stderr.String())
	}
}

func TestRunLeavesCleanFileAlone(t *testing.T) {
	path := writeTempFile(t, "a.kt", "fun main() {}\n")

	var stdout, stderr bytes.Buffer
	changed, err := Run(RunOptions{
		FileNames: []string{path},
		Options:   style.DefaultOptions(),
		Stdout:    &stdout,
		Stderr:    &stderr,
	})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if changed != 0 {
		t.Fatalf("changed = %d", changed)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunDryRunListsWithoutWriting(t *testing.T) {
	dirty := writeTempFile(t, "dirty.kt", "fun main() {}   \n")
	clean := writeTempFile(t, "clean.kt", "fun main() {}\n")

	var stdout, stderr bytes.Buffer
	changed, err := Run(RunOptions{
		FileNames: []string{dirty, clean},
		Options:   style.DefaultOptions(),
		DryRun:    true,
		Stdout:    &stdout,
		Stderr:    &stderr,
	})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d", changed)
	}
	if stdout.String() != dirty+"\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}

	got, err := os.ReadFile(dirty)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fun main() {}   \n" {
		t.Fatalf("dry run modified the file: %q", got)
	}
}

func TestRunStdinWritesFormattedToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	changed, err := Run(RunOptions{
		FileNames: []string{StdinSentinel},
		Options:   style.DefaultOptions(),
		Stdin:     strings.NewReader("fun main() {}   \n"),
		Stdout:    &stdout,
		Stderr:    &stderr,
	})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d", changed)
	}
	if stdout.String() != "fun main() {}\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
}

func TestRunStdinDryRunPrintsLogicalName(t *testing.T) {
	var stdout bytes.Buffer
	changed, err := Run(RunOptions{
		FileNames: []string{StdinSentinel},
		Options:   style.DefaultOptions(),
		DryRun:    true,
		StdinName: "App.kt",
		Stdin:     strings.NewReader("fun main() {}   \n"),
		Stdout:    &stdout,
		Stderr:    &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d", changed)
	}
	if stdout.String() != "App.kt\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
}

func TestRunStdinCleanInputPassesThrough(t *testing.T) {
	var stdout bytes.Buffer
	changed, err := Run(RunOptions{
		FileNames: []string{StdinSentinel},
		Options:   style.DefaultOptions(),
		Stdin:     strings.NewReader("fun main() {}\n"),
		Stdout:    &stdout,
		Stderr:    &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if changed != 0 {
		t.Fatalf("changed = %d", changed)
	}
	if stdout.String() != "fun main() {}\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := Run(RunOptions{
		FileNames: []string{filepath.Join(t.TempDir(), "missing.kt")},
		Options:   style.DefaultOptions(),
		Stdout:    &bytes.Buffer{},
		Stderr:    &bytes.Buffer{},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
