package render

import (
	"strings"
	"testing"
)

func TestMarkdownDisabledReturnsTrimmedPlain(t *testing.T) {
	got := Markdown("  # Heading  \n", 80, false)
	if got != "# Heading" {
		t.Fatalf("Markdown = %q", got)
	}
}

func TestMarkdownEmptyInput(t *testing.T) {
	if got := Markdown("   \n", 80, true); got != "" {
		t.Fatalf("Markdown = %q", got)
	}
}

func TestMarkdownEnabledRendersContent(t *testing.T) {
	got := Markdown("# Heading", 80, true)
	if !strings.Contains(got, "Heading") {
		t.Fatalf("Markdown = %q, content lost", got)
	}
}

func TestMarkdownNonPositiveWidthFallsBack(t *testing.T) {
	got := Markdown("plain words", 0, true)
	if !strings.Contains(got, "plain words") {
		t.Fatalf("Markdown = %q", got)
	}
}
