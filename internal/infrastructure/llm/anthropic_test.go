package llm

import (
	"strings"
	"testing"
)

func TestTruncateBoundsInput(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 100)
	if got := truncate(long, 10); len(got) != 10 {
		t.Fatalf("expected 10 bytes, got %d", len(got))
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short input modified: %q", got)
	}
	if got := truncate(long, 0); got != long {
		t.Fatalf("zero limit should disable truncation, got %d bytes", len(got))
	}
}

func TestBuildPromptCarriesTitleAndContent(t *testing.T) {
	t.Parallel()

	prompt := buildPrompt("FADA releases November 2025 Vehicle Retail Data", "two-wheeler sales rose")
	if !strings.Contains(prompt, "FADA releases November 2025 Vehicle Retail Data") {
		t.Fatal("prompt missing report title")
	}
	if !strings.Contains(prompt, "two-wheeler sales rose") {
		t.Fatal("prompt missing report content")
	}
}
