package search

import (
	"strings"
	"testing"
)

func TestGenerateDiff(t *testing.T) {
	original := "a\nb\nc\n"
	modified := "a\nB\nc\n"

	diff := GenerateDiff(original, modified, 3)
	if diff == "" {
		t.Fatal("GenerateDiff() returned empty diff for differing content")
	}
	wantSubstrings := []string{"-b", "+B", " a", " c"}
	for _, want := range wantSubstrings {
		if !strings.Contains(diff, want) {
			t.Errorf("diff %q missing substring %q", diff, want)
		}
	}
}

func TestPreviewViaBlockEngine(t *testing.T) {
	original := "func a() {\n\tfoo()\n}\n"
	blockDiff := "<<<<<<< SEARCH\n\tfoo()\n=======\n\tbar()\n>>>>>>> REPLACE\n"

	out := previewViaBlockEngine(original, blockDiff)
	if !out.Success {
		t.Fatalf("previewViaBlockEngine() failed: %s", out.Error)
	}
	if out.Changes != 1 {
		t.Errorf("Changes = %d, want 1", out.Changes)
	}
	if len(out.ChangedRegions) != 1 {
		t.Errorf("len(ChangedRegions) = %d, want 1", len(out.ChangedRegions))
	}
	if !strings.Contains(out.Diff, "+\tbar()") {
		t.Errorf("Diff = %q, missing expected addition", out.Diff)
	}
}

func TestPreviewViaBlockEngine_NoMatch(t *testing.T) {
	out := previewViaBlockEngine("hello\n", "<<<<<<< SEARCH\ngoodbye\n=======\nhi\n>>>>>>> REPLACE\n")
	if out.Success {
		t.Fatal("expected failure for unmatched SEARCH content")
	}
	if out.Error == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestPreviewViaBlockEngine_RequiresBlockDiff(t *testing.T) {
	out := previewViaBlockEngine("hello\n", "")
	if out.Success {
		t.Fatal("expected failure when block_diff is empty")
	}
}
