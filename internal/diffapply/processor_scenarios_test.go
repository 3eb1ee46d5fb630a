package diffapply

import (
	"strings"
	"testing"
)

// TestApplyDiffChunk_Scenarios exercises representative end-to-end diff
// application scenarios a real coding session produces.
func TestApplyDiffChunk_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		original string
		diff     string
		want     string
	}{
		{
			name:     "insert at top of file",
			original: "func main() {}\n",
			diff:     srBlock([]string{"func main() {}"}, []string{"// Copyright notice.", "", "func main() {}"}),
			want:     "// Copyright notice.\n\nfunc main() {}\n",
		},
		{
			name:     "deletion via empty replace body",
			original: "a\nb\nc\n",
			diff:     srBlock([]string{"b"}, nil),
			want:     "a\nc\n",
		},
		{
			name:     "cursor prevents rematching an earlier occurrence",
			original: "dup()\nmid()\ndup()\n",
			diff:     srBlock([]string{"dup()"}, []string{"first()"}) + srBlock([]string{"dup()"}, []string{"second()"}),
			want:     "first()\nmid()\nsecond()\n",
		},
		{
			name:     "line-trimmed and block-anchor in the same diff",
			original: "func a() {\n  legacy()\n}\n\nfunc b() {\n  // stale comment\n  keep()\n  done()\n}\n",
			diff: srBlock([]string{"legacy()"}, []string{"modern()"}) +
				srBlock([]string{"func b() {", "  // fresh comment", "  keep()", "  done()"}, []string{"func b() {", "  keep()", "  done()"}),
			want: "func a() {\n  modern()\n}\n\nfunc b() {\n  keep()\n  done()\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ApplyDiffChunk([]byte(tt.diff), []byte(tt.original), true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result.Content) != tt.want {
				t.Errorf("content = %q, want %q", result.Content, tt.want)
			}
		})
	}
}

// TestApplyDiffChunk_LargeFileUsesLineIndex verifies a replace succeeds
// identically whether or not the file crosses the LineIndex threshold,
// since the indexed and direct-scan paths must agree.
func TestApplyDiffChunk_LargeFileUsesLineIndex(t *testing.T) {
	filler := strings.Repeat("filler line unrelated to the edit\n", (LargeFileThreshold/34)+10)
	original := filler + "target marker line\n" + filler
	if len(original) <= LargeFileThreshold {
		t.Fatalf("test setup error: original too small (%d bytes)", len(original))
	}

	diff := srBlock([]string{"target marker line"}, []string{"replaced marker line"})

	result, err := ApplyDiffChunk([]byte(diff), []byte(original), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filler + "replaced marker line\n" + filler
	if string(result.Content) != want {
		t.Error("large-file replacement via LineIndex path produced unexpected content")
	}
}

// TestApplyDiffChunk_TwoConsecutiveMalformedBlocksDoNotPoisonAValidOne
// checks that malformed blocks preceding a well-formed one are dropped
// without affecting it.
func TestApplyDiffChunk_TwoConsecutiveMalformedBlocksDoNotPoisonAValidOne(t *testing.T) {
	original := "good content\n"
	malformed := markerSearchStart + "\nstray\n" + markerReplaceEnd + "\n"
	valid := srBlock([]string{"good content"}, []string{"great content"})

	result, err := ApplyDiffChunk([]byte(malformed+malformed+valid), []byte(original), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result.Content) != "great content\n" {
		t.Errorf("content = %q, want %q", result.Content, "great content\n")
	}
}
