package edit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStreamingSearchReplace_SingleChunk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	diff := "<<<<<<< SEARCH\n\treturn a + b\n=======\n\treturn a - b\n>>>>>>> REPLACE\n"
	out := applyStreamingChunk(StreamingSearchReplaceInput{
		Path:      path,
		DiffChunk: diff,
		IsFinal:   true,
	})

	if !out.Success {
		t.Fatalf("Success = false, Error = %q", out.Error)
	}
	if !out.Done {
		t.Errorf("Done = false, want true on final chunk")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if !strings.Contains(string(content), "return a - b") {
		t.Errorf("file content = %q, want to contain %q", content, "return a - b")
	}
}

func TestStreamingSearchReplace_MultipleChunks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	first := applyStreamingChunk(StreamingSearchReplaceInput{
		Path:      path,
		DiffChunk: "<<<<<<< SEARCH\n\treturn a + b\n=======\n",
		IsFinal:   false,
	})
	if !first.Success {
		t.Fatalf("Success = false, Error = %q", first.Error)
	}
	if len(first.ChangedRegions) != 0 {
		t.Errorf("ChangedRegions = %v, want none before the block closes", first.ChangedRegions)
	}
	if first.CursorToken == "" {
		t.Fatalf("expected a cursor token on first call")
	}

	final := applyStreamingChunk(StreamingSearchReplaceInput{
		Path:        path,
		DiffChunk:   "\treturn a - b\n>>>>>>> REPLACE\n",
		IsFinal:     true,
		CursorToken: first.CursorToken,
	})
	if !final.Success {
		t.Fatalf("Success = false, Error = %q", final.Error)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if !strings.Contains(string(content), "return a - b") {
		t.Errorf("file content = %q, want to contain %q", content, "return a - b")
	}
}

func TestStreamingSearchReplace_PreviewDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.go")
	original := "package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	preview := true
	diff := "<<<<<<< SEARCH\n\treturn a + b\n=======\n\treturn a - b\n>>>>>>> REPLACE\n"
	out := applyStreamingChunk(StreamingSearchReplaceInput{
		Path:      path,
		DiffChunk: diff,
		IsFinal:   true,
		Preview:   &preview,
	})

	if !out.Success {
		t.Fatalf("Success = false, Error = %q", out.Error)
	}
	if !strings.Contains(out.PreviewContent, "return a - b") {
		t.Errorf("PreviewContent = %q, want to contain %q", out.PreviewContent, "return a - b")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(content) != original {
		t.Errorf("file was modified despite preview mode")
	}
}

func TestStreamingSearchReplace_MissingPath(t *testing.T) {
	out := applyStreamingChunk(StreamingSearchReplaceInput{DiffChunk: "x", IsFinal: true})
	if out.Success {
		t.Errorf("expected failure for missing path")
	}
}

func TestStreamingSearchReplace_UnknownCursorTokenStartsFresh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	out := applyStreamingChunk(StreamingSearchReplaceInput{
		Path:        path,
		DiffChunk:   "<<<<<<< SEARCH\npackage main\n=======\npackage main // updated\n>>>>>>> REPLACE\n",
		IsFinal:     true,
		CursorToken: "not-a-real-token",
	})
	if !out.Success {
		t.Fatalf("Success = false, Error = %q", out.Error)
	}
}
