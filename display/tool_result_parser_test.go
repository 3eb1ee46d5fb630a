package display

import (
	"strings"
	"testing"
)

func TestParseSearchReplace(t *testing.T) {
	trp := NewToolResultParser(nil)

	result := map[string]any{
		"success":        true,
		"blocks_applied": float64(1),
		"total_blocks":   float64(1),
		"changed_regions": []any{
			map[string]any{
				"startOffset": float64(10),
				"endOffset":   float64(20),
				"startLine":   float64(2),
				"endLine":     float64(3),
			},
		},
	}

	out := trp.ParseToolResult("search_replace", result)
	if !strings.Contains(out, "Applied 1 of 1 block") {
		t.Errorf("output %q missing block summary", out)
	}
	if !strings.Contains(out, "lines 3-4 changed") {
		t.Errorf("output %q missing line range", out)
	}
}

func TestParseSearchReplace_NoRegions(t *testing.T) {
	trp := NewToolResultParser(nil)

	result := map[string]any{
		"blocks_applied": float64(0),
		"total_blocks":   float64(2),
	}

	out := trp.ParseToolResult("search_replace", result)
	if !strings.Contains(out, "Applied 0 of 2 block") {
		t.Errorf("output %q missing block summary", out)
	}
}

func TestParseToolResult_ErrorTakesPrecedence(t *testing.T) {
	trp := NewToolResultParser(nil)

	result := map[string]any{
		"error":          "SEARCH content not found",
		"blocks_applied": float64(0),
	}

	out := trp.ParseToolResult("search_replace", result)
	if !strings.Contains(out, "SEARCH content not found") {
		t.Errorf("output %q missing error message", out)
	}
}
