// Package edit provides code editing tools for the coding agent.
package edit

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"diffagent/internal/diffapply"
	"diffagent/pkg/errors"
	"diffagent/tools/base"
	"diffagent/tools/file"
)

// SearchReplaceBlock represents a single loosely-parsed SEARCH/REPLACE
// block, before it is handed to the diff engine for matching.
type SearchReplaceBlock struct {
	SearchContent  string
	ReplaceContent string
}

// SearchReplaceInput defines input for SEARCH/REPLACE block-based editing
type SearchReplaceInput struct {
	// Path to the file to modify
	Path string `json:"path" jsonschema:"Path to the file to modify (relative to working directory)"`
	// Diff containing one or more SEARCH/REPLACE blocks
	Diff string `json:"diff" jsonschema:"One or more SEARCH/REPLACE blocks in the specified format"`
	// Preview mode - show what would change without applying
	Preview *bool `json:"preview,omitempty" jsonschema:"Preview changes without applying (default: false)"`
}

// SearchReplaceOutput defines output of SEARCH/REPLACE operation
type SearchReplaceOutput struct {
	Success        bool                     `json:"success"`
	BlocksApplied  int                      `json:"blocks_applied"`
	TotalBlocks    int                      `json:"total_blocks"`
	ChangedRegions []diffapply.ChangeRegion `json:"changed_regions,omitempty"`
	PreviewContent string                   `json:"preview_content,omitempty"`
	Message        string                   `json:"message,omitempty"`
	Error          string                   `json:"error,omitempty"`
}

// Block marker patterns. The canonical format is the angle-bracket one;
// the dash/plus variant is accepted for input compatibility with older
// prompts but is never emitted in tool documentation or previews.
var (
	searchBlockStartRegex  = regexp.MustCompile(`^[<]{3,} SEARCH>?\s*$`)
	searchBlockEndRegex    = regexp.MustCompile(`^[=]{3,}\s*$`)
	replaceBlockEndRegex   = regexp.MustCompile(`^[>]{3,} REPLACE>?\s*$`)
	legacySearchStartRegex = regexp.MustCompile(`^[-]{3,} SEARCH>?\s*$`)
	legacyReplaceEndRegex  = regexp.MustCompile(`^[+]{3,} REPLACE>?\s*$`)
)

// isSearchBlockStart checks if a line is a search block start marker
func isSearchBlockStart(line string) bool {
	return searchBlockStartRegex.MatchString(line) || legacySearchStartRegex.MatchString(line)
}

// isSearchBlockEnd checks if a line is a search block end marker
func isSearchBlockEnd(line string) bool {
	return searchBlockEndRegex.MatchString(line)
}

// isReplaceBlockEnd checks if a line is a replace block end marker
func isReplaceBlockEnd(line string) bool {
	return replaceBlockEndRegex.MatchString(line) || legacyReplaceEndRegex.MatchString(line)
}

// ParseSearchReplaceBlocks loosely parses SEARCH/REPLACE blocks from a
// diff string, tolerating either marker variant. It is used to build
// the canonical diff text the engine expects and to report how many
// blocks the model emitted, including ones the engine later drops as
// malformed or unmatched.
func ParseSearchReplaceBlocks(diff string) ([]SearchReplaceBlock, error) {
	lines := strings.Split(diff, "\n")
	var blocks []SearchReplaceBlock
	var current *SearchReplaceBlock
	state := "idle" // idle, in_search, in_replace

	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)

		switch state {
		case "idle":
			if isSearchBlockStart(trimmedLine) {
				current = &SearchReplaceBlock{}
				state = "in_search"
			}

		case "in_search":
			if isSearchBlockEnd(trimmedLine) {
				state = "in_replace"
			} else {
				if current.SearchContent != "" {
					current.SearchContent += "\n"
				}
				current.SearchContent += line
			}

		case "in_replace":
			if isReplaceBlockEnd(trimmedLine) {
				blocks = append(blocks, *current)
				current = nil
				state = "idle"
			} else {
				if current.ReplaceContent != "" {
					current.ReplaceContent += "\n"
				}
				current.ReplaceContent += line
			}
		}
	}

	if state != "idle" {
		return nil, fmt.Errorf("incomplete SEARCH/REPLACE block (state: %s)", state)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("no valid SEARCH/REPLACE blocks found")
	}

	return blocks, nil
}

// canonicalDiff rebuilds a diff string in the engine's exact marker
// format from loosely-parsed blocks, so a caller may use either marker
// variant while the engine itself only ever sees the canonical one.
func canonicalDiff(blocks []SearchReplaceBlock) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString("<<<<<<< SEARCH\n")
		if blk.SearchContent != "" {
			b.WriteString(blk.SearchContent)
			b.WriteString("\n")
		}
		b.WriteString("=======\n")
		if blk.ReplaceContent != "" {
			b.WriteString(blk.ReplaceContent)
			b.WriteString("\n")
		}
		b.WriteString(">>>>>>> REPLACE\n")
	}
	return b.String()
}

// NewSearchReplaceTool creates a tool for SEARCH/REPLACE block-based editing
func NewSearchReplaceTool() (tool.Tool, error) {
	handler := func(ctx tool.Context, input SearchReplaceInput) SearchReplaceOutput {
		if input.Path == "" {
			return SearchReplaceOutput{Success: false, Error: "Path is required"}
		}
		if input.Diff == "" {
			return SearchReplaceOutput{Success: false, Error: "Diff is required"}
		}

		blocks, err := ParseSearchReplaceBlocks(input.Diff)
		if err != nil {
			return SearchReplaceOutput{
				Success: false,
				Error:   errors.MalformedDiffError(err.Error()).Error(),
			}
		}

		content, err := os.ReadFile(input.Path)
		if err != nil {
			return SearchReplaceOutput{
				Success:     false,
				TotalBlocks: len(blocks),
				Error:       fmt.Sprintf("Failed to read file: %v", err),
			}
		}

		result, err := diffapply.ApplyDiffChunk([]byte(canonicalDiff(blocks)), content, true)
		if err != nil {
			if nme, ok := err.(*diffapply.NoMatchError); ok {
				return SearchReplaceOutput{
					Success:     false,
					TotalBlocks: len(blocks),
					Error:       errors.NoMatchError(nme.SearchContent).Error(),
				}
			}
			return SearchReplaceOutput{
				Success:     false,
				TotalBlocks: len(blocks),
				Error:       fmt.Sprintf("Failed to apply blocks: %v", err),
			}
		}

		preview := input.Preview != nil && *input.Preview
		if preview {
			return SearchReplaceOutput{
				Success:        true,
				TotalBlocks:    len(blocks),
				BlocksApplied:  len(result.ChangedRegions),
				ChangedRegions: result.ChangedRegions,
				PreviewContent: string(result.Content),
				Message:        fmt.Sprintf("Preview: %d of %d block(s) would be applied to %s", len(result.ChangedRegions), len(blocks), input.Path),
			}
		}

		if err := file.AtomicWrite(input.Path, result.Content, 0644); err != nil {
			return SearchReplaceOutput{
				Success:       false,
				TotalBlocks:   len(blocks),
				BlocksApplied: len(result.ChangedRegions),
				Error:         fmt.Sprintf("Failed to write file: %v", err),
			}
		}

		return SearchReplaceOutput{
			Success:        true,
			TotalBlocks:    len(blocks),
			BlocksApplied:  len(result.ChangedRegions),
			ChangedRegions: result.ChangedRegions,
			Message: fmt.Sprintf(
				"Successfully applied %d of %d SEARCH/REPLACE block(s) to %s",
				len(result.ChangedRegions), len(blocks), input.Path,
			),
		}
	}

	t, err := functiontool.New(functiontool.Config{
		Name: "search_replace",
		Description: `Request to replace sections of content in an existing file using SEARCH/REPLACE blocks.
This is the PREFERRED tool for making targeted changes to specific parts of a file.
Use this tool when you need to modify, add, or delete code in precise locations.

Format:
` + "```" + `
<<<<<<< SEARCH
[exact content to find]
=======
[new content to replace with]
>>>>>>> REPLACE
` + "```" + `

Critical Rules:
1. SEARCH content must match EXACTLY (including whitespace, indentation) when possible
2. Each SEARCH/REPLACE block replaces ONLY the first match found at or after the previous block's match
3. Use multiple blocks for multiple changes (list in file order)
4. Keep blocks concise - just the changing lines + a few context lines
5. To delete code: use empty REPLACE section
6. To insert into a new or empty file: use empty SEARCH section
7. To move code: use two blocks (one to delete, one to insert)

Example (adding error handling):
` + "```" + `
<<<<<<< SEARCH
function add(a, b) {
  return a + b;
}
=======
function add(a, b) {
  if (typeof a !== "number") {
    throw new Error("a must be a number");
  }
  return a + b;
}
>>>>>>> REPLACE
` + "```" + `

The engine falls back to whitespace-tolerant and anchor-based matching when an exact match isn't found, so minor indentation or interior drift is handled gracefully.`,
	}, handler)

	if err == nil {
		common.Register(common.ToolMetadata{
			Tool:      t,
			Category:  common.CategoryCodeEditing,
			Priority:  0,
			UsageHint: "PREFERRED for targeted edits, supports multiple blocks, whitespace-tolerant",
		})
	}

	return t, err
}
