package edit

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"diffagent/internal/diffapply"
	"diffagent/pkg/errors"
	"diffagent/tools/base"
	"diffagent/tools/file"
)

// StreamingSearchReplaceInput defines input for the chunked SEARCH/REPLACE
// entry point. Unlike search_replace, which expects one complete diff, this
// tool lets a caller feed the diff as it is produced (e.g. streamed model
// output) and see the content applied so far after every chunk.
type StreamingSearchReplaceInput struct {
	Path string `json:"path" jsonschema:"Path to the file to modify (relative to working directory)"`
	// DiffChunk is the next piece of diff text to append to this stream.
	// On the call with CursorToken empty, it is also the first piece.
	DiffChunk string `json:"diff_chunk" jsonschema:"Next chunk of SEARCH/REPLACE diff text to append to this stream"`
	// IsFinal marks the last chunk; once true, the stream is closed and,
	// unless Preview is set, the result is written to Path.
	IsFinal bool `json:"is_final" jsonschema:"True on the last chunk of this stream"`
	// CursorToken identifies an in-progress stream. Leave empty to start a
	// new one; the tool returns the token to thread back on every
	// subsequent call for the same edit.
	CursorToken string `json:"cursor_token,omitempty" jsonschema:"Token returned by a previous call to this tool, identifying this stream"`
	// Preview, when set on the final chunk, returns the result without
	// writing the file.
	Preview *bool `json:"preview,omitempty" jsonschema:"Preview changes without applying (default: false), only meaningful on the final chunk"`
}

// StreamingSearchReplaceOutput defines output of one chunk call.
type StreamingSearchReplaceOutput struct {
	Success        bool                     `json:"success"`
	CursorToken    string                   `json:"cursor_token,omitempty"`
	Done           bool                     `json:"done"`
	ChangedRegions []diffapply.ChangeRegion `json:"changed_regions,omitempty"`
	PreviewContent string                   `json:"preview_content,omitempty"`
	Message        string                   `json:"message,omitempty"`
	Error          string                   `json:"error,omitempty"`
}

// streamState tracks one in-progress streaming edit. The engine itself
// (diffapply.ApplyDiffChunk) stays a stateless, full-reparse function; this
// tool is what threads the growing diff text across calls, the way
// session.Manager threads conversation state across turns.
type streamState struct {
	path     string
	original []byte
	diff     []byte
}

var (
	streamsMu sync.Mutex
	streams   = make(map[string]*streamState)
)

// applyStreamingChunk implements one call to the streaming_search_replace
// tool. It is kept free of the tool.Context parameter so it can be tested
// directly, the way search_replace_tools_test.go tests ParseSearchReplaceBlocks
// and canonicalDiff without going through the ADK tool wrapper.
func applyStreamingChunk(input StreamingSearchReplaceInput) StreamingSearchReplaceOutput {
	if input.Path == "" {
		return StreamingSearchReplaceOutput{Success: false, Error: "Path is required"}
	}

	token := input.CursorToken
	streamsMu.Lock()
	state, ok := streams[token]
	if !ok {
		original, err := os.ReadFile(input.Path)
		if err != nil {
			streamsMu.Unlock()
			return StreamingSearchReplaceOutput{
				Success: false,
				Error:   fmt.Sprintf("Failed to read file: %v", err),
			}
		}
		token = uuid.NewString()
		state = &streamState{path: input.Path, original: original}
		streams[token] = state
	}
	state.diff = append(state.diff, []byte(input.DiffChunk)...)
	original := state.original
	diffSoFar := append([]byte(nil), state.diff...)
	streamsMu.Unlock()

	result, err := diffapply.ApplyDiffChunk(diffSoFar, original, input.IsFinal)
	if err != nil {
		if input.IsFinal {
			streamsMu.Lock()
			delete(streams, token)
			streamsMu.Unlock()
		}
		if nme, ok := err.(*diffapply.NoMatchError); ok {
			return StreamingSearchReplaceOutput{
				Success:     false,
				CursorToken: token,
				Error:       errors.NoMatchError(nme.SearchContent).Error(),
			}
		}
		return StreamingSearchReplaceOutput{
			Success:     false,
			CursorToken: token,
			Error:       fmt.Sprintf("Failed to apply diff chunk: %v", err),
		}
	}

	if !input.IsFinal {
		return StreamingSearchReplaceOutput{
			Success:        true,
			CursorToken:    token,
			ChangedRegions: result.ChangedRegions,
			Message:        fmt.Sprintf("%d region(s) applied so far", len(result.ChangedRegions)),
		}
	}

	streamsMu.Lock()
	delete(streams, token)
	streamsMu.Unlock()

	preview := input.Preview != nil && *input.Preview
	if preview {
		return StreamingSearchReplaceOutput{
			Success:        true,
			Done:           true,
			ChangedRegions: result.ChangedRegions,
			PreviewContent: string(result.Content),
			Message:        fmt.Sprintf("Preview: %d region(s) would be applied to %s", len(result.ChangedRegions), input.Path),
		}
	}

	if err := file.AtomicWrite(input.Path, result.Content, 0644); err != nil {
		return StreamingSearchReplaceOutput{
			Success: false,
			Done:    true,
			Error:   fmt.Sprintf("Failed to write file: %v", err),
		}
	}

	return StreamingSearchReplaceOutput{
		Success:        true,
		Done:           true,
		ChangedRegions: result.ChangedRegions,
		Message:        fmt.Sprintf("Successfully applied %d region(s) to %s", len(result.ChangedRegions), input.Path),
	}
}

// NewStreamingSearchReplaceTool creates a tool for chunk-at-a-time
// SEARCH/REPLACE editing, for callers that want to observe (or validate)
// the content as a diff streams in rather than submitting it all at once.
func NewStreamingSearchReplaceTool() (tool.Tool, error) {
	handler := func(ctx tool.Context, input StreamingSearchReplaceInput) StreamingSearchReplaceOutput {
		return applyStreamingChunk(input)
	}

	t, err := functiontool.New(functiontool.Config{
		Name: "streaming_search_replace",
		Description: `Request to apply SEARCH/REPLACE diff content one chunk at a time, for callers that
produce diff text incrementally (e.g. a streamed model response) and want to see progress
before the whole diff has arrived.

Call with an empty cursor_token to start a new stream; the response returns a cursor_token
to pass back on every subsequent call for the same edit, along with the changed regions
applied so far. Set is_final on the last chunk to close the stream and write the file
(unless preview is set, in which case the resulting content is returned instead).`,
	}, handler)

	if err == nil {
		common.Register(common.ToolMetadata{
			Tool:      t,
			Category:  common.CategoryCodeEditing,
			Priority:  1,
			UsageHint: "For chunked/streamed SEARCH/REPLACE diffs; prefer search_replace when the full diff is available upfront",
		})
	}

	return t, err
}
