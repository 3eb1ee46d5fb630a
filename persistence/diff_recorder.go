package persistence

import (
	"context"
	"encoding/json"
	"sync"

	"diffagent/internal/display/tools"
)

// DiffApplicationRecorder implements tools.ToolExecutionListener, recording
// every search_replace invocation to the session manager's database so a
// session's edit history survives independently of the chat transcript.
type DiffApplicationRecorder struct {
	manager   *SessionManager
	userID    string
	sessionID string

	mu          sync.Mutex
	lastPathArg string
}

// NewDiffApplicationRecorder creates a recorder bound to one user/session.
func NewDiffApplicationRecorder(manager *SessionManager, userID, sessionID string) *DiffApplicationRecorder {
	return &DiffApplicationRecorder{manager: manager, userID: userID, sessionID: sessionID}
}

// isDiffApplyTool reports whether toolName is one this recorder tracks:
// either the single-shot or the chunked SEARCH/REPLACE tool.
func isDiffApplyTool(toolName string) bool {
	return toolName == "search_replace" || toolName == "streaming_search_replace"
}

// OnToolStart implements tools.ToolExecutionListener. It remembers the
// call's target path, which the result alone doesn't carry.
func (r *DiffApplicationRecorder) OnToolStart(toolName string, input interface{}) {
	if !isDiffApplyTool(toolName) {
		return
	}
	inputMap, ok := input.(map[string]any)
	if !ok {
		return
	}
	path, _ := inputMap["path"].(string)

	r.mu.Lock()
	r.lastPathArg = path
	r.mu.Unlock()
}

// OnToolProgress implements tools.ToolExecutionListener; no-op.
func (r *DiffApplicationRecorder) OnToolProgress(toolName string, stage string, progress string) {}

// OnToolComplete implements tools.ToolExecutionListener. It records
// search_replace and streaming_search_replace results; for the streaming
// tool, only completions with done=true are recorded, since intermediate
// chunks haven't written anything yet. Other tool names are ignored.
func (r *DiffApplicationRecorder) OnToolComplete(toolName string, result interface{}, err error) {
	if !isDiffApplyTool(toolName) {
		return
	}

	resultMap, ok := result.(map[string]any)
	if !ok {
		return
	}

	if toolName == "streaming_search_replace" {
		if done, _ := resultMap["done"].(bool); !done {
			return
		}
	}

	totalBlocks := asInt(resultMap["total_blocks"])
	blocksApplied := asInt(resultMap["blocks_applied"])
	success, _ := resultMap["success"].(bool)
	errMessage, _ := resultMap["error"].(string)

	var changedRegions string
	if regions, ok := resultMap["changed_regions"]; ok {
		if encoded, err := json.Marshal(regions); err == nil {
			changedRegions = string(encoded)
		}
	}

	r.mu.Lock()
	filePath := r.lastPathArg
	r.mu.Unlock()

	_ = r.manager.RecordDiffApplication(context.Background(), r.userID, r.sessionID, filePath, totalBlocks, blocksApplied, changedRegions, success, errMessage)
}

var _ tools.ToolExecutionListener = (*DiffApplicationRecorder)(nil)

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
