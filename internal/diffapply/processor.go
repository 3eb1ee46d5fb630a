package diffapply

import (
	"bytes"
	"strings"
)

// ApplyDiffChunk is the engine's single entry point. diff is the full
// diff text produced so far for one edit operation (the model's output
// accumulated up to this point, which may be partial); original is the
// unmodified file content the SEARCH blocks are matched against.
//
// The call is self-contained: it reparses diff from the start against
// the unchanged original every time. A caller streaming a model
// response passes the growing diff buffer on successive calls, with
// isFinal true only once no further diff text will arrive; each call's
// result is a valid snapshot of the content as applied so far, so a
// caller may render intermediate results as they arrive.
func ApplyDiffChunk(diff []byte, original []byte, isFinal bool) (FileChangeResult, error) {
	if isFinal && !bytes.Contains(diff, []byte(markerSearchStart)) {
		content := append([]byte(nil), original...)
		return FileChangeResult{Content: content, ChangedRegions: []ChangeRegion{}}, nil
	}

	trimmed := stripPartialTrailingMarker(diff)

	var idx *LineIndex
	if len(original) > LargeFileThreshold {
		idx = NewLineIndex(original)
	}

	r := &run{original: original, idx: idx, regions: []ChangeRegion{}}
	parser := NewBlockParser()

	for _, line := range linesToFeed(trimmed) {
		event, payload := parser.Feed(line)
		switch event {
		case eventSearchReady:
			if err := r.onSearchReady(payload); err != nil {
				return FileChangeResult{}, err
			}
		case eventReplaceLine:
			r.onReplaceLine(payload)
		case eventBlockClosed:
			r.onBlockClosed()
		case eventAbandoned:
			r.onAbandoned()
		}
	}

	if isFinal {
		r.result = append(r.result, r.original[r.cursor:]...)
	}

	return FileChangeResult{Content: r.result, ChangedRegions: r.regions}, nil
}

// run holds the state of one ApplyDiffChunk call: the cursor into
// original, the result built so far, the regions changed so far, and
// the match (if any) found for the block currently being replaced.
type run struct {
	original []byte
	idx      *LineIndex

	cursor  int
	result  []byte
	regions []ChangeRegion

	haveMatch        bool
	matchStart       int
	matchEnd         int
	replacementStart int
}

// onSearchReady locates searchContent in original at or after the
// cursor via the Exact -> LineTrimmed -> BlockAnchor ladder, appends
// the untouched prefix up to the match to the result, and opens the
// current block's match state.
func (r *run) onSearchReady(searchContent string) error {
	var start, end int

	if searchContent == "" {
		// An empty SEARCH body matches the whole remaining original
		// from the cursor: whole-file replacement when cursor is 0,
		// or replacement of everything from the cursor to the end
		// otherwise.
		start, end = r.cursor, len(r.original)
	} else {
		var ok bool
		start, end, ok = ExactMatch(r.original, []byte(searchContent), r.cursor)
		if !ok {
			start, end, ok = LineTrimmedMatch(r.original, searchContent, r.cursor, r.idx)
		}
		if !ok {
			start, end, ok = BlockAnchorMatch(r.original, searchContent, r.cursor, r.idx)
		}
		if !ok {
			return newNoMatchError(searchContent)
		}
	}

	r.result = append(r.result, r.original[r.cursor:start]...)
	r.matchStart = start
	r.matchEnd = end
	r.haveMatch = true
	r.replacementStart = len(r.result)
	return nil
}

// onReplaceLine appends a replace-body line to the result, immediately,
// as the streaming output contract requires. A block with no match
// (abandoned mid-replace) contributes nothing.
func (r *run) onReplaceLine(line string) {
	if !r.haveMatch {
		return
	}
	r.result = append(r.result, line...)
	r.result = append(r.result, '\n')
}

// onBlockClosed commits the change region for the current block and
// advances the cursor past its match. A block with no match contributes
// nothing and leaves the cursor untouched.
func (r *run) onBlockClosed() {
	if !r.haveMatch {
		return
	}
	r.regions = append(r.regions, ChangeRegion{
		StartOffset: r.replacementStart,
		EndOffset:   len(r.result),
		StartLine:   bytes.Count(r.result[:r.replacementStart], []byte("\n")),
		EndLine:     bytes.Count(r.result, []byte("\n")),
	})
	r.cursor = r.matchEnd
	r.haveMatch = false
}

// onAbandoned clears the current block's match state after a malformed
// recovery, without touching the cursor or anything already appended to
// the result.
func (r *run) onAbandoned() {
	r.haveMatch = false
}

// stripPartialTrailingMarker drops diff's final line when that line is
// not newline-terminated and starts with a marker character (<, =, >)
// without being exactly one of the three recognized markers: it is a
// marker still arriving, and must not be read as body content yet.
func stripPartialTrailingMarker(diff []byte) []byte {
	s := string(diff)
	idx := strings.LastIndexByte(s, '\n')
	lastLine := s[idx+1:]
	if lastLine == "" {
		return diff
	}
	switch lastLine[0] {
	case '<', '=', '>':
		if !isRecognizedMarker(lastLine) {
			return []byte(s[:idx+1])
		}
	}
	return diff
}

// linesToFeed splits diff into the complete lines the parser should
// see, dropping the single split artifact produced when diff ends in a
// newline. A genuine blank line elsewhere in diff is preserved.
func linesToFeed(diff []byte) []string {
	lines := strings.Split(string(diff), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
