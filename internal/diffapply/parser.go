package diffapply

import "strings"

// Marker lines recognized by the state machine. They must match exactly,
// including case and the absence of leading/trailing whitespace.
const (
	markerSearchStart = "<<<<<<< SEARCH"
	markerDivider     = "======="
	markerReplaceEnd  = ">>>>>>> REPLACE"
)

// isRecognizedMarker reports whether s is exactly one of the three
// recognized marker lines.
func isRecognizedMarker(s string) bool {
	return s == markerSearchStart || s == markerDivider || s == markerReplaceEnd
}

type parserState int

const (
	stateIdle parserState = iota
	stateInSearch
	stateInReplace
)

// lineEvent reports what happened in response to feeding one line into
// the parser, so the Processor knows what (if anything) to do next.
type lineEvent int

const (
	// eventNone: no action needed; the line was buffered or discarded
	// internally by the parser.
	eventNone lineEvent = iota
	// eventSearchReady: the search body is finalized; payload is the
	// search content (joined lines + trailing "\n", or "" if the search
	// body was empty). The Processor must locate a match.
	eventSearchReady
	// eventReplaceLine: a replace-body line was read; payload is that
	// line's text (without a newline). The Processor appends it to the
	// result only if a match is already known for the current block.
	eventReplaceLine
	// eventBlockClosed: the REPLACE marker was seen; the Processor must
	// commit the change region for the current block, if it has a match.
	eventBlockClosed
	// eventAbandoned: the current block was discarded mid-replace due to
	// malformed input (a stray SEARCH or "=======" line). The Processor
	// must clear its per-block match state without touching the cursor
	// or anything already appended to the result.
	eventAbandoned
)

// BlockParser recognizes the three marker lines of the SEARCH/REPLACE
// wire format and accumulates search/replace segments, one line at a
// time. It holds no knowledge of the original text or how to locate a
// match; that is the Processor's job.
type BlockParser struct {
	state   parserState
	current block
}

// NewBlockParser returns a parser positioned at the Idle state.
func NewBlockParser() *BlockParser {
	return &BlockParser{state: stateIdle}
}

// Feed advances the state machine by one complete line (no trailing
// newline) and reports the resulting event and its payload, if any.
func (p *BlockParser) Feed(line string) (lineEvent, string) {
	switch p.state {
	case stateIdle:
		if line == markerSearchStart {
			p.current = block{}
			p.state = stateInSearch
		}
		return eventNone, ""

	case stateInSearch:
		switch line {
		case markerDivider:
			p.state = stateInReplace
			return eventSearchReady, p.finalizeSearchContent()
		case markerSearchStart:
			// Abandon the current block and start a fresh one.
			p.current = block{}
			return eventNone, ""
		case markerReplaceEnd:
			// Malformed: a REPLACE marker with no preceding "=======".
			p.current = block{}
			p.state = stateIdle
			return eventNone, ""
		default:
			p.current.searchLines = append(p.current.searchLines, line)
			return eventNone, ""
		}

	default: // stateInReplace
		switch line {
		case markerReplaceEnd:
			p.state = stateIdle
			return eventBlockClosed, ""
		case markerSearchStart:
			p.current = block{}
			p.state = stateInSearch
			return eventAbandoned, ""
		case markerDivider:
			// Malformed: a second "=======" while already replacing.
			// Re-entry into a fresh InReplace block is not permitted;
			// discard and stay in InReplace per the recovery rule.
			p.current = block{}
			return eventAbandoned, ""
		default:
			p.current.replaceLines = append(p.current.replaceLines, line)
			return eventReplaceLine, line
		}
	}
}

// finalizeSearchContent joins the accumulated search lines, appending a
// single trailing newline, unless no search lines were accumulated at
// all, in which case the search content is empty.
func (p *BlockParser) finalizeSearchContent() string {
	if len(p.current.searchLines) == 0 {
		return ""
	}
	return strings.Join(p.current.searchLines, "\n") + "\n"
}
