package diffapply

import "strings"

// linesView gives the line-based matchers a uniform way to address lines
// and line offsets in the original text, whether or not a LineIndex was
// built for this call. Below the large-file threshold the Processor
// passes idx == nil and matchers fall back to a direct scan.
type linesView struct {
	idx     *LineIndex
	offsets []int
	lines   []string
}

func newLinesView(original []byte, idx *LineIndex) *linesView {
	if idx != nil {
		return &linesView{idx: idx}
	}
	offsets, lines := scanLines(original)
	return &linesView{offsets: offsets, lines: lines}
}

func (v *linesView) lineCount() int {
	if v.idx != nil {
		return v.idx.LineCount()
	}
	return len(v.lines)
}

func (v *linesView) offsetOfLine(i int) int {
	if v.idx != nil {
		return v.idx.OffsetOfLine(i)
	}
	return v.offsets[i]
}

func (v *linesView) lineAt(i int) string {
	if v.idx != nil {
		return v.idx.LineAt(i)
	}
	return v.lines[i]
}

// firstLineAtOrAfter returns the smallest line index i such that
// offsetOfLine(i) >= cursor, via binary search (offsets are monotonic).
func firstLineAtOrAfter(view *linesView, cursor int) int {
	lo, hi := 0, view.lineCount()
	for lo < hi {
		mid := (lo + hi) / 2
		if view.offsetOfLine(mid) >= cursor {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// findPotentialStartsLinear is the direct-scan equivalent of
// LineIndex.FindPotentialStarts, used when original is small enough that
// no LineIndex was built.
func findPotentialStartsLinear(view *linesView, searchLines []string, minLine int) []int {
	k := len(searchLines)
	n := view.lineCount()

	firstTrimmed := trimASCIISpaceString(searchLines[0])
	var lastTrimmed string
	if k >= 2 {
		lastTrimmed = trimASCIISpaceString(searchLines[k-1])
	}

	var starts []int
	for p := minLine; p+k-1 < n; p++ {
		if trimASCIISpaceString(view.lineAt(p)) != firstTrimmed {
			continue
		}
		if k >= 2 && trimASCIISpaceString(view.lineAt(p+k-1)) != lastTrimmed {
			continue
		}
		starts = append(starts, p)
	}
	return starts
}

// scanLines splits original into lines and their start offsets without
// building a trimmed-content map, mirroring LineIndex's own line-offset
// construction exactly (see lineindex.go for the invariant this upholds).
func scanLines(original []byte) (offsets []int, lines []string) {
	offsets = append(offsets, 0)
	start := 0
	for i := 0; i < len(original); i++ {
		if original[i] == '\n' {
			lines = append(lines, string(original[start:i]))
			offsets = append(offsets, i+1)
			start = i + 1
		}
	}
	if offsets[len(offsets)-1] != len(original) {
		lines = append(lines, string(original[start:]))
		offsets = append(offsets, len(original))
	}
	return offsets, lines
}

// splitDropTrailingEmpty splits s on "\n" and drops a trailing empty
// element, which absorbs the trailing newline the Processor always
// appends to a block's search content.
func splitDropTrailingEmpty(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
