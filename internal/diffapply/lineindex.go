package diffapply

import "sort"

// LargeFileThreshold is the byte length above which a LineIndex is built
// to accelerate line-based matching. Below this, matchers scan directly.
// It defaults to 1 MiB but may be overridden at startup, e.g. from a CLI
// flag, via SetLargeFileThreshold.
var LargeFileThreshold = 1048576 // 1 MiB

// SetLargeFileThreshold overrides LargeFileThreshold. n <= 0 is ignored so
// a zero-value flag default never disables indexing by accident.
func SetLargeFileThreshold(n int) {
	if n > 0 {
		LargeFileThreshold = n
	}
}

// BlockAnchorMinLines is the minimum number of search lines required for
// BlockAnchorMatch to apply.
const BlockAnchorMinLines = 3

// LineIndex accelerates candidate discovery for line-based matching on
// large originals. It is built lazily, once per call, and discarded on
// return; it never mutates or outlives the original text it was built
// from.
type LineIndex struct {
	original []byte

	// lineOffsets[i] is the byte offset of line i's first byte.
	// lineOffsets[n] == len(original).
	lineOffsets []int

	// contentToPositions maps a trimmed line's content to the ascending
	// list of line indices whose trimmed content equals it.
	contentToPositions map[string][]int
}

// NewLineIndex builds a LineIndex over original in a single pass.
func NewLineIndex(original []byte) *LineIndex {
	idx := &LineIndex{original: original}

	idx.lineOffsets = append(idx.lineOffsets, 0)
	for i := 0; i < len(original); i++ {
		if original[i] == '\n' {
			idx.lineOffsets = append(idx.lineOffsets, i+1)
		}
	}
	if idx.lineOffsets[len(idx.lineOffsets)-1] != len(original) {
		idx.lineOffsets = append(idx.lineOffsets, len(original))
	}

	n := idx.lineCountFromOffsets()
	idx.contentToPositions = make(map[string][]int, n)
	for i := 0; i < n; i++ {
		trimmed := trimASCIISpace(idx.lineAtBytes(i))
		key := string(trimmed)
		idx.contentToPositions[key] = append(idx.contentToPositions[key], i)
	}

	return idx
}

// lineCountFromOffsets derives n from the sentinel-terminated offsets
// table built during construction.
func (idx *LineIndex) lineCountFromOffsets() int {
	if len(idx.lineOffsets) == 0 {
		return 0
	}
	return len(idx.lineOffsets) - 1
}

// LineCount returns n, the number of lines in the original text.
func (idx *LineIndex) LineCount() int {
	return idx.lineCountFromOffsets()
}

// OffsetOfLine returns the byte offset of line i's first byte, for
// i in [0, n]. OffsetOfLine(n) equals len(original).
func (idx *LineIndex) OffsetOfLine(i int) int {
	return idx.lineOffsets[i]
}

// lineAtBytes returns the i-th line's raw content (no trailing newline)
// as a byte slice into the original text.
func (idx *LineIndex) lineAtBytes(i int) []byte {
	start := idx.lineOffsets[i]
	end := idx.lineOffsets[i+1]
	if end > start && idx.original[end-1] == '\n' {
		end--
	}
	return idx.original[start:end]
}

// LineAt returns the i-th line's raw content (no trailing newline).
func (idx *LineIndex) LineAt(i int) string {
	return string(idx.lineAtBytes(i))
}

// PositionsOf returns the ascending list of line indices whose trimmed
// content equals trimmedLine, or nil if absent.
func (idx *LineIndex) PositionsOf(trimmedLine string) []int {
	return idx.contentToPositions[trimmedLine]
}

// FindPotentialStarts returns line indices p >= minLine such that line p's
// trimmed content equals searchLines[0]'s trimmed content, and — when
// searchLines has length k >= 2 — line p+k-1's trimmed content equals
// searchLines[k-1]'s trimmed content. Results are in ascending order.
func (idx *LineIndex) FindPotentialStarts(searchLines []string, minLine int) []int {
	if len(searchLines) == 0 {
		return nil
	}
	k := len(searchLines)
	n := idx.LineCount()

	firstTrimmed := trimASCIISpaceString(searchLines[0])
	candidates := idx.PositionsOf(firstTrimmed)

	var starts []int
	for _, p := range candidates {
		if p < minLine {
			continue
		}
		if k >= 2 {
			if p+k-1 >= n {
				continue
			}
			lastTrimmed := trimASCIISpaceString(searchLines[k-1])
			if trimASCIISpaceString(idx.LineAt(p+k-1)) != lastTrimmed {
				continue
			}
		}
		starts = append(starts, p)
	}
	sort.Ints(starts)
	return starts
}

// isASCIISpace reports whether b is one of the ASCII whitespace bytes
// the engine trims: space, tab, CR, LF, FF, VT.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	default:
		return false
	}
}

// trimASCIISpace strips leading and trailing ASCII whitespace from b.
func trimASCIISpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isASCIISpace(b[start]) {
		start++
	}
	for end > start && isASCIISpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

// trimASCIISpaceString is the string-typed convenience wrapper around
// trimASCIISpace, used when comparing against lines already held as
// strings (e.g. a SEARCH block's lines).
func trimASCIISpaceString(s string) string {
	return string(trimASCIISpace([]byte(s)))
}
