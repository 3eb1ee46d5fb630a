package diffapply

// LineTrimmedMatch locates searchContent in original at or after cursor,
// comparing lines after stripping leading/trailing ASCII whitespace from
// each side. idx may be nil, in which case candidate lines are found by
// direct scan instead of an index lookup.
func LineTrimmedMatch(original []byte, searchContent string, cursor int, idx *LineIndex) (start, end int, ok bool) {
	searchLines := splitDropTrailingEmpty(searchContent)
	k := len(searchLines)
	if k == 0 {
		return 0, 0, false
	}

	view := newLinesView(original, idx)
	n := view.lineCount()
	startLine := firstLineAtOrAfter(view, cursor)

	var candidates []int
	if idx != nil {
		candidates = idx.FindPotentialStarts(searchLines, startLine)
	} else {
		candidates = findPotentialStartsLinear(view, searchLines, startLine)
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}

	for _, p := range candidates {
		if p+k > n {
			continue
		}
		matched := true
		for j := 0; j < k; j++ {
			if trimASCIISpaceString(view.lineAt(p+j)) != trimASCIISpaceString(searchLines[j]) {
				matched = false
				break
			}
		}
		if matched {
			return view.offsetOfLine(p), view.offsetOfLine(p + k), true
		}
	}
	return 0, 0, false
}
