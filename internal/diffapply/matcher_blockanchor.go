package diffapply

// BlockAnchorMatch locates a multi-line (k >= BlockAnchorMinLines) search
// block by anchoring on its first and last lines only, ignoring interior
// drift. It is the last-resort matcher in the Exact -> LineTrimmed ->
// BlockAnchor precedence ladder.
func BlockAnchorMatch(original []byte, searchContent string, cursor int, idx *LineIndex) (start, end int, ok bool) {
	searchLines := splitDropTrailingEmpty(searchContent)
	k := len(searchLines)
	if k < BlockAnchorMinLines {
		return 0, 0, false
	}

	view := newLinesView(original, idx)
	n := view.lineCount()
	startLine := firstLineAtOrAfter(view, cursor)

	anchorFirst := trimASCIISpaceString(searchLines[0])
	anchorLast := trimASCIISpaceString(searchLines[k-1])

	for p := startLine; p+k-1 < n; p++ {
		if trimASCIISpaceString(view.lineAt(p)) != anchorFirst {
			continue
		}
		if trimASCIISpaceString(view.lineAt(p+k-1)) != anchorLast {
			continue
		}
		return view.offsetOfLine(p), view.offsetOfLine(p + k), true
	}
	return 0, 0, false
}
