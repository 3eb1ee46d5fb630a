package diffapply

// ChangeRegion describes a contiguous span in the result text produced by
// applying a single SEARCH/REPLACE block. Offsets and line numbers are in
// result coordinates, not original coordinates.
type ChangeRegion struct {
	StartLine   int `json:"startLine"`
	EndLine     int `json:"endLine"`
	StartOffset int `json:"startOffset"`
	EndOffset   int `json:"endOffset"`
}

// FileChangeResult is the output of applying a diff chunk: the new file
// contents plus the regions of that content touched by this call.
type FileChangeResult struct {
	Content        []byte         `json:"-"`
	ChangedRegions []ChangeRegion `json:"changedRegions"`
}

// block is the internal bookkeeping state for one SEARCH/REPLACE block
// while it is being parsed and applied. It exists only between the
// SEARCH marker and the REPLACE marker; malformed re-entry discards it.
type block struct {
	searchLines  []string
	replaceLines []string

	matchStart       int
	matchEnd         int
	haveMatch        bool
	replacementStart int
}
