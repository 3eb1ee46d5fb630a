// Package diffapply implements the incremental SEARCH/REPLACE diff
// applicator used by the coding agent to turn a streamed sequence of
// fenced edit blocks into the new contents of a file.
//
// It consumes a diff chunk and the original file content and locates each
// SEARCH section in the original using a ladder of three matching
// strategies (exact, line-trimmed, block-anchor), substituting the
// corresponding REPLACE section. The package has no knowledge of chat
// protocols, editors, or file I/O: callers pass bytes in and get bytes
// plus change-region metadata back out.
package diffapply
