package uaxnav

// BoundaryOracle represents an algorithm to find grapheme cluster boundaries
// in UTF-8 text. Text positions are byte offsets.
//
// Oracles are only required to answer queries at code-point starts
// (or at len(text)). They are free to panic if asked about positions
// within a multi-byte code-point. Clients with untrusted offsets must
// re-synchronize them first.
//
// Position 0 and position len(text) are always boundaries.
type BoundaryOracle interface {
	// IsBoundary returns true if pos is a cluster boundary in text.
	IsBoundary(text string, pos int) bool
	// NextBoundary returns the smallest boundary > pos, or false if
	// there is none.
	NextBoundary(text string, pos int) (int, bool)
	// PrevBoundary returns the largest boundary < pos, or false if there
	// is none.
	PrevBoundary(text string, pos int) (int, bool)
	// FirstCluster returns the first grapheme cluster of text, which is
	// expected to start at a boundary. For an empty text it returns "".
	FirstCluster(text string) string
}

// WidthOracle represents a metric for the display width of a grapheme cluster,
// in units of monospace columns. Widths are never negative.
type WidthOracle interface {
	ClusterWidth(cluster string) int
}
