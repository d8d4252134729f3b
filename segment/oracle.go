package segment

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/uaxnav/incb"
	"github.com/rivo/uniseg"
)

// Oracle finds grapheme cluster boundaries for random positions within
// a text. An Oracle does not remember anything between calls. The zero
// value is ready to use.
//
// Oracle implements interface uaxnav.BoundaryOracle.
//
// A query does not segment the text from its start. Instead it looks back
// from the query position to the nearest position which is a cluster
// boundary no matter what precedes it, and segments forward from there.
// The cost of a query thus depends on the size of the clusters around the
// position, not on the position itself. Long runs of regional indicators
// or of emoji joined by ZWJ will make it look back further.
//
// Positions have to be at the start of a code-point or at len(text).
// Queries for other positions will panic with an error wrapping
// ErrNotAtRuneStart.
type Oracle struct{}

// IsBoundary returns true if pos is a grapheme cluster boundary in text.
func (o Oracle) IsBoundary(text string, pos int) bool {
	mustBeRuneStart(text, pos)
	if pos <= 0 || pos >= len(text) {
		return true
	}
	restart := restartAt(text, pos)
	if restart == pos {
		return true
	}
	seg := Segmenter{}
	seg.initAt(text, restart)
	for seg.Next() {
		if seg.End() >= pos {
			return seg.End() == pos
		}
	}
	return false
}

// NextBoundary returns the smallest cluster boundary > pos.
// If pos is at or after the end of text, there is none.
func (o Oracle) NextBoundary(text string, pos int) (int, bool) {
	mustBeRuneStart(text, pos)
	if pos >= len(text) {
		return len(text), false
	}
	if pos < 0 {
		pos = 0
	}
	seg := Segmenter{}
	seg.initAt(text, restartAt(text, pos))
	for seg.Next() {
		if seg.End() > pos {
			return seg.End(), true
		}
	}
	return len(text), true
}

// PrevBoundary returns the largest cluster boundary < pos.
// If pos is at or before the start of text, there is none.
func (o Oracle) PrevBoundary(text string, pos int) (int, bool) {
	mustBeRuneStart(text, pos)
	if pos <= 0 {
		return 0, false
	}
	if pos > len(text) {
		pos = len(text)
	}
	_, size := utf8.DecodeLastRuneInString(text[:pos])
	prev := restartAt(text, pos-size)
	seg := Segmenter{}
	seg.initAt(text, prev)
	for seg.Next() {
		if seg.End() >= pos {
			break
		}
		prev = seg.End()
	}
	return prev, true
}

// FirstCluster returns the first grapheme cluster of text.
func (o Oracle) FirstCluster(text string) string {
	if text == "" {
		return ""
	}
	cluster, _ := firstCluster(text, -1)
	return cluster
}

func mustBeRuneStart(text string, pos int) {
	if pos > 0 && pos < len(text) && !utf8.RuneStart(text[pos]) {
		CT().Errorf("segment: boundary query at offset %d, inside a code-point", pos)
		panic(fmt.Errorf("%w: offset %d in %+q", ErrNotAtRuneStart, pos, text))
	}
}

// --- Restart positions -----------------------------------------------------

// restartAt returns the largest code-point start ≤ pos which is a cluster
// boundary whatever text precedes it. Segmentation may start over there with
// a fresh state. pos has to be a code-point start.
func restartAt(text string, pos int) int {
	for pos > 0 && !isUnconditionalBoundary(text, pos) {
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		pos -= size
	}
	return pos
}

// isUnconditionalBoundary is true if UAX#29 breaks between the code-points
// left and right of pos, independent of any code-points further left.
//
// Most grapheme rules look at a pair of code-points only. The exceptions are
// GB9c (Indic conjuncts), GB11 (emoji ZWJ sequences) and GB12/13 (regional
// indicator pairs). A pair which is involved in one of these is never
// considered unconditional. For every other pair, the answer of a segmenter
// for the isolated pair is the answer for the pair in context.
func isUnconditionalBoundary(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	left, lsize := utf8.DecodeLastRuneInString(text[:pos])
	right, rsize := utf8.DecodeRuneInString(text[pos:])
	if left == zwj || isRegionalIndicator(right) || incb.ClassForRune(right) == incb.ConsonantClass {
		return false
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[pos-lsize:pos+rsize], -1)
	return len(cluster) == lsize
}

const zwj = '\u200D'

func isRegionalIndicator(r rune) bool {
	return r >= '\U0001F1E6' && r <= '\U0001F1FF'
}
