package grapheme

import "unicode/utf8"

// Boundary oracles are only defined at code-point starts. Every public entry
// point re-synchronizes offsets from clients before the first oracle query.

// resyncBackward returns the nearest code-point start ≤ pos.
// pos must be in [0…len(s)]; len(s) is left unchanged.
func resyncBackward(s string, pos int) int {
	for pos > 0 && pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos--
	}
	return pos
}

// resyncForward returns the nearest code-point start ≥ pos, or len(s).
func resyncForward(s string, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}
	if pos > len(s) {
		return len(s)
	}
	return pos
}

// clamp clips an offset from a client to [0…len(s)].
func clamp(s string, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s) {
		return len(s)
	}
	return pos
}
