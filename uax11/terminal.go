package uax11

import (
	"github.com/mattn/go-runewidth"
)

// Terminal measures grapheme clusters the way terminal emulators and
// terminal UI libraries built on package go-runewidth do. Results may differ
// from Context: go-runewidth measures a cluster by its first visible rune,
// while Context sums up the widths of all runes of a cluster.
//
// A *Terminal implements interface uaxnav.WidthOracle.
type Terminal struct {
	cond *runewidth.Condition
}

// NewTerminal creates a terminal width oracle. If eastAsian is true,
// ambiguous characters are treated as wide.
func NewTerminal(eastAsian bool) *Terminal {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Terminal{cond: cond}
}

// TerminalFromEnvironment creates a terminal width oracle from the locale
// settings of the environment (LC_ALL, LC_CTYPE, LANG).
func TerminalFromEnvironment() *Terminal {
	eastAsian := runewidth.IsEastAsian()
	T().Infof("UAX#11 terminal width, East Asian = %v", eastAsian)
	return NewTerminal(eastAsian)
}

// ClusterWidth returns the number of terminal cells occupied by a
// grapheme cluster.
//
// (Interface uaxnav.WidthOracle)
func (term *Terminal) ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	return term.cond.StringWidth(cluster)
}
