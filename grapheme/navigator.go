package grapheme

import (
	"github.com/npillmayer/uaxnav"
	"github.com/npillmayer/uaxnav/segment"
	"github.com/npillmayer/uaxnav/uax11"
)

// Navigator navigates text by grapheme clusters, consulting a boundary oracle
// and a width oracle. A Navigator holds no state other than its oracles; it
// is immutable after construction and may be shared between goroutines.
//
// All methods of Navigator are total: they accept any offset, clamping
// negative offsets to 0 and offsets beyond the text to len(text), and they
// report “no such cluster” with one of the sentinels 0, len(text) or "".
// Strings returned are sub-strings of the text given, never copies.
type Navigator struct {
	boundaries uaxnav.BoundaryOracle
	widths     uaxnav.WidthOracle
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithBoundaryOracle sets the oracle to find cluster boundaries.
// Default is segment.Oracle. A nil oracle is ignored.
func WithBoundaryOracle(oracle uaxnav.BoundaryOracle) Option {
	return func(nav *Navigator) {
		if oracle != nil {
			nav.boundaries = oracle
		}
	}
}

// WithWidthOracle sets the oracle to measure clusters.
// Default is uax11.LatinContext. A nil oracle is ignored.
func WithWidthOracle(oracle uaxnav.WidthOracle) Option {
	return func(nav *Navigator) {
		if oracle != nil {
			nav.widths = oracle
		}
	}
}

// WithEastAsianWidth lets the Navigator measure clusters in an East Asian
// context, i.e. treat characters of ambiguous width as wide.
func WithEastAsianWidth() Option {
	return WithWidthOracle(uax11.EastAsianContext)
}

// NewNavigator creates a Navigator. Without options it segments text with
// segment.Oracle and measures clusters with uax11.LatinContext.
func NewNavigator(opts ...Option) *Navigator {
	nav := &Navigator{
		boundaries: segment.Oracle{},
		widths:     uax11.LatinContext,
	}
	for _, opt := range opts {
		opt(nav)
	}
	return nav
}

// defaultNavigator is used by the package level functions.
var defaultNavigator = NewNavigator()

func (nav *Navigator) cursor(s string, pos int) *cursor {
	return borrowCursor(s, clamp(s, pos), nav.boundaries)
}
