/*
Package uax11 measures the display width of grapheme clusters, based on
Unicode® Standard Annex #11 “East Asian Width”.

Widths are counted in units of monospace columns, where a column is half of an
“Em”, the square cell of a traditional East Asian fixed pitch font. Every
code-point carries an East_Asian_Width category (see WidthCategory). Most
categories translate directly to a width of one or two columns. Category A
(“ambiguous”) does not: whether ‘ or é are narrow or wide depends on the
typesetting environment. A Context captures that environment, either set up
explicitly or detected from the user's locale (ContextFromEnvironment).

The width of a cluster is the sum of the widths of its code-points. Marks,
format characters and trailing Hangul jamo contribute nothing. Quotation marks
followed by a variation selector are measured as selected: VS1 narrow, VS2 wide.

Width Oracles

Package uax11 provides two implementations of interface uaxnav.WidthOracle,
the metric used by package grapheme to measure clusters.
A *Context sums up the widths of the runes of a grapheme cluster, resolving
ambiguous characters according to the typesetting environment:

	uax11.LatinContext.ClusterWidth("\u0928\u094D\u0926\u0940") // => 3
	uax11.EastAsianContext.ClusterWidth("\u00E9")                  // => 2
	uax11.LatinContext.ClusterWidth("\u2018\uFE01")               // => 2

A *Terminal agrees with terminal libraries built on package go-runewidth,
which measure a cluster by its first visible rune.

Caveats

Determining the legacy fixed-width display length is not an exact science.
Much depends on the properties of output devices, on fonts used, on a device's
interpretation of display rules, etc. Clients should treat results of UAX#11
as heuristics. Using proportional fonts is almost always a better solution.

___________________________________________________________________________

BSD License

Copyright © 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package uax11

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
