/*
Package grapheme navigates text by Unicode Annex #29 grapheme clusters.

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences. Grapheme clusters approximate what a user perceives as
a single character: a base letter together with combining marks, an emoji
sequence, a Hangul syllable or an Indic conjunct.

Navigating by Byte Offsets

Editors and terminals usually address text by byte offsets, which may
point anywhere: to the start of a cluster, to one of the trailing code-points
of a cluster or even into the middle of a multi-byte code-point. Functions of
this package accept any offset. Before asking a boundary oracle about an
offset, they re-synchronize it to a code-point start:

	s := "ae\u0301"                 // 'a' followed by 'e' and U+0301
	grapheme.ClusterStartAt(s, 3)   // => 1
	grapheme.ClusterAt(s, 3)        // => "e\u0301"
	grapheme.NextClusterStart(s, 0) // => 1
	grapheme.PrevClusterStart(s, 4) // => 1
	grapheme.ClusterCount(s)        // => 2

All functions are total. Offsets < 0 are treated as 0, offsets > len(s) as
len(s), and the absence of a cluster is reported by one of the sentinels
0, len(s) or "". Strings returned are sub-strings of the input.

Nothing is cached between calls. Navigating from an offset asks the boundary
oracle at most twice, and the default oracle segments only the clusters around
the offset. Ordinal access (NthCluster, ClusterCount, …) scans from the
beginning of the text and is therefore O(N) per call.

Navigators

The package level functions use a default Navigator. Clients may configure
their own:

	nav := grapheme.NewNavigator(grapheme.WithEastAsianWidth())
	nav.ClusterWidthAt("\u2018", 0) // => 2

Navigators are immutable and may be used concurrently.

Grapheme Strings

This package provides an additional convenience type `grapheme.String`.
Grapheme strings are a read-only data structure and not intended for large
texts, but rather for small to medium-sized strings. For larger texts
clients should use a segmenter (see Clusters).

	s := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %d", s.Len())                      // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))   // => 3

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
