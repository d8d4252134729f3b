/*
Package segment is about Unicode grapheme cluster segmenting.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for stepping through
the grapheme clusters of a string. Similar to Scanner's Scan() function,
successive calls to a segmenter's Next() method will step through the clusters
of the text. Clients are able to get the bytes of a cluster by calling Bytes()
or Text(), and its position within the text by calling Start() and End().

  segmenter := segment.NewSegmenter()
  segmenter.Init("Hello 🇫🇷")
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

Oracle is a stateless wrapper around a Segmenter, answering boundary questions
for random positions. It is the default implementation of
uaxnav.BoundaryOracle.

How it works

The heavy lifting of UAX#29 grapheme breaking is done by package
github.com/rivo/uniseg. On top of the clusters found by uniseg, the segmenter
applies rule GB9c (Indic conjunct break, Unicode 15.1): whenever a cluster ends
in an InCB linker sequence and the next cluster starts with an InCB consonant,
both clusters are glued together. Classes are taken from package incb. */
package segment

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxnav/incb"
	"github.com/rivo/uniseg"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNotAtRuneStart flags a position which is not the start of a UTF-8
// encoded code-point.
var ErrNotAtRuneStart = errors.New("UAX segmenter: position is not at the start of a code-point")

// A Segmenter steps through the grapheme clusters of a string.
// A segmenter is borrowing the string it has been initialized with and
// must not be used after the string has been dropped.
//
// The zero value is not initialized and will not produce any segments.
type Segmenter struct {
	text  string // the text to segment
	start int    // start position of the current segment
	end   int    // end position of the current segment
	state int    // uniseg state after the current segment
}

// NewSegmenter creates a new grapheme cluster segmenter.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a text.
func NewSegmenter() *Segmenter {
	return &Segmenter{state: -1}
}

// Init initializes a Segmenter with a text to segment. s is either a newly
// created segmenter to be initialized, or we may re-initialize a segmenter
// already in use.
func (s *Segmenter) Init(text string) {
	s.text = text
	s.start, s.end = 0, 0
	s.state = -1
}

// initAt initializes a Segmenter to start segmenting text at position pos,
// which has to be a cluster boundary independent of the text before it.
func (s *Segmenter) initAt(text string, pos int) {
	s.text = text
	s.start, s.end = pos, pos
	s.state = -1
}

// Next gets the next grapheme cluster.
//
// Next() advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops by reaching the end of the input.
func (s *Segmenter) Next() bool {
	if s.end >= len(s.text) {
		s.start = s.end
		return false
	}
	var cluster string
	s.start = s.end
	cluster, s.state = firstCluster(s.text[s.start:], s.state)
	s.end += len(cluster)
	return true
}

// Bytes returns the most recent segment generated by a call to Next().
func (s *Segmenter) Bytes() []byte {
	return []byte(s.text[s.start:s.end])
}

// Text returns the most recent segment generated by a call to Next().
// The result is a sub-string of the text the segmenter has been initialized
// with. No allocation is performed.
func (s *Segmenter) Text() string {
	return s.text[s.start:s.end]
}

// Start returns the byte position of the most recent segment.
func (s *Segmenter) Start() int {
	return s.start
}

// End returns the byte position following the most recent segment.
func (s *Segmenter) End() int {
	return s.end
}

// firstCluster returns the first grapheme cluster of text, given the uniseg
// state of the preceding cluster (-1 at the start of the text).
// It returns the uniseg state after the cluster.
func firstCluster(text string, state int) (string, int) {
	cluster, rest, _, state := uniseg.FirstGraphemeClusterInString(text, state)
	conjunct := incb.ConjunctState(0).Scan(cluster)
	for conjunct.Linked() && rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		if incb.ClassForRune(r) != incb.ConsonantClass {
			break
		}
		var next string
		next, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		CT().P("rune", fmt.Sprintf("%#U", r)).Debugf("segment: gluing Indic conjunct %q + %q", cluster, next)
		cluster = text[:len(cluster)+len(next)]
		conjunct = conjunct.Scan(next)
	}
	return cluster, state
}
