/*
Package uaxnav is about navigating Unicode text by grapheme clusters.

Description

From the Unicode Consortium (UAX#29):

It is important to recognize that what the user thinks of as a “character”—a
basic unit of a writing system for a language—may not be just a single Unicode
code point. Instead, that basic unit may be made up of multiple Unicode code
points. To avoid ambiguity with the computer use of the term character, this is
called a user-perceived character. For example, “G” + grave-accent is a
user-perceived character: users think of it as a single character, yet is
actually represented by two Unicode code points. These user-perceived
characters are approximated by what is called a grapheme cluster, which can be
determined programmatically.

[...]

Editors, terminals and layout engines rarely hold a cluster index in their
hands. They hold byte offsets, accumulated from unrelated arithmetic, which may
point into the middle of a multi-byte code-point or into the middle of a
multi-code-point cluster. Segmentation algorithms, on the other hand, are only
safe to consult at exact code-point boundaries.

Contents

Package uaxnav defines the two collaborators every navigation operation relies
on: a BoundaryOracle, answering questions about grapheme cluster boundaries, and
a WidthOracle, measuring the display width of a cluster. The default boundary
oracle lives in sub-package segment, the default width oracle in sub-package
uax11. The navigation engine itself lives in sub-package grapheme: it takes
arbitrary byte offsets, re-synchronizes them to code-point starts and only then
consults the oracles.

	grapheme.ClusterStartAt("ae\u0301", 3)              // => 1
	grapheme.NextCluster("abc", 1)                      // => "c"
	grapheme.ClusterCount("\U0001F1EB\U0001F1F7") // => 1

All operations of package grapheme are total. Out-of-range offsets are clamped,
and any “no such cluster” condition is reported as a sentinel: 0, len(text) or
the empty string.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uaxnav
