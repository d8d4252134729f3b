/*
Package incb implements the Unicode Indic_Conjunct_Break property.

Indic_Conjunct_Break (InCB) has been introduced with Unicode 15.1 to keep
orthographic syllables of some Brahmic scripts together, e.g. Devanagari
“न्दी”, which is a conjunct of NA, VIRAMA, DA and the vowel sign II.
Grapheme breaking rule GB9c of UAX#29 makes use of it:

	\p{InCB=Consonant} [\p{InCB=Extend}\p{InCB=Linker}]* \p{InCB=Linker} [\p{InCB=Extend}\p{InCB=Linker}]* × \p{InCB=Consonant}

Tables for classes Consonant, Linker and Extend are generated from
DerivedCoreProperties.txt (see internal/generator).

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

Attention

Before using ClassForRune, clients will have to initialize the lookup
table for InCB classes.

	SetupInCBClasses()

ClassForRune will do this behind the scenes.
*/
package incb

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

//go:generate go run ./internal/generator -v

// Class is the Indic_Conjunct_Break class of a code-point.
type Class int8

// These are the InCB classes.
const (
	NoneClass Class = iota
	ConsonantClass
	LinkerClass
	ExtendClass
)

func (c Class) String() string {
	switch c {
	case ConsonantClass:
		return "Consonant"
	case LinkerClass:
		return "Linker"
	case ExtendClass:
		return "Extend"
	}
	return "None"
}

// incbAny contains the code-points of all InCB classes but None.
// Will be initialized with SetupInCBClasses().
var incbAny *unicode.RangeTable

var setupOnce sync.Once

// SetupInCBClasses creates the lookup table for InCB classes.
// (Concurrency-safe).
func SetupInCBClasses() {
	setupOnce.Do(func() {
		incbAny = rangetable.Merge(Consonant, Linker, Extend)
	})
}

// ClassForRune is the top-level client function:
// Get the InCB class for a Unicode code-point.
func ClassForRune(r rune) Class {
	SetupInCBClasses()
	if !unicode.Is(incbAny, r) {
		return NoneClass
	}
	switch {
	case unicode.Is(Linker, r):
		return LinkerClass
	case unicode.Is(Consonant, r):
		return ConsonantClass
	case unicode.Is(Extend, r):
		return ExtendClass
	}
	return NoneClass
}

// ConjunctState tracks the left-hand side of rule GB9c over a sequence of
// code-points. The zero value is the start state.
type ConjunctState uint8

const (
	conjunctNone      ConjunctState = iota
	conjunctConsonant               // seen Consonant
	conjunctExtend                  // seen Consonant Extend*, no Linker yet
	conjunctLinker                  // seen Consonant [Extend Linker]* Linker [Extend Linker]*
)

// Transition returns the state after reading a code-point of class c.
func (s ConjunctState) Transition(c Class) ConjunctState {
	switch c {
	case ConsonantClass:
		return conjunctConsonant
	case LinkerClass:
		if s != conjunctNone {
			return conjunctLinker
		}
	case ExtendClass:
		switch s {
		case conjunctConsonant, conjunctExtend:
			return conjunctExtend
		case conjunctLinker:
			return conjunctLinker
		}
	}
	return conjunctNone
}

// Linked is true if a following Consonant must not be separated, according
// to GB9c.
func (s ConjunctState) Linked() bool {
	return s == conjunctLinker
}

// Scan runs the state machine over a string, starting in state s.
func (s ConjunctState) Scan(text string) ConjunctState {
	for _, r := range text {
		s = s.Transition(ClassForRune(r))
	}
	return s
}
