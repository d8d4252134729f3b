package uax11

import (
	"unicode"
	"unicode/utf8"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/uaxnav/segment"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Category is one of 6 char categories as defined in UAX#11.
type Category int8

// East_Asian_Width properties
const (
	N  Category = iota // Neutral (Not East Asian)
	A                  // East Asian Ambiguous
	W                  // East Asian Wide
	Na                 // East Asian Narrow
	H                  // East Asian Halfwidth
	F                  // East Asian Fullwidth
)

func (c Category) String() string {
	switch c {
	case A:
		return "A"
	case W:
		return "W"
	case Na:
		return "Na"
	case H:
		return "H"
	case F:
		return "F"
	}
	return "N"
}

// WidthCategory returns the width category of a single rune as proposed by the UAX#11
// standard. Please note that this is most probably not what clients will want to use in
// full-grown international applications, as it is preferable to work on graphemes
// rather than on runes. This function is nevertheless provided as a low
// level API function corresponding to UAX#11 section 6.
//
// Returns one of N, A, Na, W, H, F.
//
func WidthCategory(r rune) Category {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianAmbiguous:
		return A
	case width.EastAsianWide:
		return W
	case width.EastAsianNarrow:
		return Na
	case width.EastAsianHalfwidth:
		return H
	case width.EastAsianFullwidth:
		return F
	}
	if unicode.Is(_CJK_Default_W, r) {
		return W
	}
	// UAX#11:
	//  - All code points, assigned or unassigned, that are not listed
	//      explicitly are given the value "N".
	return N
}

// Context represents information about the typesetting environment.
//
// From UAX#11:
// The term context as used here includes extra information such as explicit
// markup, knowledge of the source code page, font information, or language and
// script identification
//
// A Context is never modified by width calculations and may be shared between
// goroutines. A *Context implements interface uaxnav.WidthOracle.
type Context struct {
	ForceEastAsian bool            // force East Asian context
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // ISO 639/3166 locale string
	resolve        resolver
}

// EastAsianContext is a context for East Asian languages.
var EastAsianContext = makeEastAsianContext()

// LatinContext is a context for western languages.
var LatinContext = makeLatinContext()

func makeEastAsianContext() *Context {
	ctx := &Context{
		ForceEastAsian: true,
		Script:         language.MustParseScript("Hant"),
		Locale:         "zh-Hant",
		resolve:        resolveToWide,
	}
	return ctx
}

func makeLatinContext() *Context {
	ctx := &Context{
		ForceEastAsian: false,
		Script:         language.MustParseScript("Latn"),
		Locale:         "en-US",
		resolve:        resolveToNarrow,
	}
	return ctx
}

// A resolver decides about the width of ambiguous characters.
type resolver func(Category) Category

func resolveToNarrow(cat Category) Category {
	if cat == A {
		return Na
	}
	return cat
}

func resolveToWide(cat Category) Category {
	if cat == A {
		return W
	}
	return cat
}

// evaluateContext finds the resolver for contexts created by clients, i.e.
// contexts which have not been set up by one of the constructors.
func evaluateContext(ctx *Context) resolver {
	if ctx == nil {
		return resolveToNarrow
	}
	if ctx.resolve != nil {
		return ctx.resolve
	}
	if ctx.ForceEastAsian {
		return resolveToWide
	}
	lang := language.Make(ctx.Locale)
	script := ctx.Script
	if script == (language.Script{}) {
		script, _ = lang.Script()
	}
	return findResolver(script, lang)
}

func findResolver(script language.Script, lang language.Tag) resolver {
	scrcode := script.String()
	switch scrcode {
	case
		// East Asian
		"Bopo", "Hanb", "Hani", "Hans",
		"Hant", "Hang", "Hira", "Kana",
		"Lana", "Kitl", "Kits", "Nkdb",
		"Nkgb", "Plrd",
		// South East Asian
		"Batk", "Beng", "Bugi", "Mymr",
		"Cham", "Java", "Khmr", "Laoo",
		"Lisu", "Mtei", "Thai", "Yiii",
		"Bali", "Khar", "Rjng", "Roro",
		"Tglg", "Wole", "Buhd", "Tagb":
		return resolveToWide
	}
	if lang == language.Und {
		return resolveToNarrow
	}
	_, _, confidence := eaMatch.Match(lang)
	if confidence == language.No {
		return resolveToNarrow
	}
	return resolveToWide
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.Chinese, // The first language is used as fallback.
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

// ContextFromEnvironment creates a context from the locale of the user's
// environment. If the locale cannot be detected, "en-US" is used.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("UAX#11 sets default user locale %v", userLocale)
	} else {
		T().Infof("UAX#11 detected user locale %v", userLocale)
	}
	lang := language.Make(userLocale)
	script, _ := lang.Script()
	ctx := &Context{
		Script:  script,
		Locale:  userLocale,
		resolve: findResolver(script, lang),
	}
	ctx.ForceEastAsian = ctx.IsEastAsian()
	return ctx
}

// IsEastAsian is true if ambiguous characters are wide in this context.
func (ctx *Context) IsEastAsian() bool {
	return evaluateContext(ctx)(A) == W
}

// RuneWidth returns the width of a single rune in terms of `en`s.
//
// Returns 0 for control and format characters, for non-spacing and enclosing
// marks and for the medial vowels and final consonants of conjoining Hangul
// jamo. Returns 2 for wide and fullwidth characters, and for ambiguous characters
// within an East Asian context. Everything else has a width of 1.
//
// If an empty context is given, LatinContext is assumed.
func RuneWidth(r rune, context *Context) int {
	return runeWidth(r, evaluateContext(context))
}

func runeWidth(r rune, resolve resolver) int {
	switch {
	case r == softHyphen:
		return 1
	case r == utf8.RuneError:
		return 1
	case unicode.In(r, unicode.Cc, unicode.Cf, unicode.Mn, unicode.Me):
		return 0
	case unicode.Is(hangulJamoVT, r):
		return 0
	}
	switch resolve(WidthCategory(r)) {
	case W, F:
		return 2
	}
	return 1
}

const softHyphen = '\u00AD'

// Conjoining jamo medial vowels and final consonants, which combine with
// a preceding leading consonant into a single wide syllable.
var hangulJamoVT = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1160, 0x11ff, 1},
		{0xd7b0, 0xd7ff, 1},
	},
}

// Width returns the width of a grapheme, given as a byte slice, in terms of
// `en`s, where 1en stands for 1/2em, i.e. half a full width character.
// The width of a grapheme is the sum of the widths of its runes. Spacing
// combining marks, as found in Indic scripts, contribute a width of 1.
// If grphm is empty or just a zero width rune, a width of 0 is returned.
//
// Quotation marks U+2018, U+2019, U+201C and U+201D followed by a variation
// selector are measured as requested by the selector: VS1 selects the narrow
// form, VS2 the wide form, regardless of the context.
//
// If an empty context is given, LatinContext is assumed.
func Width(grphm []byte, context *Context) int {
	if len(grphm) == 0 {
		return 0
	}
	return clusterWidth(string(grphm), evaluateContext(context))
}

// ClusterWidth returns the width of a grapheme cluster, see Width.
// A nil context is treated as LatinContext.
//
// (Interface uaxnav.WidthOracle)
func (ctx *Context) ClusterWidth(cluster string) int {
	return clusterWidth(cluster, evaluateContext(ctx))
}

const (
	vs1 = '\uFE00' // narrow presentation of a quotation mark
	vs2 = '\uFE01' // wide presentation of a quotation mark
)

func clusterWidth(cluster string, resolve resolver) int {
	w, prev, pw := 0, rune(-1), 0
	for _, r := range cluster {
		rw := runeWidth(r, resolve)
		if (r == vs1 || r == vs2) && isQuotationMark(prev) {
			w -= pw
			rw = 1
			if r == vs2 {
				rw = 2
			}
		}
		w += rw
		prev, pw = r, rw
	}
	return w
}

// Quotation marks of East Asian width A with standardized width variants.
func isQuotationMark(r rune) bool {
	switch r {
	case '\u2018', '\u2019', '\u201C', '\u201D':
		return true
	}
	return false
}

// StringWidth returns the width of a string, summed over its grapheme
// clusters.
func StringWidth(s string, context *Context) int {
	if context == nil {
		context = LatinContext
	}
	seg := segment.NewSegmenter()
	seg.Init(s)
	w := 0
	for seg.Next() {
		w += context.ClusterWidth(seg.Text())
	}
	T().Debugf("UAX#11 width of %q = %d", s, w)
	return w
}

// ---------------------------------------------------------------------------

// UAX#11:
//  - The unassigned code points in the following blocks default to "W":
//         CJK Unified Ideographs Extension A: U+3400..U+4DBF
//         CJK Unified Ideographs:             U+4E00..U+9FFF
//         CJK Compatibility Ideographs:       U+F900..U+FAFF
//  - All undesignated code points in Planes 2 and 3, whether inside or
//      outside of allocated blocks, default to "W":
//         Plane 2:                            U+20000..U+2FFFD
//         Plane 3:                            U+30000..U+3FFFD
var _CJK_Default_W = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9fff, 1},
		{0xf900, 0xfaff, 1},
	},
	R32: []unicode.Range32{
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}
