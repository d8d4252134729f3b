package grapheme

// String is a type to represent a grapheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Grapheme strings do not keep an index of their clusters. Every call of
// Nth, Len or Width re-scans the string, with runtime complexity O(N).
// Clients should not convert large texts into grapheme strings, but rather
// operate on manageable fragments.
type String interface {
	Nth(int) string // return nth grapheme, or "" if out of range
	Len() int       // length of string in units of user perceived characters
	Width() int     // display width of the string
}

// StringFromString creates a grapheme string from a Go string.
// Nth will return sub-strings of s.
func StringFromString(s string) String {
	return defaultNavigator.GraphemeString(s)
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private copy
// of the input.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

// GraphemeString creates a grapheme string for s, segmented and measured by nav.
func (nav *Navigator) GraphemeString(s string) String {
	return &navString{content: s, nav: nav}
}

type navString struct {
	content string
	nav     *Navigator
}

func (gstr *navString) Nth(n int) string {
	return gstr.nav.NthCluster(gstr.content, n)
}

func (gstr *navString) Len() int {
	return gstr.nav.ClusterCount(gstr.content)
}

func (gstr *navString) Width() int {
	return gstr.nav.Width(gstr.content)
}

func (gstr *navString) String() string {
	return gstr.content
}
