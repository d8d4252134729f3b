package uax11

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxnav"
)

var _ uaxnav.WidthOracle = LatinContext
var _ uaxnav.WidthOracle = &Terminal{}

func TestTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05BD, // HEBREW POINT METEG               => N
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
		0xFF76, // HALFWIDTH KATAKANA LETTER KA     => H
	}
	cats := [...]Category{Na, N, A, W, F, H}
	for i, c := range chars {
		cat := WidthCategory(c)
		if cat != cats[i] {
			t.Errorf("expected width category of %#U to be %s, is %s", c, cats[i], cat)
		}
	}
}

func TestEnvLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx := ContextFromEnvironment()
	if ctx == nil {
		t.Fatalf("context from environment is nil, should not")
	}
	t.Logf("user environment has locale '%s'", ctx.Locale)
}

func TestWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05BD, // HEBREW POINT METEG               => N, non-spacing mark
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
	}
	ctx := LatinContext
	buf := make([]byte, 10)
	ww := 0
	for i, r := range chars {
		cat := WidthCategory(r)
		l := utf8.EncodeRune(buf, r)
		w := Width(buf[:l], ctx)
		t.Logf("%d: %#U:'%08x' (%s) => %d", i, r, buf[:l], cat, w)
		ww += w
	}
	if ww != 6 {
		t.Errorf("expected accumulated width of 5 runes to be 6, is %d", ww)
	}
}

func TestRuneWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var tests = []struct {
		r     rune
		latin int
		ea    int
	}{
		{'a', 1, 1},
		{0x0007, 0, 0},  // BELL
		{0x200D, 0, 0},  // ZERO WIDTH JOINER
		{0x00AD, 1, 1},  // SOFT HYPHEN
		{0x0301, 0, 0},  // COMBINING ACUTE ACCENT
		{0x093F, 1, 1},  // DEVANAGARI VOWEL SIGN I, spacing
		{0xFE00, 0, 0},  // VARIATION SELECTOR-1
		{0x2018, 1, 2},  // LEFT SINGLE QUOTATION MARK
		{0x00E9, 1, 2},  // LATIN SMALL LETTER E WITH ACUTE
		{0x1161, 0, 0},  // HANGUL JUNGSEONG A
		{0x1100, 2, 2},  // HANGUL CHOSEONG KIYEOK
		{0x4E16, 2, 2},  // CJK ideograph
		{0x1F9D1, 2, 2}, // ADULT
	}
	for _, test := range tests {
		if w := RuneWidth(test.r, LatinContext); w != test.latin {
			t.Errorf("expected Latin width of %#U to be %d, is %d", test.r, test.latin, w)
		}
		if w := RuneWidth(test.r, EastAsianContext); w != test.ea {
			t.Errorf("expected East Asian width of %#U to be %d, is %d", test.r, test.ea, w)
		}
	}
	if w := RuneWidth(0x2018, nil); w != 1 {
		t.Errorf("expected nil context to act like Latin context, width is %d", w)
	}
}

func TestClusterWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var tests = []struct {
		cluster string
		width   int
	}{
		{"", 0},
		{"\u0939\u093F", 2},
		{"\u0928\u094D\u0926\u0940", 3},
		{"H", 1},
		{"\U0001F9D1", 2},
		{"\u2018\uFE00", 1},
		{"\u2018\uFE01", 2},
		{"\u201D\uFE01", 2},
		{"\u2018", 1},
		{"a\uFE01", 1},
		{"e\u0301", 1},
		{"\uAC01", 2},
		{"\u1100\u1161\u11A8", 2},
	}
	for _, test := range tests {
		if w := LatinContext.ClusterWidth(test.cluster); w != test.width {
			t.Errorf("expected width of %+q to be %d, is %d", test.cluster, test.width, w)
		}
	}
	for cluster, w := range map[string]int{"\u2018": 2, "\u2018\uFE00": 1, "\u2019\uFE01": 2} {
		if ew := EastAsianContext.ClusterWidth(cluster); ew != w {
			t.Errorf("expected East Asian width of %+q to be %d, is %d", cluster, w, ew)
		}
	}
	if w := Width([]byte("\u201C\uFE01"), nil); w != 2 {
		t.Errorf("expected wide variant of quotation mark to have width 2, is %d", w)
	}
	var nilctx *Context
	if w := nilctx.ClusterWidth("\u00E9"); w != 1 {
		t.Errorf("expected nil context to measure Latin width 1, is %d", w)
	}
}

func TestContext(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	context := &Context{Locale: "zh-HK"}
	if w := Width([]byte("世"), context); w != 2 {
		t.Errorf("expected width of ideograph to be 2, is %d", w)
	}
	if !context.IsEastAsian() {
		t.Errorf("expected context for 'zh-HK' to be East Asian")
	}
	if (&Context{Locale: "de-AT"}).IsEastAsian() {
		t.Errorf("expected context for 'de-AT' not to be East Asian")
	}
	if !(&Context{ForceEastAsian: true}).IsEastAsian() {
		t.Errorf("expected forced context to be East Asian")
	}
}

func TestString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := "A (世). "
	buf := make([]byte, 10)
	l := utf8.EncodeRune(buf, 0x1f600)
	input = input + string(buf[:l])
	t.Logf("input string = '%v'", input)
	ctx := EastAsianContext
	w := StringWidth(input, ctx)
	if w != 10 {
		t.Errorf("expected fixed width length of string to be 10, is %d", w)
	}
}

func TestTerminal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	term := NewTerminal(false)
	for cluster, w := range map[string]int{"": 0, "a": 1, "世": 2, "\U0001F9D1": 2, "\u2018": 1} {
		if tw := term.ClusterWidth(cluster); tw != w {
			t.Errorf("expected terminal width of %+q to be %d, is %d", cluster, w, tw)
		}
	}
	if tw := NewTerminal(true).ClusterWidth("\u2018"); tw != 2 {
		t.Errorf("expected East Asian terminal width of ambiguous char to be 2, is %d", tw)
	}
	if TerminalFromEnvironment() == nil {
		t.Errorf("expected a terminal width oracle from environment")
	}
}
