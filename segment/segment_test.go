package segment

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxnav/internal/testdata"
	"github.com/npillmayer/uaxnav/internal/ucdparse"
)

var sample = []string{
	"\u0939\u093F",
	"\u0928\u094D\u0926\u0940",
	"H",
	"\U0001F9D1",
	"\U0001F33E",
	"e",
	"\u2018\uFE00",
	"o",
	"\u2018\uFE01",
	"r",
	"\u00E9",
	"e\u0301",
}

func TestSegmenterSample(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text := strings.Join(sample, "")
	seg := NewSegmenter()
	seg.Init(text)
	n, pos := 0, 0
	for seg.Next() {
		t.Logf("segment #%d = %+q at %d", n, seg.Text(), seg.Start())
		if n >= len(sample) {
			t.Fatalf("expected %d segments, have more", len(sample))
		}
		if seg.Text() != sample[n] {
			t.Errorf("expected segment #%d to be %+q, is %+q", n, sample[n], seg.Text())
		}
		if seg.Start() != pos || seg.End() != pos+len(sample[n]) {
			t.Errorf("expected segment #%d at %d…%d, is %d…%d", n, pos, pos+len(sample[n]),
				seg.Start(), seg.End())
		}
		pos += len(sample[n])
		n++
	}
	if n != len(sample) {
		t.Errorf("expected %d segments, have %d", len(sample), n)
	}
}

func TestSegmenterEmpty(t *testing.T) {
	seg := NewSegmenter()
	seg.Init("")
	if seg.Next() {
		t.Errorf("expected no segment for empty text, have %+q", seg.Text())
	}
	var zero Segmenter
	if zero.Next() {
		t.Errorf("expected uninitialized segmenter to produce no segment")
	}
}

func TestSegmenterReInit(t *testing.T) {
	seg := NewSegmenter()
	seg.Init("\U0001F1E9\U0001F1EA\U0001F1EB")
	for seg.Next() {
	}
	seg.Init("ab")
	if !seg.Next() || seg.Text() != "a" || seg.Start() != 0 {
		t.Errorf("expected re-initialized segmenter to start over, is at %d", seg.Start())
	}
}

// Excerpt of GraphemeBreakTest.txt, plus rule GB9c.
var breakTests = `
÷ 0020 ÷ 0020 ÷	#  ÷ [0.2] SPACE (Other) ÷ [999.0] SPACE (Other) ÷ [0.3]
÷ 000D × 000A ÷	#  ÷ [0.2] <CARRIAGE RETURN (CR)> (CR) × [3.0] <LINE FEED (LF)> (LF) ÷ [0.3]
÷ 0061 × 0308 ÷ 0062 ÷	#  ÷ [0.2] LATIN SMALL LETTER A (Other) × [9.0] COMBINING DIAERESIS (Extend) ÷ [999.0] LATIN SMALL LETTER B (Other) ÷ [0.3]
÷ 1100 × 1161 × 11A8 ÷	#  ÷ [0.2] HANGUL CHOSEONG KIYEOK (L) × [6.0] HANGUL JUNGSEONG A (V) × [7.0] HANGUL JONGSEONG KIYEOK (T) ÷ [0.3]
÷ 0600 × 0020 ÷	#  ÷ [0.2] ARABIC NUMBER SIGN (Prepend) × [9.2] SPACE (Other) ÷ [0.3]
÷ 1F1E6 × 1F1E7 ÷ 1F1E8 ÷	#  ÷ [0.2] REGIONAL INDICATOR SYMBOL LETTER A (RI) × [12.0] REGIONAL INDICATOR SYMBOL LETTER B (RI) ÷ [999.0] REGIONAL INDICATOR SYMBOL LETTER C (RI) ÷ [0.3]
÷ 1F476 × 1F3FF ÷ 1F476 ÷	#  ÷ [0.2] BABY (ExtPict) × [9.0] EMOJI MODIFIER FITZPATRICK TYPE-6 (Extend) ÷ [999.0] BABY (ExtPict) ÷ [0.3]
÷ 1F6D1 × 200D × 1F6D1 ÷	#  ÷ [0.2] OCTAGONAL SIGN (ExtPict) × [9.0] ZERO WIDTH JOINER (ZWJ_ExtCccZwj) × [11.0] OCTAGONAL SIGN (ExtPict) ÷ [0.3]
÷ 0061 × 200D ÷ 1F6D1 ÷	#  ÷ [0.2] LATIN SMALL LETTER A (Other) × [9.0] ZERO WIDTH JOINER (ZWJ_ExtCccZwj) ÷ [999.0] OCTAGONAL SIGN (ExtPict) ÷ [0.3]
÷ 0915 × 094D × 0924 ÷	#  ÷ [0.2] DEVANAGARI LETTER KA (ConjunctLinkingScripts_ConsonantLetter) × [9.0] DEVANAGARI SIGN VIRAMA (Extend_ConjunctLinkingScripts_ConjunctLinker_ExtCccZwj) × [9.3] DEVANAGARI LETTER TA (ConjunctLinkingScripts_ConsonantLetter) ÷ [0.3]
÷ 0915 × 094D × 200D × 0924 ÷	#  ÷ [0.2] DEVANAGARI LETTER KA × [9.0] DEVANAGARI SIGN VIRAMA × [9.0] ZERO WIDTH JOINER × [9.3] DEVANAGARI LETTER TA ÷ [0.3]
÷ 0915 × 093C ÷ 0924 ÷	#  ÷ [0.2] DEVANAGARI LETTER KA × [9.0] DEVANAGARI SIGN NUKTA ÷ [999.0] DEVANAGARI LETTER TA ÷ [0.3]
`

func TestGraphemeBreakTestExcerpt(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	if n := runBreakTests(t, strings.NewReader(breakTests)); n != 12 {
		t.Errorf("expected 12 test cases, have %d", n)
	}
}

func TestGraphemeBreakTestFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	f, err := testdata.UCDReader(testdata.GraphemeBreakTest)
	if errors.Is(err, os.ErrNotExist) {
		t.Skipf("%s not present, run download.go in internal/testdata", testdata.GraphemeBreakTest)
	} else if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	n := runBreakTests(t, f)
	t.Logf("%d grapheme break tests run", n)
}

// runBreakTests segments the input of every line of a break test file and
// compares the result to the expected segments. It returns the number of
// test cases.
func runBreakTests(t *testing.T, r io.Reader) int {
	tf := ucdparse.NewTestFile(r)
	seg := NewSegmenter()
	lineNo := 0
	for tf.Scan() {
		lineNo++
		in, out := ucdparse.BreakTestInput(tf.Text())
		seg.Init(in)
		i := 0
		for seg.Next() {
			if i >= len(out) {
				t.Errorf("test #%d: extra segment %+q", lineNo, seg.Text())
				break
			}
			if seg.Text() != out[i] {
				t.Errorf("test #%d: expected segment #%d to be %+q, is %+q (%s)",
					lineNo, i, out[i], seg.Text(), tf.Comment())
			}
			i++
		}
		if i < len(out) {
			t.Errorf("test #%d: expected %d segments, have %d", lineNo, len(out), i)
		}
	}
	if err := tf.Err(); err != nil {
		t.Errorf("reading break tests: %v", err)
	}
	return lineNo
}

func ExampleSegmenter() {
	seg := NewSegmenter()
	seg.Init("Ga\u0300\U0001F1EB\U0001F1F7")
	for seg.Next() {
		fmt.Printf("%d…%d %+q\n", seg.Start(), seg.End(), seg.Text())
	}
	// Output:
	// 0…1 "G"
	// 1…4 "a\u0300"
	// 4…12 "\U0001f1eb\U0001f1f7"
}

func TestOracleBoundaries(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	text := strings.Join(sample, "")
	boundaries := map[int]bool{0: true}
	pos := 0
	for _, cluster := range sample {
		pos += len(cluster)
		boundaries[pos] = true
	}
	o := Oracle{}
	prev := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && !isRuneStart(text, i) {
			continue
		}
		if o.IsBoundary(text, i) != boundaries[i] {
			t.Errorf("expected IsBoundary(%d) to be %v", i, boundaries[i])
		}
		if i > 0 {
			p, ok := o.PrevBoundary(text, i)
			if !ok || p != prev {
				t.Errorf("expected PrevBoundary(%d) to be %d, is %d/%v", i, prev, p, ok)
			}
		}
		if boundaries[i] {
			prev = i
		}
		if i < len(text) {
			n, ok := o.NextBoundary(text, i)
			if !ok || n <= i || !boundaries[n] {
				t.Errorf("expected NextBoundary(%d) to be a boundary > %d, is %d/%v", i, i, n, ok)
			}
		}
	}
	if _, ok := o.NextBoundary(text, len(text)); ok {
		t.Errorf("expected no boundary after end of text")
	}
	if _, ok := o.PrevBoundary(text, 0); ok {
		t.Errorf("expected no boundary before start of text")
	}
	if c := o.FirstCluster(text[6:]); c != sample[1] {
		t.Errorf("expected first cluster at 6 to be %+q, is %+q", sample[1], c)
	}
	if c := o.FirstCluster(""); c != "" {
		t.Errorf("expected first cluster of empty text to be empty, is %+q", c)
	}
}

func TestOracleEmptyText(t *testing.T) {
	o := Oracle{}
	if !o.IsBoundary("", 0) {
		t.Errorf("expected position 0 to be a boundary of the empty text")
	}
	if _, ok := o.NextBoundary("", 0); ok {
		t.Errorf("expected no next boundary in empty text")
	}
	if _, ok := o.PrevBoundary("", 0); ok {
		t.Errorf("expected no previous boundary in empty text")
	}
}

func TestOraclePanicsInsideCodePoint(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected oracle to panic for offset inside a code-point")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotAtRuneStart) {
			t.Errorf("expected panic with ErrNotAtRuneStart, is %v", r)
		}
	}()
	Oracle{}.IsBoundary("\u00E9", 1)
}

func isRuneStart(s string, i int) bool {
	return s[i]&0xC0 != 0x80
}
