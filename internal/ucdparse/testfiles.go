package ucdparse

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// TestFile reads UCD break test files, e.g. GraphemeBreakTest.txt.
// Comment lines are skipped, rest-of-line comments are available by Comment().
type TestFile struct {
	scanner *bufio.Scanner
	text    string
	comment string
}

// NewTestFile creates a test file reader for r.
func NewTestFile(r io.Reader) *TestFile {
	return &TestFile{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next test case. It returns false at the end of input.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		line := strings.TrimSpace(tf.scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		tf.text, tf.comment, _ = strings.Cut(line, "#")
		tf.text = strings.TrimSpace(tf.text)
		tf.comment = strings.TrimSpace(tf.comment)
		return true
	}
	return false
}

// Text returns the test case of the current line.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the comment of the current line.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// Err returns the first non-EOF read error.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// BreakTestInput decodes a test case like
//
//	÷ 0061 × 0308 ÷ 0062 ÷
//
// into the input string and the expected segments.
func BreakTestInput(ti string) (string, []string) {
	sc := bufio.NewScanner(strings.NewReader(ti))
	sc.Split(bufio.ScanWords)
	out := make([]string, 0, 5)
	inp := bytes.NewBuffer(make([]byte, 0, 20))
	run := bytes.NewBuffer(make([]byte, 0, 20))
	for sc.Scan() {
		token := sc.Text()
		switch token {
		case "÷":
			if run.Len() > 0 {
				out = append(out, run.String())
				run.Reset()
			}
		case "×":
		default:
			n, _ := strconv.ParseUint(token, 16, 32)
			run.WriteRune(rune(n))
			inp.WriteRune(rune(n))
		}
	}
	if run.Len() > 0 {
		out = append(out, run.String())
	}
	return inp.String(), out
}
