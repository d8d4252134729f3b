/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data lines look like this:

	0915..0939    ; InCB; Consonant # Lo  [37] DEVANAGARI LETTER KA..DEVANAGARI LETTER HA

i.e., a code-point or a code-point range, followed by semicolon-separated
fields and an optional rest-of-line comment. Empty lines and comment lines are
skipped.
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token holds the content of a single data line.
type Token struct {
	LineNo   int      // line number within the input source, starting at 1
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // trimmed fields following the code-point (range)
	Comment  string   // rest-of-line comment of data item lines
	Error    error    // error condition, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
// Field #0 is the code-point (range) and is available by Range().
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Parser iterates over the data lines of a UCD file.
type Parser struct {
	lines  *bufio.Scanner
	lineNo int
	Token  *Token // last token produced
}

// New creates a parser for an input reader.
func New(inputReader io.Reader) (*Parser, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Parser{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	p, err := New(r)
	if err != nil {
		return err
	}
	for p.Next() {
		f(p.Token)
	}
	return p.Err()
}

// Next is called to receive the next line-level token. It returns false at the
// end of input or after the first malformed data line.
func (p *Parser) Next() bool {
	for p.lines.Scan() {
		p.lineNo++
		line := strings.TrimSpace(p.lines.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		p.Token = parseLine(line, p.lineNo)
		return p.Token.Error == nil
	}
	if err := p.lines.Err(); err != nil {
		p.Token = &Token{LineNo: p.lineNo, Error: err}
	}
	return false
}

// Err returns the first error encountered, if any.
func (p *Parser) Err() error {
	if p.Token == nil {
		return p.lines.Err()
	}
	return p.Token.Error
}

func parseLine(line string, lineNo int) *Token {
	token := &Token{LineNo: lineNo}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	fields := strings.Split(line, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	from, to, err := parseRange(fields[0])
	if err != nil {
		token.Error = fmt.Errorf("line %d: %w", lineNo, err)
		return token
	}
	token.runeFrom, token.runeTo = from, to
	token.Fields = fields[1:]
	return token
}

func parseRange(s string) (from, to rune, err error) {
	lo, hi, isRange := strings.Cut(s, "..")
	if from, err = parseHex(lo); err != nil {
		return
	}
	if !isRange {
		return from, from, nil
	}
	if to, err = parseHex(hi); err != nil {
		return
	}
	if to < from {
		err = fmt.Errorf("invalid code-point range %s", s)
	}
	return
}

func parseHex(s string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
