package syntax

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds the length of a single source line read by LineReader.
const maxLineSize = 1 << 20

// ----------------------------------------------------------------------------
// Line sources

// LineSource supplies newline-stripped source lines one at a time.
type LineSource interface {
	NextLine() (line string, ok bool)
}

type sliceSource struct {
	lines []string
	next  int
}

// Lines returns a LineSource over the given lines.
func Lines(lines ...string) LineSource {
	return &sliceSource{lines: lines}
}

func (s *sliceSource) NextLine() (string, bool) {
	if s.next >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.next]
	s.next++
	return line, true
}

// LineReader streams lines from an io.Reader.
// Trailing "\r\n" and "\n" are stripped. Read errors end the stream and are
// reported by Err.
type LineReader struct {
	sc *bufio.Scanner
}

// NewLineReader creates a LineReader reading from r.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &LineReader{sc: sc}
}

// NextLine returns the next line, or false when the input is exhausted.
func (lr *LineReader) NextLine() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	return lr.sc.Text(), true
}

// Err returns the first non-EOF read error, if any.
func (lr *LineReader) Err() error {
	return lr.sc.Err()
}

// ----------------------------------------------------------------------------
// Segmenter

// Snippet is a maximal run of same-category characters within one line.
type Snippet struct {
	Text   string // snippet text
	Offset int    // byte offset of the first character within the line
}

// End returns the byte offset immediately after the snippet.
func (s Snippet) End() int {
	return s.Offset + len(s.Text)
}

// SegmentError reports a character the segmenter cannot classify.
// Source text is ASCII only.
type SegmentError struct {
	Offset int  // byte offset within the line
	Char   rune // offending character
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("non-ASCII character %q at position %d", e.Char, e.Offset)
}

// Segmenter splits one line into snippets, left to right.
// Whitespace runs are dropped and scanning ends at the first snippet
// containing "//". Characters after the comment marker are never inspected.
//
// Usage follows bufio.Scanner:
//
//	seg := NewSegmenter(line)
//	for seg.Next() {
//		use(seg.Snippet())
//	}
//	if err := seg.Err(); err != nil { ... }
type Segmenter struct {
	line string
	offs int
	snip Snippet
	err  error
	done bool
}

// NewSegmenter creates a Segmenter for line.
func NewSegmenter(line string) *Segmenter {
	return &Segmenter{line: line}
}

// Next advances to the next snippet. It returns false at the end of the
// line, at a comment, or on error.
func (s *Segmenter) Next() bool {
	if s.done {
		return false
	}

	for s.offs < len(s.line) {
		start := s.offs
		c := s.line[start]
		if c >= utf8.RuneSelf {
			r, _ := utf8.DecodeRuneInString(s.line[start:])
			s.err = &SegmentError{Offset: start, Char: r}
			s.done = true
			return false
		}

		cat := categoryOf(c)
		s.offs++
		for s.offs < len(s.line) && s.line[s.offs] < utf8.RuneSelf && categoryOf(s.line[s.offs]) == cat {
			s.offs++
		}

		if cat == catSpace {
			continue
		}

		text := s.line[start:s.offs]
		if strings.Contains(text, "//") {
			s.done = true
			return false
		}
		s.snip = Snippet{Text: text, Offset: start}
		return true
	}

	s.done = true
	return false
}

// Snippet returns the current snippet.
func (s *Segmenter) Snippet() Snippet {
	return s.snip
}

// Err returns the error that stopped the segmenter, if any.
func (s *Segmenter) Err() error {
	return s.err
}

// Snippets segments line and returns all of its snippets. On error the
// snippets preceding the offending character are returned with it.
func Snippets(line string) ([]Snippet, error) {
	var out []Snippet
	seg := NewSegmenter(line)
	for seg.Next() {
		out = append(out, seg.Snippet())
	}
	return out, seg.Err()
}

// ----------------------------------------------------------------------------
// Character classification

// category is the lexical class of a single ASCII byte.
// Adjacent bytes of the same category merge into one snippet.
type category uint8

const (
	catSpace category = iota
	catAlnum
	catLparen
	catRparen
	catLcurl
	catRcurl
	catSemi
	catColon
	catAssign
	catPlus
	catMinus
	catStar
	catSlash
	catPercent
	catComma
	catOther
)

func categoryOf(c byte) category {
	switch {
	case isWhitespace(c):
		return catSpace
	case isLetter(c) || isDigit(c):
		return catAlnum
	}
	switch c {
	case '(':
		return catLparen
	case ')':
		return catRparen
	case '{':
		return catLcurl
	case '}':
		return catRcurl
	case ';':
		return catSemi
	case ':':
		return catColon
	case '=':
		return catAssign
	case '+':
		return catPlus
	case '-':
		return catMinus
	case '*':
		return catStar
	case '/':
		return catSlash
	case '%':
		return catPercent
	case ',':
		return catComma
	}
	return catOther
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// isDigit reports whether c is a decimal digit (0-9).
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isWhitespace reports whether c is ASCII white space.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isAlphaNumeric reports whether s is non-empty and made only of letters and digits.
func isAlphaNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
