package diag

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/you-not-fish/lumen/internal/syntax"
)

// DefaultFrameWidth is the number of rule characters right of the gutter.
const DefaultFrameWidth = 30

const maxLineSize = 1 << 20

// Renderer formats a SourcedError as a framed source excerpt:
//
//	Error at [line:2,column:4]:
//	token error: invalid token: @
//	Inside file '/src/main.lm':
//	───┬──────────────────────────────
//	 1 │ let x = 1;
//	   │
//	 2 │ let y = a @ b;
//	   │           ^
//	 3 │ z;
//	───┴──────────────────────────────
type Renderer struct {
	color  bool
	width  int
	out    io.Writer
	styles styles
}

type styles struct {
	header  lipgloss.Style
	lineNo  lipgloss.Style
	snippet lipgloss.Style
	caret   lipgloss.Style
	note    lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor enables ANSI styling.
func WithColor(on bool) Option {
	return func(r *Renderer) { r.color = on }
}

// WithFrameWidth sets the length of the frame rules. Non-positive values
// keep the default.
func WithFrameWidth(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.width = n
		}
	}
}

// WithOutput names the writer the rendering is meant for, so that the
// colour profile matches its terminal.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) { r.out = w }
}

// NewRenderer creates a Renderer. Without options it produces plain text.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{width: DefaultFrameWidth}
	for _, opt := range opts {
		opt(r)
	}
	if r.color {
		r.styles = newStyles(r.out)
	}
	return r
}

func newStyles(out io.Writer) styles {
	if out == nil {
		out = io.Discard
	}
	lr := lipgloss.NewRenderer(out)
	// Colour was requested explicitly; a non-terminal writer must not
	// strip it.
	if lr.ColorProfile() == termenv.Ascii {
		lr.SetColorProfile(termenv.ANSI)
	}

	red := lipgloss.Color("1")
	return styles{
		header:  lr.NewStyle().Foreground(red),
		lineNo:  lr.NewStyle().Foreground(red),
		snippet: lr.NewStyle().Foreground(red).Bold(true),
		caret:   lr.NewStyle().Foreground(red),
		note:    lr.NewStyle().Faint(true),
	}
}

// Render writes the rendering of e to w.
func (r *Renderer) Render(w io.Writer, e *SourcedError) error {
	var b strings.Builder
	r.render(&b, e)
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.color || text == "" {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) render(b *strings.Builder, e *SourcedError) {
	// Styled line by line: lipgloss pads multi-line blocks to equal width.
	for _, line := range strings.Split(e.Localized().Error(), "\n") {
		b.WriteString(r.paint(r.styles.header, line))
		b.WriteByte('\n')
	}

	line := int(e.Loc.Line())
	win, err := readWindow(e.Path, line)
	if err != nil {
		fmt.Fprintf(b, "Couldn't show snippet, error opening file: %v\n", err)
		return
	}

	fmt.Fprintf(b, "Inside file '%s':\n", canonical(e.Path))

	if !e.Loc.IsValid() {
		r.note(b, "no source position is known for this error")
		return
	}
	if !win.cur.ok {
		r.note(b, fmt.Sprintf("line %d is past the end of the file", line))
		return
	}
	snips, target, ok := locate(win.cur.text, int(e.Loc.Column()))
	if !ok {
		r.note(b, fmt.Sprintf("line %d has no token at column %d", line, e.Loc.Column()))
		return
	}

	pad := len(strconv.Itoa(line)) + 1
	rule := strings.Repeat("─", pad)
	fmt.Fprintf(b, "%s─┬%s\n", rule, strings.Repeat("─", r.width))

	r.row(b, pad, win.prev, line-1)
	r.row(b, pad, numbered{ok: true}, -1)

	// Failing line, rebuilt from its snippets.
	num := strconv.Itoa(line)
	b.WriteString(strings.Repeat(" ", pad-len(num)))
	b.WriteString(r.paint(r.styles.lineNo, num))
	b.WriteString(" │ ")
	last := 0
	for i, s := range snips {
		b.WriteString(strings.Repeat(" ", s.Offset-last))
		if i == target {
			b.WriteString(r.paint(r.styles.snippet, s.Text))
		} else {
			b.WriteString(s.Text)
		}
		last = s.End()
	}
	b.WriteByte('\n')

	t := snips[target]
	fmt.Fprintf(b, "%s │ %s%s\n",
		strings.Repeat(" ", pad),
		strings.Repeat(" ", t.Offset),
		r.paint(r.styles.caret, strings.Repeat("^", utf8.RuneCountInString(t.Text))))

	r.row(b, pad, win.next, line+1)
	fmt.Fprintf(b, "%s─┴%s\n", rule, strings.Repeat("─", r.width))
}

// row writes a gutter row. Missing lines get an empty number.
func (r *Renderer) row(b *strings.Builder, pad int, l numbered, n int) {
	num := ""
	if l.ok && n > 0 {
		num = strconv.Itoa(n)
	}
	fmt.Fprintf(b, "%*s │", pad, num)
	if l.text != "" {
		b.WriteByte(' ')
		b.WriteString(l.text)
	}
	b.WriteByte('\n')
}

func (r *Renderer) note(b *strings.Builder, msg string) {
	b.WriteString(r.paint(r.styles.note, "note: "+msg))
	b.WriteByte('\n')
}

// locate segments line and returns its snippets and the index of the
// snippet at column. A non-ASCII character that stopped segmentation
// counts as the snippet following the valid ones.
func locate(line string, column int) ([]syntax.Snippet, int, bool) {
	snips, err := syntax.Snippets(line)
	var segErr *syntax.SegmentError
	if errors.As(err, &segErr) {
		snips = append(snips, syntax.Snippet{Text: string(segErr.Char), Offset: segErr.Offset})
	}
	if column < 0 || column >= len(snips) {
		return nil, 0, false
	}
	return snips, column, true
}

type numbered struct {
	text string
	ok   bool
}

// window holds the lines around a location.
type window struct {
	prev, cur, next numbered
}

// readWindow reads lines n-1, n and n+1 of the file at path.
func readWindow(path string, n int) (window, error) {
	var w window
	f, err := os.Open(path)
	if err != nil {
		return w, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for i := 1; i <= n+1 && sc.Scan(); i++ {
		l := numbered{text: strings.TrimSuffix(sc.Text(), "\r"), ok: true}
		switch i {
		case n - 1:
			w.prev = l
		case n:
			w.cur = l
		case n + 1:
			w.next = l
		}
	}
	return w, sc.Err()
}

// canonical returns the absolute, symlink-free form of path when it can be
// determined.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
