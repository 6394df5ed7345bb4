package diag

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/lumen/internal/syntax"
)

// writeSource creates a source file in a temporary directory.
func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.lm")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// sourced parses the file at path and returns its diagnostic.
func sourced(t *testing.T, path string) *SourcedError {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	_, err = syntax.Parse(syntax.NewLineReader(f))
	if err == nil {
		t.Fatalf("%s parsed without error", path)
	}
	return WithSource(err, path)
}

func render(t *testing.T, e *SourcedError, opts ...Option) string {
	t.Helper()
	var b strings.Builder
	if err := NewRenderer(opts...).Render(&b, e); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func TestRenderLexicalError(t *testing.T) {
	path := writeSource(t, "let x = 1;\nlet y = a @ b;\nz;\n")
	got := render(t, sourced(t, path))

	want := `Error at [line:2,column:4]:
token error: invalid token: @
Inside file '` + canonical(path) + `':
───┬──────────────────────────────
 1 │ let x = 1;
   │
 2 │ let y = a @ b;
   │           ^
 3 │ z;
───┴──────────────────────────────
`
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderRebuildsSpacing(t *testing.T) {
	// Tabs and runs of blanks become single-width padding; the comment is dropped.
	path := writeSource(t, "\tlet   x =  1 +; // oops\n")
	got := render(t, sourced(t, path))

	want := `Error at [line:1,column:5]:
parse error: expected literal, unary operator or opening parenthesis, found ";"
Inside file '` + canonical(path) + `':
───┬──────────────────────────────
   │
   │
 1 │  let   x =  1 +;
   │                ^
   │
───┴──────────────────────────────
`
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWideGutterAndFrame(t *testing.T) {
	var src strings.Builder
	for i := 0; i < 11; i++ {
		src.WriteString("a;\n")
	}
	src.WriteString("b c;\n")
	path := writeSource(t, src.String())
	got := render(t, sourced(t, path), WithFrameWidth(5))

	want := `Error at [line:12,column:1]:
parse error: expected semicolon, found literal "c"
Inside file '` + canonical(path) + `':
────┬─────
 11 │ a;
    │
 12 │ b c;
    │   ^
    │
────┴─────
`
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNonASCII(t *testing.T) {
	path := writeSource(t, "let é = 1;\n")
	got := render(t, sourced(t, path))
	if !strings.Contains(got, " 1 │ let é\n   │     ^\n") {
		t.Errorf("caret not under the non-ASCII character:\n%s", got)
	}
}

func TestRenderNotes(t *testing.T) {
	path := writeSource(t, "x;\n")
	tests := []struct {
		name string
		loc  syntax.Location
		note string
	}{
		{"unknown", syntax.Location{}, "note: no source position is known for this error"},
		{"past_eof", syntax.NewLocation(7, 0), "note: line 7 is past the end of the file"},
		{"past_line", syntax.NewLocation(1, 9), "note: line 1 has no token at column 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &SourcedError{Err: &syntax.ParseError{Message: "boom"}, Loc: tt.loc, Path: path}
			got := render(t, e)
			if !strings.HasSuffix(got, tt.note+"\n") {
				t.Errorf("Render =\n%s\nwant note %q", got, tt.note)
			}
			if strings.Contains(got, "^") {
				t.Errorf("rendering has a caret:\n%s", got)
			}
		})
	}
}

func TestRenderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.lm")
	_, openErr := os.Open(path)
	e := WithSource(openErr, path)

	got := render(t, e)
	if !strings.HasPrefix(got, "Error at [line:0,column:0]:\nopen ") {
		t.Errorf("header = %q", got)
	}
	if !strings.Contains(got, "Couldn't show snippet, error opening file: open "+path) {
		t.Errorf("missing fallback text:\n%s", got)
	}
	if strings.Contains(got, "┬") {
		t.Errorf("fallback rendering has a frame:\n%s", got)
	}
}

func TestRenderColor(t *testing.T) {
	path := writeSource(t, "x y;\n")
	e := sourced(t, path)

	plain := render(t, e)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("plain rendering has escape sequences:\n%q", plain)
	}

	colored := render(t, e, WithColor(true), WithOutput(&strings.Builder{}))
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("coloured rendering has no escape sequences:\n%q", colored)
	}
	if !strings.Contains(colored, "^") {
		t.Errorf("coloured rendering lost the caret:\n%q", colored)
	}
}

func TestSourcedError(t *testing.T) {
	path := writeSource(t, "x y;\n")
	e := sourced(t, path)

	if e.Loc != syntax.NewLocation(1, 1) || e.Path != path {
		t.Errorf("WithSource = %+v", e)
	}
	var perr *syntax.ParseError
	if !errors.As(e, &perr) {
		t.Fatalf("Unwrap does not reach *ParseError: %T", e.Err)
	}
	if e.Code() != CodeSyntax {
		t.Errorf("Code = %v, want %v", e.Code(), CodeSyntax)
	}
	if got, want := e.Error(), strings.TrimSuffix(render(t, e), "\n"); got != want {
		t.Errorf("Error() =\n%s\nwant:\n%s", got, want)
	}
	if got := e.Localized().Error(); !strings.HasPrefix(got, "Error at [line:1,column:1]:\n") {
		t.Errorf("Localized = %q", got)
	}
	if WithSource(nil, path) != nil {
		t.Error("WithSource(nil) != nil")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeUnknown},
		{"token", &syntax.TokenError{Message: "invalid token: @"}, CodeLexical},
		{"segment", &syntax.SegmentError{Offset: 1, Char: 'é'}, CodeLexical},
		{"parse", syntax.WithLocation(&syntax.ParseError{Message: "x"}, syntax.NewLocation(1, 0)), CodeSyntax},
		{"path", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, CodeIO},
		{"sourced_io", WithSource(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, "x"), CodeIO},
		{"other", errors.New("other"), CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf = %v, want %v", got, tt.want)
			}
		})
	}
}
