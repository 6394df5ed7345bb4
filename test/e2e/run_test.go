package e2e

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/lumen/internal/diag"
	"github.com/you-not-fish/lumen/internal/syntax"
)

// TestE2E runs every .lm file in testdata/ through the front end.
// Each test:
//  1. Parses the file from disk
//  2. On success, compares the AST dump against <name>.golden
//  3. On failure, compares the plain diagnostic against <name>.err.golden,
//     with the file path replaced by <FILE>
//  4. Checks that formatting a parsed module and parsing it again yields
//     the same tree
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.lm")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .lm test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".lm")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, file string) {
	t.Helper()

	base := strings.TrimSuffix(file, ".lm")
	m, err := parseFile(t, file)

	if err != nil {
		want := readGolden(t, base+".err.golden")
		got := diag.WithSource(err, file).Error() + "\n"
		got = strings.ReplaceAll(got, absPath(t, file), "<FILE>")
		if got != want {
			t.Errorf("diagnostic mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
		return
	}

	want := readGolden(t, base+".golden")
	var buf bytes.Buffer
	syntax.Fprint(&buf, m)
	if got := buf.String(); got != want {
		t.Errorf("AST mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	again, err := syntax.ParseString(syntax.Format(m))
	if err != nil {
		t.Fatalf("reparse of formatted module: %v", err)
	}
	if !syntax.Equal(again, m) {
		t.Errorf("formatted module parses to a different tree:\n%s", syntax.Format(m))
	}
}

func parseFile(t *testing.T, file string) (*syntax.Module, error) {
	t.Helper()
	f, err := os.Open(file)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	return syntax.Parse(syntax.NewLineReader(f))
}

func readGolden(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	return string(data)
}

// absPath returns path the way diagnostics print it.
func absPath(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatal(err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
