package diag

import (
	"errors"
	"io/fs"

	"github.com/you-not-fish/lumen/internal/syntax"
)

// Code classifies a diagnostic.
type Code string

const (
	CodeLexical Code = "LEXICAL"
	CodeSyntax  Code = "SYNTAX"
	CodeIO      Code = "IO"
	CodeUnknown Code = "UNKNOWN"
)

func (c Code) String() string {
	return string(c)
}

// CodeOf returns the code of the innermost recognised cause of err.
func CodeOf(err error) Code {
	var (
		tokErr   *syntax.TokenError
		parseErr *syntax.ParseError
		segErr   *syntax.SegmentError
		pathErr  *fs.PathError
	)
	switch {
	case err == nil:
		return CodeUnknown
	case errors.As(err, &tokErr), errors.As(err, &segErr):
		return CodeLexical
	case errors.As(err, &parseErr):
		return CodeSyntax
	case errors.As(err, &pathErr):
		return CodeIO
	}
	return CodeUnknown
}
