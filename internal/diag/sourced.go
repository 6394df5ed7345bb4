// Package diag attaches source files to located errors and renders them as
// framed snippets with a caret under the offending token.
package diag

import (
	"errors"
	"strings"

	"github.com/you-not-fish/lumen/internal/syntax"
)

// SourcedError is a located error together with the path of the file the
// location refers to.
type SourcedError struct {
	Err  error           // leaf cause
	Loc  syntax.Location // unknown for errors without a position
	Path string
}

// WithSource attaches path to err. A *syntax.LocalizedError keeps its
// location; any other error gets the unknown location.
func WithSource(err error, path string) *SourcedError {
	if err == nil {
		return nil
	}
	var lerr *syntax.LocalizedError
	if errors.As(err, &lerr) {
		return &SourcedError{Err: lerr.Err, Loc: lerr.Loc, Path: path}
	}
	return &SourcedError{Err: err, Path: path}
}

// Error renders the error without colour. It reads the source file.
func (e *SourcedError) Error() string {
	var b strings.Builder
	NewRenderer().render(&b, e)
	return strings.TrimSuffix(b.String(), "\n")
}

func (e *SourcedError) Unwrap() error {
	return e.Err
}

// Localized returns the error without its path.
func (e *SourcedError) Localized() *syntax.LocalizedError {
	return syntax.WithLocation(e.Err, e.Loc)
}

// Code classifies the cause.
func (e *SourcedError) Code() Code {
	return CodeOf(e.Err)
}
