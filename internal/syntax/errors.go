package syntax

import (
	"errors"
	"fmt"
)

// TokenError reports a snippet that is neither an operator, a keyword nor
// an alphanumeric literal.
type TokenError struct {
	Message string
}

func (e *TokenError) Error() string {
	return "token error: " + e.Message
}

// ParseError reports a token sequence that does not match the grammar.
type ParseError struct {
	Message string
	AtEOF   bool // the parser ran out of tokens
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Message
}

// LocalizedError pairs a failure with the location it was detected at.
type LocalizedError struct {
	Err error
	Loc Location
}

// WithLocation wraps err with loc. A nil err yields nil.
func WithLocation(err error, loc Location) *LocalizedError {
	if err == nil {
		return nil
	}
	return &LocalizedError{Err: err, Loc: loc}
}

func (e *LocalizedError) Error() string {
	return fmt.Sprintf("Error at [line:%d,column:%d]:\n%v", e.Loc.line, e.Loc.col, e.Err)
}

func (e *LocalizedError) Unwrap() error {
	return e.Err
}

// Location returns where the error occurred.
func (e *LocalizedError) Location() Location {
	return e.Loc
}

// IsIncomplete reports whether err is a parse failure caused by running out
// of input, i.e. more lines could still complete the program.
func IsIncomplete(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.AtEOF
}
