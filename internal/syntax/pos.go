package syntax

import "fmt"

// Location identifies a token or node in a source file.
// The zero value is the unknown (synthetic) location.
type Location struct {
	line uint32 // 1-based count of lines consumed
	col  uint32 // 0-based snippet index within the line
}

// NewLocation creates a Location for the given line and snippet column.
func NewLocation(line, col uint32) Location {
	return Location{line: line, col: col}
}

// String returns the location in the format "line:column".
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.line, l.col)
}

// IsValid reports whether the location refers to a real source line.
func (l Location) IsValid() bool {
	return l.line > 0
}

// Line returns the 1-based line number.
func (l Location) Line() uint32 {
	return l.line
}

// Column returns the 0-based index of the snippet within its line.
func (l Location) Column() uint32 {
	return l.col
}
