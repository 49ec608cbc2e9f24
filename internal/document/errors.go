package document

import (
	"fmt"
	"strings"
)

// ParseError reports input that could not be decoded as JSON.
// Line and Column are 1-based; Offset is the byte offset into the input.
type ParseError struct {
	Source string // file path (empty when parsing raw bytes)
	Reason string // human-readable description
	Offset int64
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	var parts []string

	if e.Source != "" {
		parts = append(parts, e.Source)
	}
	parts = append(parts, e.Reason)
	parts = append(parts, fmt.Sprintf("line %d column %d (char %d)", e.Line, e.Column, e.Offset))

	return strings.Join(parts, ": ")
}

// ShapeError reports a document that decoded fine but does not have the
// structure needed to find the table collection
type ShapeError struct {
	Path     string // key path of the offending value, e.g. "tables"
	Expected Kind
	Got      Kind
}

func (e *ShapeError) Error() string {
	path := e.Path
	if path == "" {
		path = "document root"
	}
	return fmt.Sprintf("unexpected shape at %s: expected %s, got %s", path, e.Expected, e.Got)
}

func newParseError(data []byte, offset int64, reason string) *ParseError {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return &ParseError{
		Reason: reason,
		Offset: offset,
		Line:   line,
		Column: col,
	}
}
