package relativize

import "fmt"

// FileAccessError reports an input path that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// MalformedRowError reports a row too narrow to have its baseline column
// removed. Row is 1-based, the header being row 1.
type MalformedRowError struct {
	Row    int
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("row %d (counting from 1): has %d field(s), need at least 2", e.Row, e.Fields)
}

// NumericFormatError reports a field that should hold a floating-point
// number but does not parse as one. Row and Column are both 1-based, like
// MalformedRowError's Row.
type NumericFormatError struct {
	Row    int
	Column int
	Value  string
	Err    error
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("row %d, column %d (counting from 1): %q is not a number", e.Row, e.Column, e.Value)
}

func (e *NumericFormatError) Unwrap() error { return e.Err }
