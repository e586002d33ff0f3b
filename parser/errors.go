package parser

import (
	"fmt"
)

// ErrorKind classifies parse failures
type ErrorKind uint8

// List of parse failures
const (
	KindInvalid ErrorKind = iota
	KindEmptyInput
	KindUnterminatedList
	KindUnterminatedString
	KindTrailingInput
	KindUnexpectedCloseParen
	KindNumberOutOfRange
	KindMaxDepthExceeded
)

var kindNames = map[ErrorKind]string{
	KindInvalid:              "invalid",
	KindEmptyInput:           "empty_input",
	KindUnterminatedList:     "unterminated_list",
	KindUnterminatedString:   "unterminated_string",
	KindTrailingInput:        "trailing_input",
	KindUnexpectedCloseParen: "unexpected_close_paren",
	KindNumberOutOfRange:     "number_out_of_range",
	KindMaxDepthExceeded:     "max_depth_exceeded",
}

func (k ErrorKind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return kindNames[KindInvalid]
}

// Error is returned by the parser for any malformed input
type Error struct {
	Kind ErrorKind

	// Text is the offending input for TrailingInput and NumberOutOfRange.
	Text string

	// Offset is the byte offset where the failure was detected.
	Offset int
}

// Sentinel errors, each matching any *Error of the same kind through
// errors.Is.
var (
	ErrEmptyInput           = &Error{Kind: KindEmptyInput}
	ErrUnterminatedList     = &Error{Kind: KindUnterminatedList}
	ErrUnterminatedString   = &Error{Kind: KindUnterminatedString}
	ErrTrailingInput        = &Error{Kind: KindTrailingInput}
	ErrUnexpectedCloseParen = &Error{Kind: KindUnexpectedCloseParen}
	ErrNumberOutOfRange     = &Error{Kind: KindNumberOutOfRange}
	ErrMaxDepthExceeded     = &Error{Kind: KindMaxDepthExceeded}
)

func newError(kind ErrorKind, offset int, text string) *Error {
	return &Error{Kind: kind, Offset: offset, Text: text}
}

func (e *Error) Error() string {
	return "scanner error: " + e.message()
}

func (e *Error) message() string {
	switch e.Kind {
	case KindEmptyInput:
		return "out of bounds"
	case KindUnterminatedList:
		return "missing closing paren"
	case KindUnterminatedString:
		return "missing closing quote"
	case KindTrailingInput:
		return fmt.Sprintf(`has more text "%s"`, e.Text)
	case KindUnexpectedCloseParen:
		return "unexpected closing paren"
	case KindNumberOutOfRange:
		return fmt.Sprintf(`number out of range "%s"`, e.Text)
	case KindMaxDepthExceeded:
		return "maximum nesting depth exceeded"
	}
	return "invalid input"
}

// Is makes errors.Is match on the error kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
