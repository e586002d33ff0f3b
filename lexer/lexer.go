package lexer

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when peeking or accepting past the end of the
	// input.
	ErrNotFound = errors.New("out of bounds")

	// ErrRejected is returned when the rune under the cursor does not satisfy
	// the given predicate.
	ErrRejected = errors.New("rejected")
)

// ScanFunc consumes one lexeme from the scanner, or fails.
type ScanFunc func(*Scanner) error

// New initializes a Scanner over the given text
func New(text string) *Scanner {
	return &Scanner{
		text: text,
	}
}

// Scanner holds a cursor over an immutable text buffer. The cursor is a byte
// offset that only moves forward, except when ScanWith rolls back a failed
// attempt.
type Scanner struct {
	text string
	pos  int
}

// Pos returns the byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// Text returns the whole input.
func (s *Scanner) Text() string {
	return s.text
}

// Peek returns the rune under the cursor without consuming it.
func (s *Scanner) Peek() (rune, error) {
	return s.PeekN(0)
}

// PeekN returns the n-th rune after the cursor without consuming anything.
func (s *Scanner) PeekN(n int) (rune, error) {
	offset := s.pos
	for {
		if offset >= len(s.text) {
			return utf8.RuneError, ErrNotFound
		}
		r, size := utf8.DecodeRuneInString(s.text[offset:])
		if n == 0 {
			return r, nil
		}
		offset += size
		n--
	}
}

// AcceptIf consumes and returns the rune under the cursor if it satisfies fn.
// The cursor is left untouched on failure.
func (s *Scanner) AcceptIf(fn Predicate) (rune, error) {
	if s.pos >= len(s.text) {
		return utf8.RuneError, ErrNotFound
	}
	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	if !fn(r) {
		return r, ErrRejected
	}
	s.pos += size
	return r, nil
}

// SkipWhile consumes the longest run of runes that satisfy fn and returns it.
// The run may be empty.
func (s *Scanner) SkipWhile(fn Predicate) string {
	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !fn(r) {
			break
		}
		s.pos += size
	}
	return s.text[start:s.pos]
}

// ScanWith runs fn from the current position and returns the text it
// consumed. If fn fails the cursor goes back to where it was before the call.
func (s *Scanner) ScanWith(fn ScanFunc) (string, error) {
	start := s.pos
	if err := fn(s); err != nil {
		s.pos = start
		return "", err
	}
	return s.text[start:s.pos], nil
}

// HasRemainingText returns true if there's unconsumed input.
func (s *Scanner) HasRemainingText() bool {
	return s.pos < len(s.text)
}

// RemainingText returns the unconsumed input.
func (s *Scanner) RemainingText() string {
	return s.text[s.pos:]
}
