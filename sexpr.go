// Package lread reads single-line s-expressions into typed syntax trees.
package lread

import (
	"bufio"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/xiam/lread/ast"
	"github.com/xiam/lread/parser"
)

// Parse reads one value from in using the default parser options.
func Parse(in []byte) (ast.Value, error) {
	return parser.Parse(string(in))
}

// ParseString reads one value from s using the default parser options.
func ParseString(s string) (ast.Value, error) {
	return parser.Parse(s)
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithParserOptions sets the options used to parse every line.
func WithParserOptions(opts parser.Options) ReaderOption {
	return func(r *Reader) {
		r.opts = opts
	}
}

// SkipBlankLines makes the reader ignore lines made only of whitespace
// instead of reporting them as empty input.
func SkipBlankLines() ReaderOption {
	return func(r *Reader) {
		r.skipBlank = true
	}
}

// Reader parses one value per line from an io.Reader. Lines are independent:
// a failure on one line does not affect the next one.
type Reader struct {
	sc   *bufio.Scanner
	opts parser.Options

	skipBlank bool
	line      int
}

// NewReader creates a Reader
func NewReader(r io.Reader, options ...ReaderOption) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	rd := &Reader{sc: sc}
	for _, opt := range options {
		opt(rd)
	}
	return rd
}

// Line returns the number of the last line read, starting at 1.
func (r *Reader) Line() int {
	return r.line
}

// Read parses the next line. It returns io.EOF when there are no more lines.
// Parse failures are annotated with the line number and still match the
// parser sentinel errors through errors.Is.
func (r *Reader) Read() (ast.Value, error) {
	for {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return nil, errors.Wrap(err, "reading input")
			}
			return nil, io.EOF
		}
		r.line++

		text := strings.TrimSuffix(r.sc.Text(), "\r")
		if r.skipBlank && strings.TrimSpace(text) == "" {
			continue
		}

		v, err := parser.ParseWithOptions(text, r.opts)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", r.line)
		}

		if glog.V(1) {
			glog.Infof("line %d: %s", r.line, v.Encode())
		}
		return v, nil
	}
}
