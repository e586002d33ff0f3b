package parser

import (
	"strconv"

	"github.com/golang/glog"

	"github.com/xiam/lread/ast"
	"github.com/xiam/lread/lexer"
)

// Options change how the parser treats some inputs. The zero value rejects
// empty strings, does not limit nesting and ends symbols at quotes and parens.
type Options struct {
	// AllowEmptyText accepts `""` as an empty Text value. When false an empty
	// string is reported as an unterminated string.
	AllowEmptyText bool

	// MaxDepth limits how deeply lists can be nested. Zero means no limit,
	// in which case nesting is only bounded by the goroutine stack.
	MaxDepth int

	// WordSymbols makes a symbol run until the next whitespace, so `a)b` and
	// `a"b` are single symbols and a lone `)` reads as Symbol(")"). A list
	// whose last element is a symbol then needs a space before its closing
	// paren. When false symbols also stop at quotes and parens.
	WordSymbols bool
}

// Parser reads a single value from a line of text.
type Parser struct {
	sc   *lexer.Scanner
	opts Options

	depth int
}

// New creates a parser for the given text
func New(text string) *Parser {
	return &Parser{
		sc: lexer.New(text),
	}
}

// SetOptions replaces the parser options
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// Parse reads exactly one value and makes sure nothing but whitespace
// follows it. No partial tree is returned on failure.
func (p *Parser) Parse() (ast.Value, error) {
	v, err := p.parse()
	if err != nil {
		if glog.V(2) {
			glog.Infof("parse %q failed at offset %d: %v", p.sc.Text(), p.sc.Pos(), err)
		}
		return nil, err
	}
	return v, nil
}

func (p *Parser) parse() (ast.Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	p.sc.SkipWhile(lexer.IsWhitespace)
	if p.sc.HasRemainingText() {
		return nil, newError(KindTrailingInput, p.sc.Pos(), p.sc.RemainingText())
	}

	return v, nil
}

func (p *Parser) parseValue() (ast.Value, error) {
	p.sc.SkipWhile(lexer.IsWhitespace)

	r, err := p.sc.Peek()
	if err != nil {
		return nil, newError(KindEmptyInput, p.sc.Pos(), "")
	}

	switch lexer.Classify(r) {
	case lexer.ClassQuote:
		return p.parseText()
	case lexer.ClassOpenParen:
		return p.parseList()
	case lexer.ClassCloseParen:
		if p.opts.WordSymbols {
			return p.parseSymbol()
		}
		return nil, newError(KindUnexpectedCloseParen, p.sc.Pos(), "")
	case lexer.ClassDigit:
		return p.parseNumber()
	}

	return p.parseSymbol()
}

func (p *Parser) parseText() (ast.Value, error) {
	if _, err := p.sc.AcceptIf(lexer.IsQuote); err != nil {
		return nil, newError(KindUnterminatedString, p.sc.Pos(), "")
	}

	scan := lexer.ScanTextBody
	if p.opts.AllowEmptyText {
		scan = lexer.ScanOptionalTextBody
	}

	body, err := p.sc.ScanWith(scan)
	if err != nil {
		return nil, newError(KindUnterminatedString, p.sc.Pos(), "")
	}

	if _, err := p.sc.AcceptIf(lexer.IsQuote); err != nil {
		return nil, newError(KindUnterminatedString, p.sc.Pos(), "")
	}

	return ast.Text(body), nil
}

func (p *Parser) parseList() (ast.Value, error) {
	start := p.sc.Pos()
	if _, err := p.sc.AcceptIf(lexer.IsOpenParen); err != nil {
		return nil, newError(KindUnterminatedList, start, "")
	}

	p.depth++
	defer func() {
		p.depth--
	}()
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return nil, newError(KindMaxDepthExceeded, start, "")
	}

	values := ast.List{}
	for {
		p.sc.SkipWhile(lexer.IsWhitespace)

		r, err := p.sc.Peek()
		if err != nil || lexer.IsCloseParen(r) {
			break
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if _, err := p.sc.AcceptIf(lexer.IsCloseParen); err != nil {
		return nil, newError(KindUnterminatedList, p.sc.Pos(), "")
	}

	return values, nil
}

func (p *Parser) parseNumber() (ast.Value, error) {
	start := p.sc.Pos()

	// The float grammar goes first, otherwise "4.2" would stop at "4".
	if lexeme, err := p.sc.ScanWith(lexer.ScanFloat); err == nil {
		f64, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, newError(KindNumberOutOfRange, start, lexeme)
		}
		return ast.Float(f64), nil
	}

	lexeme, err := p.sc.ScanWith(lexer.ScanInteger)
	if err != nil {
		return nil, newError(KindInvalid, start, "")
	}

	i64, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, newError(KindNumberOutOfRange, start, lexeme)
	}
	return ast.Integer(i64), nil
}

func (p *Parser) parseSymbol() (ast.Value, error) {
	start := p.sc.Pos()

	scan := lexer.ScanSymbol
	if p.opts.WordSymbols {
		scan = lexer.ScanWord
	}

	lexeme, err := p.sc.ScanWith(scan)
	if err != nil {
		return nil, newError(KindInvalid, start, "")
	}

	return ast.Symbol(lexeme), nil
}

// Parse reads one value from text using the default options.
func Parse(text string) (ast.Value, error) {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions reads one value from text.
func ParseWithOptions(text string, opts Options) (ast.Value, error) {
	p := New(text)
	p.SetOptions(opts)
	return p.Parse()
}
