package lexer

import (
	"unicode"
)

// RuneClass represents a group of characters with the same lexical meaning
type RuneClass uint8

// List of rune classes
const (
	ClassInvalid    RuneClass = iota
	ClassQuote                // Double quote: '"'
	ClassOpenParen            // Open parenthesis: "("
	ClassCloseParen           // Close parenthesis: ")"
	ClassDigit                // Decimal digits
	ClassPeriod               // Period: "."
	ClassWhitespace           // Any unicode white space
	ClassSymbol               // Anything else
)

var classValues = map[RuneClass][]rune{
	ClassQuote:      []rune{'"'},
	ClassOpenParen:  []rune{'('},
	ClassCloseParen: []rune{')'},
	ClassDigit:      []rune("0123456789"),
	ClassPeriod:     []rune{'.'},
}

var classNames = map[RuneClass]string{
	ClassInvalid:    "invalid",
	ClassQuote:      "quote",
	ClassOpenParen:  "open_paren",
	ClassCloseParen: "close_paren",
	ClassDigit:      "digit",
	ClassPeriod:     "period",
	ClassWhitespace: "whitespace",
	ClassSymbol:     "symbol",
}

func (rc RuneClass) String() string {
	if v, ok := classNames[rc]; ok {
		return v
	}
	return classNames[ClassInvalid]
}

// Predicate reports whether a rune belongs to some class.
type Predicate func(r rune) bool

func isRuneClass(rc RuneClass) Predicate {
	return func(r rune) bool {
		for _, v := range classValues[rc] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func not(fn Predicate) Predicate {
	return func(r rune) bool {
		return !fn(r)
	}
}

var (
	IsQuote      = isRuneClass(ClassQuote)
	IsNotQuote   = not(IsQuote)
	IsOpenParen  = isRuneClass(ClassOpenParen)
	IsCloseParen = isRuneClass(ClassCloseParen)
	IsDigit      = isRuneClass(ClassDigit)
	IsPeriod     = isRuneClass(ClassPeriod)
)

// IsWhitespace matches the same class the parser skips between values.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsNotWhitespace matches any rune that belongs to a word.
var IsNotWhitespace = not(IsWhitespace)

// IsSymbol returns true for any rune that can't start a string, open or
// close a list, or separate two values.
func IsSymbol(r rune) bool {
	return !IsWhitespace(r) && !IsQuote(r) && !IsOpenParen(r) && !IsCloseParen(r)
}

// Classify returns the class the parser dispatches on for the given rune.
func Classify(r rune) RuneClass {
	switch {
	case IsQuote(r):
		return ClassQuote
	case IsOpenParen(r):
		return ClassOpenParen
	case IsCloseParen(r):
		return ClassCloseParen
	case IsDigit(r):
		return ClassDigit
	case IsPeriod(r):
		return ClassPeriod
	case IsWhitespace(r):
		return ClassWhitespace
	}
	return ClassSymbol
}
