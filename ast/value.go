package ast

import (
	"strconv"
	"strings"
)

// Value is a node of the syntax tree. The set of implementations is closed:
// Integer, Float, Symbol, Text and List.
type Value interface {
	Type() NodeType
	Encode() string
	String() string

	isValue()
}

// Integer is a base-10 signed integer.
type Integer int64

// Float is a decimal number with a fractional part.
type Float float64

// Symbol is any bare word, including operators and emoji.
type Symbol string

// Text is the raw content of a quoted string.
type Text string

// List is an ordered sequence of values.
type List []Value

func (Integer) Type() NodeType { return NodeTypeInt }
func (Float) Type() NodeType   { return NodeTypeFloat }
func (Symbol) Type() NodeType  { return NodeTypeSymbol }
func (Text) Type() NodeType    { return NodeTypeString }
func (List) Type() NodeType    { return NodeTypeList }

func (Integer) isValue() {}
func (Float) isValue()   {}
func (Symbol) isValue()  {}
func (Text) isValue()    {}
func (List) isValue()    {}

// Encode returns the canonical decimal representation.
func (v Integer) Encode() string {
	return strconv.FormatInt(int64(v), 10)
}

// Encode returns the shortest decimal representation that reads back as the
// same float, without exponent. Trailing zeros are not preserved.
func (v Float) Encode() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func (v Symbol) Encode() string {
	return string(v)
}

// Encode wraps the text in double quotes. Nothing is escaped.
func (v Text) Encode() string {
	return `"` + string(v) + `"`
}

func (v List) Encode() string {
	var b strings.Builder
	encodeList(&b, v)
	return b.String()
}

func encodeList(b *strings.Builder, l List) {
	b.WriteByte('(')
	for i := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		if inner, ok := l[i].(List); ok {
			encodeList(b, inner)
			continue
		}
		b.WriteString(l[i].Encode())
	}
	b.WriteByte(')')
}

func (v Integer) String() string { return v.Encode() }
func (v Float) String() string   { return v.Encode() }
func (v Symbol) String() string  { return v.Encode() }
func (v Text) String() string    { return v.Encode() }
func (v List) String() string    { return v.Encode() }

// Len returns the number of elements in the list.
func (v List) Len() int {
	return len(v)
}

var (
	_ = Value(Integer(0))
	_ = Value(Float(0))
	_ = Value(Symbol(""))
	_ = Value(Text(""))
	_ = Value(List(nil))
)
