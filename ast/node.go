package ast

// NewList creates a list holding the given values, in order.
func NewList(values ...Value) List {
	l := make(List, 0, len(values))
	return append(l, values...)
}

// Equal reports whether a and b are structurally equal: same variant, same
// payload and, for lists, pairwise equal elements in the same order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Integer:
		y, ok := b.(Integer)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	panic("unreachable")
}

// Depth returns the nesting depth of v. Atoms have depth 0 and an empty
// list has depth 1.
func Depth(v Value) int {
	l, ok := v.(List)
	if !ok {
		return 0
	}
	max := 0
	for i := range l {
		if d := Depth(l[i]); d > max {
			max = d
		}
	}
	return max + 1
}
