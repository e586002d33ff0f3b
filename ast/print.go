package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented representation of v
func Print(w io.Writer, v Value) error {
	return printLevel(w, v, 0)
}

func printLevel(w io.Writer, v Value, level int) error {
	indent := strings.Repeat("    ", level)
	if v == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	switch n := v.(type) {
	case List:
		if _, err := fmt.Fprintf(w, "%s(%s)[%d]\n", indent, n.Type(), n.Len()); err != nil {
			return err
		}
		for i := range n {
			if err := printLevel(w, n[i], level+1); err != nil {
				return err
			}
		}
		return nil

	case Integer, Float, Symbol, Text:
		_, err := fmt.Fprintf(w, "%s(%s): %s\n", indent, n.Type(), n.Encode())
		return err
	}

	panic("unknown node type")
}

// Encode transforms a value into its text representation
func Encode(v Value) []byte {
	if v == nil {
		return nil
	}
	return []byte(v.Encode())
}
