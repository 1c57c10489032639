// File: syntax/tree.go
package syntax

import (
	"fmt"
	"io"
	"strings"

	"github.com/dangerclosesec/biza/analysis/diagnostic"
)

// SyntaxTree is the parser's output for one source string
type SyntaxTree struct {
	Root           ExpressionSyntax
	EndOfFileToken Token
	Diagnostics    []diagnostic.Diagnostic
}

// ParseSyntaxTree lexes and parses input into a SyntaxTree
func ParseSyntaxTree(input string) *SyntaxTree {
	return NewParser(input).Parse()
}

// PrettyPrint writes node and its descendants as an indented tree
func PrettyPrint(w io.Writer, node Node) error {
	return prettyPrint(w, node, "", true)
}

func prettyPrint(w io.Writer, node Node, indent string, isLast bool) error {
	marker := "├──"
	if isLast {
		marker = "└──"
	}

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(marker)
	b.WriteString(node.SyntaxKind().String())
	if tok, ok := node.(Token); ok && tok.Value != nil {
		fmt.Fprintf(&b, " %v", tok.Value)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if isLast {
		indent += "   "
	} else {
		indent += "│  "
	}

	children := node.Children()
	for i, child := range children {
		if err := prettyPrint(w, child, indent, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}
