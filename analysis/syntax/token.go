// File: syntax/token.go
package syntax

import (
	"fmt"

	"github.com/dangerclosesec/biza/analysis/text"
)

// Token is a single lexical unit. Position is a byte offset into the source
// and Text is the exact substring consumed. Value is nil, an int32 or a bool.
type Token struct {
	Kind     Kind   `json:"kind"`
	Position int    `json:"position"`
	Text     string `json:"text"`
	Value    any    `json:"value,omitempty"`
}

// Span returns the source range covered by the token
func (t Token) Span() text.TextSpan {
	return text.NewSpan(t.Position, len(t.Text))
}

// Children returns nil; tokens are the leaves of the syntax tree
func (t Token) Children() []Node {
	return nil
}

// SyntaxKind returns the token kind
func (t Token) SyntaxKind() Kind {
	return t.Kind
}

// IsMissing reports whether the parser fabricated this token
func (t Token) IsMissing() bool {
	return t.Text == "" && t.Kind != EndOfFileToken
}

func (t Token) String() string {
	if t.Value != nil {
		return fmt.Sprintf("%s %q %v @%d", t.Kind, t.Text, t.Value, t.Position)
	}
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Text, t.Position)
}
