// Package diagnostic collects recoverable problems found while scanning,
// parsing and binding an expression.
package diagnostic

import (
	"fmt"

	"github.com/dangerclosesec/biza/analysis/text"
)

// Diagnostic is a single reportable problem tied to a span of source text
type Diagnostic struct {
	Span    text.TextSpan `json:"span"`
	Message string        `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}

// Bag is an ordered, append-only list of diagnostics. The zero value is ready
// to use. A Bag belongs to the component that fills it.
type Bag struct {
	items []Diagnostic
}

// All returns a copy of the diagnostics in the order they were reported
func (b *Bag) All() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of reported diagnostics
func (b *Bag) Len() int {
	return len(b.items)
}

// AddRange appends every diagnostic from other, preserving order
func (b *Bag) AddRange(other []Diagnostic) {
	b.items = append(b.items, other...)
}

// Report appends a diagnostic with the given span and message
func (b *Bag) Report(span text.TextSpan, message string) {
	b.items = append(b.items, Diagnostic{Span: span, Message: message})
}

// ReportInvalidNumber records a numeric literal that does not fit typeName
func (b *Bag) ReportInvalidNumber(span text.TextSpan, literal, typeName string) {
	b.Report(span, fmt.Sprintf("The number %s isn't valid %s.", literal, typeName))
}

// ReportBadCharacter records an unrecognised input character covering span
func (b *Bag) ReportBadCharacter(span text.TextSpan, ch rune) {
	b.Report(span, fmt.Sprintf("Bad character input: '%c'.", ch))
}

// ReportUnexpectedToken records a token of the wrong kind where expected was required
func (b *Bag) ReportUnexpectedToken(span text.TextSpan, actual, expected fmt.Stringer) {
	b.Report(span, fmt.Sprintf("Unexpected token <%s>, expected <%s>.", actual, expected))
}

// ReportUndefinedUnaryOperator records a unary operator with no overload for the operand type
func (b *Bag) ReportUndefinedUnaryOperator(span text.TextSpan, operatorText string, operandType fmt.Stringer) {
	b.Report(span, fmt.Sprintf("Unary operator %s is not defined for type %s.", operatorText, operandType))
}

// ReportUndefinedBinaryOperator records a binary operator with no overload for the operand types.
// The message carries no trailing period; callers match on it verbatim.
func (b *Bag) ReportUndefinedBinaryOperator(span text.TextSpan, operatorText string, leftType, rightType fmt.Stringer) {
	b.Report(span, fmt.Sprintf("Binary operator %s is not defined for types %s and %s", operatorText, leftType, rightType))
}

// Messages returns just the message text of each diagnostic
func Messages(diagnostics []Diagnostic) []string {
	out := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		out = append(out, d.Message)
	}
	return out
}
