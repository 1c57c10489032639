// Package binding resolves operators in a syntax tree against the closed
// int32/bool type system and produces a typed bound tree.
//
// Binding never fails on user input. An operator that is not defined for its
// operand types is reported and the node collapses to one of its bound
// operands: the operand for unary expressions, the left side for binary ones.
package binding

import (
	"fmt"

	"github.com/dangerclosesec/biza/analysis/diagnostic"
	"github.com/dangerclosesec/biza/analysis/syntax"
)

// Binder turns syntax expressions into bound expressions. A Binder keeps its
// own diagnostics and is not safe for concurrent use.
type Binder struct {
	diagnostics diagnostic.Bag
}

// NewBinder creates a new Binder
func NewBinder() *Binder {
	return &Binder{}
}

// Diagnostics returns the binding problems reported so far
func (b *Binder) Diagnostics() *diagnostic.Bag {
	return &b.diagnostics
}

// BindExpression binds syntax and returns a bound tree. It panics if syntax
// is a node kind the binder does not know, which means the parser and binder
// disagree about the node set.
func (b *Binder) BindExpression(expr syntax.ExpressionSyntax) Expression {
	switch e := expr.(type) {
	case *syntax.LiteralExpressionSyntax:
		return b.bindLiteralExpression(e)
	case *syntax.UnaryExpressionSyntax:
		return b.bindUnaryExpression(e)
	case *syntax.BinaryExpressionSyntax:
		return b.bindBinaryExpression(e)
	case *syntax.ParenthesizedExpressionSyntax:
		return b.BindExpression(e.Expression)
	default:
		panic(fmt.Sprintf("unexpected syntax %v", kindOf(expr)))
	}
}

func (b *Binder) bindLiteralExpression(e *syntax.LiteralExpressionSyntax) Expression {
	return NewLiteralExpression(e.Value)
}

func (b *Binder) bindUnaryExpression(e *syntax.UnaryExpressionSyntax) Expression {
	operand := b.BindExpression(e.Operand)

	op, ok := BindUnaryOperator(e.OperatorToken.Kind, operand.Type())
	if !ok {
		b.diagnostics.ReportUndefinedUnaryOperator(e.OperatorToken.Span(), e.OperatorToken.Text, operand.Type())
		return operand
	}

	return &UnaryExpression{Op: op, Operand: operand}
}

func (b *Binder) bindBinaryExpression(e *syntax.BinaryExpressionSyntax) Expression {
	left := b.BindExpression(e.Left)
	right := b.BindExpression(e.Right)

	op, ok := BindBinaryOperator(e.OperatorToken.Kind, left.Type(), right.Type())
	if !ok {
		b.diagnostics.ReportUndefinedBinaryOperator(e.OperatorToken.Span(), e.OperatorToken.Text, left.Type(), right.Type())
		return left
	}

	return &BinaryExpression{Left: left, Op: op, Right: right}
}

func kindOf(expr syntax.ExpressionSyntax) string {
	if expr == nil {
		return "<nil>"
	}
	return expr.SyntaxKind().String()
}
