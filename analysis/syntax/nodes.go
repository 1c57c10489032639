// File: syntax/nodes.go
package syntax

// Node is anything that appears in a syntax tree: tokens and expressions
type Node interface {
	SyntaxKind() Kind
	Children() []Node
}

// ExpressionSyntax is the closed set of expression nodes the parser produces.
// The unexported marker keeps other packages from adding variants.
type ExpressionSyntax interface {
	Node
	expressionSyntax()
}

// LiteralExpressionSyntax is a number or boolean literal
type LiteralExpressionSyntax struct {
	LiteralToken Token
	Value        any
}

func (*LiteralExpressionSyntax) SyntaxKind() Kind { return LiteralExpression }

func (e *LiteralExpressionSyntax) Children() []Node {
	return []Node{e.LiteralToken}
}

// UnaryExpressionSyntax is a prefix operator applied to an operand
type UnaryExpressionSyntax struct {
	OperatorToken Token
	Operand       ExpressionSyntax
}

func (*UnaryExpressionSyntax) SyntaxKind() Kind { return UnaryExpression }

func (e *UnaryExpressionSyntax) Children() []Node {
	return []Node{e.OperatorToken, e.Operand}
}

// BinaryExpressionSyntax is an infix operator between two operands
type BinaryExpressionSyntax struct {
	Left          ExpressionSyntax
	OperatorToken Token
	Right         ExpressionSyntax
}

func (*BinaryExpressionSyntax) SyntaxKind() Kind { return BinaryExpression }

func (e *BinaryExpressionSyntax) Children() []Node {
	return []Node{e.Left, e.OperatorToken, e.Right}
}

// ParenthesizedExpressionSyntax is an expression wrapped in ( )
type ParenthesizedExpressionSyntax struct {
	OpenParenthesisToken  Token
	Expression            ExpressionSyntax
	CloseParenthesisToken Token
}

func (*ParenthesizedExpressionSyntax) SyntaxKind() Kind { return ParenthesizedExpression }

func (e *ParenthesizedExpressionSyntax) Children() []Node {
	return []Node{e.OpenParenthesisToken, e.Expression, e.CloseParenthesisToken}
}

func (*LiteralExpressionSyntax) expressionSyntax()       {}
func (*UnaryExpressionSyntax) expressionSyntax()         {}
func (*BinaryExpressionSyntax) expressionSyntax()        {}
func (*ParenthesizedExpressionSyntax) expressionSyntax() {}
