// File: syntax/parser.go
package syntax

import (
	"github.com/dangerclosesec/biza/analysis/diagnostic"
)

// Parser builds an expression tree from the lexer's token stream using
// precedence climbing over the operator facts
type Parser struct {
	tokens      []Token
	position    int
	diagnostics diagnostic.Bag
}

// NewParser lexes input and creates a Parser over the significant tokens.
// Whitespace and bad tokens are dropped; the lexer's diagnostics carry over.
func NewParser(input string) *Parser {
	l := NewLexer(input)
	p := &Parser{}

	for {
		tok := l.Lex()
		if tok.Kind != WhitespaceToken && tok.Kind != BadToken {
			p.tokens = append(p.tokens, tok)
		}
		if tok.Kind == EndOfFileToken {
			break
		}
	}

	p.diagnostics.AddRange(l.Diagnostics().All())
	return p
}

// Diagnostics returns lexer and parser diagnostics in the order reported
func (p *Parser) Diagnostics() *diagnostic.Bag {
	return &p.diagnostics
}

// peek returns the token offset places ahead, clamped to the EOF token
func (p *Parser) peek(offset int) Token {
	index := p.position + offset
	if index >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[index]
}

func (p *Parser) current() Token {
	return p.peek(0)
}

// nextToken returns the current token and advances past it
func (p *Parser) nextToken() Token {
	tok := p.current()
	if p.position < len(p.tokens) {
		p.position++
	}
	return tok
}

// matchToken consumes a token of the given kind, or reports one and
// fabricates an empty token in its place
func (p *Parser) matchToken(kind Kind) Token {
	if p.current().Kind == kind {
		return p.nextToken()
	}

	cur := p.current()
	p.diagnostics.ReportUnexpectedToken(cur.Span(), cur.Kind, kind)
	return Token{Kind: kind, Position: cur.Position}
}

// Parse parses a single expression followed by end of input
func (p *Parser) Parse() *SyntaxTree {
	expression := p.parseExpression(0)
	eof := p.matchToken(EndOfFileToken)
	return &SyntaxTree{
		Root:           expression,
		EndOfFileToken: eof,
		Diagnostics:    p.diagnostics.All(),
	}
}

// parseExpression parses operators that bind tighter than parentPrecedence
func (p *Parser) parseExpression(parentPrecedence int) ExpressionSyntax {
	var left ExpressionSyntax

	unaryPrecedence := UnaryOperatorPrecedence(p.current().Kind)
	if unaryPrecedence != 0 && unaryPrecedence >= parentPrecedence {
		operator := p.nextToken()
		operand := p.parseExpression(unaryPrecedence)
		left = &UnaryExpressionSyntax{OperatorToken: operator, Operand: operand}
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		precedence := BinaryOperatorPrecedence(p.current().Kind)
		if precedence == 0 || precedence <= parentPrecedence {
			break
		}

		operator := p.nextToken()
		right := p.parseExpression(precedence)
		left = &BinaryExpressionSyntax{Left: left, OperatorToken: operator, Right: right}
	}

	return left
}

// parsePrimaryExpression parses literals and parenthesized expressions
func (p *Parser) parsePrimaryExpression() ExpressionSyntax {
	switch p.current().Kind {
	case OpenParenthesisToken:
		open := p.nextToken()
		expression := p.parseExpression(0)
		closing := p.matchToken(CloseParenthesisToken)
		return &ParenthesizedExpressionSyntax{
			OpenParenthesisToken:  open,
			Expression:            expression,
			CloseParenthesisToken: closing,
		}

	case TrueKeyword, FalseKeyword:
		keyword := p.nextToken()
		return &LiteralExpressionSyntax{LiteralToken: keyword, Value: keyword.Kind == TrueKeyword}

	default:
		number := p.matchToken(NumberToken)
		return &LiteralExpressionSyntax{LiteralToken: number, Value: number.Value}
	}
}
