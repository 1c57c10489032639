// File: syntax/facts.go
package syntax

// UnaryOperatorPrecedence returns the binding strength of kind as a prefix
// operator, or 0 when kind is not a unary operator
func UnaryOperatorPrecedence(kind Kind) int {
	switch kind {
	case PlusToken, MinusToken, BangToken:
		return 6
	default:
		return 0
	}
}

// BinaryOperatorPrecedence returns the binding strength of kind as an infix
// operator, or 0 when kind is not a binary operator. The parser depends on
// these exact values.
func BinaryOperatorPrecedence(kind Kind) int {
	switch kind {
	case StarToken, SlashToken:
		return 5
	case PlusToken, MinusToken:
		return 4
	case EqualsEqualsToken, BangEqualsToken:
		return 3
	case AmpersandAmpersandToken:
		return 2
	case PipePipeToken:
		return 1
	default:
		return 0
	}
}

// Keywords maps keyword strings to token kinds
var Keywords = map[string]Kind{
	"true":  TrueKeyword,
	"false": FalseKeyword,
}

// KeywordKind classifies a run of letters. Matching is exact and case-sensitive.
func KeywordKind(ident string) Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return IdentifierToken
}

// Text returns the fixed lexeme for operator, punctuation and keyword kinds,
// and "" for kinds whose text varies
func (k Kind) Text() string {
	switch k {
	case PlusToken:
		return "+"
	case MinusToken:
		return "-"
	case StarToken:
		return "*"
	case SlashToken:
		return "/"
	case BangToken:
		return "!"
	case AmpersandAmpersandToken:
		return "&&"
	case PipePipeToken:
		return "||"
	case EqualsEqualsToken:
		return "=="
	case BangEqualsToken:
		return "!="
	case EqualsToken:
		return "="
	case OpenParenthesisToken:
		return "("
	case CloseParenthesisToken:
		return ")"
	case TrueKeyword:
		return "true"
	case FalseKeyword:
		return "false"
	default:
		return ""
	}
}
