// File: syntax/kind.go
package syntax

import "strconv"

// Kind identifies a token or a syntax node
type Kind int

// Token kinds
const (
	BadToken Kind = iota
	EndOfFileToken
	WhitespaceToken
	NumberToken
	IdentifierToken

	// Operators and punctuation
	PlusToken               // +
	MinusToken              // -
	StarToken               // *
	SlashToken              // /
	BangToken               // !
	AmpersandAmpersandToken // &&
	PipePipeToken           // ||
	EqualsEqualsToken       // ==
	BangEqualsToken         // !=
	EqualsToken             // =
	OpenParenthesisToken    // (
	CloseParenthesisToken   // )

	// Keywords
	TrueKeyword
	FalseKeyword

	// Nodes
	LiteralExpression
	UnaryExpression
	BinaryExpression
	ParenthesizedExpression
)

var kindNames = map[Kind]string{
	BadToken:                "BadToken",
	EndOfFileToken:          "EndOfFileToken",
	WhitespaceToken:         "WhitespaceToken",
	NumberToken:             "NumberToken",
	IdentifierToken:         "IdentifierToken",
	PlusToken:               "PlusToken",
	MinusToken:              "MinusToken",
	StarToken:               "StarToken",
	SlashToken:              "SlashToken",
	BangToken:               "BangToken",
	AmpersandAmpersandToken: "AmpersandAmpersandToken",
	PipePipeToken:           "PipePipeToken",
	EqualsEqualsToken:       "EqualsEqualsToken",
	BangEqualsToken:         "BangEqualsToken",
	EqualsToken:             "EqualsToken",
	OpenParenthesisToken:    "OpenParenthesisToken",
	CloseParenthesisToken:   "CloseParenthesisToken",
	TrueKeyword:             "TrueKeyword",
	FalseKeyword:            "FalseKeyword",
	LiteralExpression:       "LiteralExpression",
	UnaryExpression:         "UnaryExpression",
	BinaryExpression:        "BinaryExpression",
	ParenthesizedExpression: "ParenthesizedExpression",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText renders the kind by name in JSON output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
