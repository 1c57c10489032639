package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorPrecedenceOrdering(t *testing.T) {
	assert.Greater(t, BinaryOperatorPrecedence(StarToken), BinaryOperatorPrecedence(PlusToken))
	assert.Greater(t, BinaryOperatorPrecedence(PlusToken), BinaryOperatorPrecedence(EqualsEqualsToken))
	assert.Greater(t, BinaryOperatorPrecedence(EqualsEqualsToken), BinaryOperatorPrecedence(AmpersandAmpersandToken))
	assert.Greater(t, BinaryOperatorPrecedence(AmpersandAmpersandToken), BinaryOperatorPrecedence(PipePipeToken))
	assert.Greater(t, UnaryOperatorPrecedence(MinusToken), BinaryOperatorPrecedence(PlusToken))
}

func TestOperatorPrecedenceValues(t *testing.T) {
	binary := map[Kind]int{
		StarToken:               5,
		SlashToken:              5,
		PlusToken:               4,
		MinusToken:              4,
		EqualsEqualsToken:       3,
		BangEqualsToken:         3,
		AmpersandAmpersandToken: 2,
		PipePipeToken:           1,
	}
	unary := map[Kind]int{
		PlusToken:  6,
		MinusToken: 6,
		BangToken:  6,
	}

	for kind := BadToken; kind <= ParenthesizedExpression; kind++ {
		assert.Equal(t, binary[kind], BinaryOperatorPrecedence(kind), "binary %s", kind)
		assert.Equal(t, unary[kind], UnaryOperatorPrecedence(kind), "unary %s", kind)
	}
}

func TestKeywordKind(t *testing.T) {
	assert.Equal(t, TrueKeyword, KeywordKind("true"))
	assert.Equal(t, FalseKeyword, KeywordKind("false"))
	assert.Equal(t, IdentifierToken, KeywordKind("TRUE"))
	assert.Equal(t, IdentifierToken, KeywordKind("tru"))
	assert.Equal(t, IdentifierToken, KeywordKind("falsey"))
	assert.Equal(t, IdentifierToken, KeywordKind(""))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "PlusToken", PlusToken.String())
	assert.Equal(t, "Kind(999)", Kind(999).String())
}
