package binding

import (
	"testing"

	"github.com/dangerclosesec/biza/analysis/syntax"
	"github.com/dangerclosesec/biza/analysis/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, source string) (Expression, *Binder) {
	t.Helper()
	tree := syntax.ParseSyntaxTree(source)
	require.Empty(t, tree.Diagnostics, "source %q", source)

	b := NewBinder()
	return b.BindExpression(tree.Root), b
}

func TestBindLiteral(t *testing.T) {
	bound, b := bind(t, "7")
	lit, ok := bound.(*LiteralExpression)
	require.True(t, ok)
	assert.Equal(t, int32(7), lit.Value)
	assert.Equal(t, TypeInt, lit.Type())
	assert.Zero(t, b.Diagnostics().Len())

	bound, _ = bind(t, "false")
	assert.Equal(t, TypeBool, bound.Type())
	assert.Equal(t, false, bound.(*LiteralExpression).Value)
}

func TestBindLiteralWithoutValueDefaultsToZero(t *testing.T) {
	b := NewBinder()
	bound := b.BindExpression(&syntax.LiteralExpressionSyntax{
		LiteralToken: syntax.Token{Kind: syntax.NumberToken},
	})

	lit, ok := bound.(*LiteralExpression)
	require.True(t, ok)
	assert.Equal(t, int32(0), lit.Value)
	assert.Equal(t, TypeInt, lit.Type())
	assert.Zero(t, b.Diagnostics().Len())
}

func TestBindUnaryAndBinary(t *testing.T) {
	bound, b := bind(t, "-1 + 2 * 3 == 5")
	assert.Zero(t, b.Diagnostics().Len())

	eq, ok := bound.(*BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, Equality, eq.Op.Kind)
	assert.Equal(t, TypeBool, eq.Type())

	add, ok := eq.Left.(*BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, Addition, add.Op.Kind)
	assert.Equal(t, TypeInt, add.Type())

	neg, ok := add.Left.(*UnaryExpression)
	require.True(t, ok)
	assert.Equal(t, Negation, neg.Op.Kind)
}

func TestBindParenthesizedUnwraps(t *testing.T) {
	bound, b := bind(t, "(true)")
	assert.Zero(t, b.Diagnostics().Len())
	assert.Equal(t, NewLiteralExpression(true), bound)
}

func TestBindUndefinedBinaryOperatorKeepsLeft(t *testing.T) {
	bound, b := bind(t, "1 + true")

	diagnostics := b.Diagnostics().All()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "Binary operator + is not defined for types int32 and bool", diagnostics[0].Message)
	assert.Equal(t, text.NewSpan(2, 1), diagnostics[0].Span)

	assert.Equal(t, NewLiteralExpression(int32(1)), bound)
}

func TestBindUndefinedUnaryOperatorKeepsOperand(t *testing.T) {
	bound, b := bind(t, "!5")

	diagnostics := b.Diagnostics().All()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "Unary operator ! is not defined for type int32.", diagnostics[0].Message)
	assert.Equal(t, text.NewSpan(0, 1), diagnostics[0].Span)

	assert.Equal(t, NewLiteralExpression(int32(5)), bound)
}

func TestBindNoImplicitConversions(t *testing.T) {
	sources := []string{
		"true + false",
		"1 && 2",
		"1 || true",
		"1 == true",
		"false != 0",
		"-true",
		"+false",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			_, b := bind(t, source)
			assert.Equal(t, 1, b.Diagnostics().Len())
		})
	}
}

func TestBindDiagnosticsOrderLeftBeforeRight(t *testing.T) {
	bound, b := bind(t, "(!1) * (-true)")

	messages := []string{}
	for _, d := range b.Diagnostics().All() {
		messages = append(messages, d.Message)
	}
	assert.Equal(t, []string{
		"Unary operator ! is not defined for type int32.",
		"Unary operator - is not defined for type bool.",
		"Binary operator * is not defined for types int32 and bool",
	}, messages)

	assert.Equal(t, NewLiteralExpression(int32(1)), bound)
}

func TestBindNestedRecoveryStillResolvesOuter(t *testing.T) {
	// 1 + true collapses to 1, so the outer == is bound as int32 == int32
	bound, b := bind(t, "(1 + true) == 1")

	assert.Equal(t, 1, b.Diagnostics().Len())
	eq, ok := bound.(*BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, Equality, eq.Op.Kind)
}

func TestBindNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "unexpected syntax <nil>", func() {
		NewBinder().BindExpression(nil)
	})
}
