package evaluate_test

import (
	"math"
	"testing"

	"github.com/dangerclosesec/biza/analysis/binding"
	"github.com/dangerclosesec/biza/analysis/evaluate"
	"github.com/dangerclosesec/biza/analysis/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluateSource(t *testing.T, source string) (any, error) {
	t.Helper()
	tree := syntax.ParseSyntaxTree(source)
	require.Empty(t, tree.Diagnostics)

	b := binding.NewBinder()
	root := b.BindExpression(tree.Root)
	require.Zero(t, b.Diagnostics().Len())

	return evaluate.New(root).Evaluate()
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		source   string
		expected any
	}{
		{"1", int32(1)},
		{"+1", int32(1)},
		{"-1", int32(-1)},
		{"14 + 12", int32(26)},
		{"12 - 3", int32(9)},
		{"4 * 2", int32(8)},
		{"9 / 3", int32(3)},
		{"7 / 2", int32(3)},
		{"(10)", int32(10)},
		{"1 + 2 * 3", int32(7)},
		{"(1 + 2) * 3", int32(9)},
		{"12 == 3", false},
		{"3 == 3", true},
		{"12 != 3", true},
		{"3 != 3", false},
		{"false == false", true},
		{"true == false", false},
		{"false != false", false},
		{"true != false", true},
		{"true", true},
		{"false", false},
		{"!true", false},
		{"!false", true},
		{"!true == false", true},
		{"true && false", false},
		{"true || false", true},
		{"false || false", false},
		{"1 + 2 == 3 && !false", true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			value, err := evaluateSource(t, tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := evaluateSource(t, "1 / (2 - 2)")
	assert.ErrorIs(t, err, evaluate.ErrDivisionByZero)
}

func TestEvaluateWrapsOnOverflow(t *testing.T) {
	value, err := evaluateSource(t, "2147483647 + 1")
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), value)
}
