package analysis_test

import (
	"testing"

	"github.com/dangerclosesec/biza/analysis"
	"github.com/dangerclosesec/biza/analysis/binding"
	"github.com/dangerclosesec/biza/analysis/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilationEvaluate(t *testing.T) {
	result := analysis.NewCompilation("(3 + 4) * 2 == 14").Evaluate()

	require.True(t, result.Succeeded())
	assert.Equal(t, true, result.Value)
	assert.Equal(t, binding.TypeBool, result.Type)
}

func TestCompilationSkipsEvaluationOnDiagnostics(t *testing.T) {
	result := analysis.NewCompilation("1 + true").Evaluate()

	assert.False(t, result.Succeeded())
	assert.Nil(t, result.Value)
	assert.Equal(t, []string{"Binary operator + is not defined for types int32 and bool"},
		diagnostic.Messages(result.Diagnostics))
}

func TestCompilationSyntaxDiagnosticsComeFirst(t *testing.T) {
	result := analysis.NewCompilation("!5 + @").Bind()

	assert.Equal(t, []string{
		"Bad character input: '@'.",
		"Unexpected token <EndOfFileToken>, expected <NumberToken>.",
		"Unary operator ! is not defined for type int32.",
	}, diagnostic.Messages(result.Diagnostics))
}

func TestCompilationInvalidNumber(t *testing.T) {
	result := analysis.NewCompilation("9999999999").Evaluate()

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "The number 9999999999 isn't valid int32.", result.Diagnostics[0].Message)
}

func TestCompilationDivisionByZero(t *testing.T) {
	result := analysis.NewCompilation("10 / 0").Evaluate()

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "Evaluation failed: division by zero.", result.Diagnostics[0].Message)
	assert.Equal(t, 6, result.Diagnostics[0].Span.Length)
}
