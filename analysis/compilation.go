// Package analysis ties the lexer, parser, binder and evaluator together.
package analysis

import (
	"fmt"

	"github.com/dangerclosesec/biza/analysis/binding"
	"github.com/dangerclosesec/biza/analysis/diagnostic"
	"github.com/dangerclosesec/biza/analysis/evaluate"
	"github.com/dangerclosesec/biza/analysis/syntax"
	"github.com/dangerclosesec/biza/analysis/text"
)

// Compilation binds and evaluates one syntax tree
type Compilation struct {
	Source     string
	SyntaxTree *syntax.SyntaxTree
}

// EvaluationResult is the outcome of Evaluate. Value and Type are only set
// when Diagnostics is empty.
type EvaluationResult struct {
	Diagnostics []diagnostic.Diagnostic
	Value       any
	Type        binding.Type
}

// Succeeded reports whether evaluation produced a value
func (r EvaluationResult) Succeeded() bool {
	return len(r.Diagnostics) == 0
}

// BindResult is a bound tree with the syntax and binding diagnostics that
// led to it
type BindResult struct {
	Root        binding.Expression
	Diagnostics []diagnostic.Diagnostic
}

// NewCompilation parses source and prepares it for binding
func NewCompilation(source string) *Compilation {
	return &Compilation{
		Source:     source,
		SyntaxTree: syntax.ParseSyntaxTree(source),
	}
}

// Bind binds the syntax tree with a fresh Binder. Syntax diagnostics come
// first, then binding diagnostics.
func (c *Compilation) Bind() BindResult {
	binder := binding.NewBinder()
	root := binder.BindExpression(c.SyntaxTree.Root)

	var bag diagnostic.Bag
	bag.AddRange(c.SyntaxTree.Diagnostics)
	bag.AddRange(binder.Diagnostics().All())

	return BindResult{Root: root, Diagnostics: bag.All()}
}

// Evaluate binds the tree and, if there were no diagnostics, evaluates it
func (c *Compilation) Evaluate() EvaluationResult {
	bound := c.Bind()
	if len(bound.Diagnostics) > 0 {
		return EvaluationResult{Diagnostics: bound.Diagnostics}
	}

	value, err := evaluate.New(bound.Root).Evaluate()
	if err != nil {
		var bag diagnostic.Bag
		bag.Report(text.NewSpan(0, len(c.Source)), fmt.Sprintf("Evaluation failed: %v.", err))
		return EvaluationResult{Diagnostics: bag.All()}
	}

	return EvaluationResult{Value: value, Type: bound.Root.Type()}
}
