// Package evaluate computes the value of a bound expression tree.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/dangerclosesec/biza/analysis/binding"
)

// ErrDivisionByZero is returned when an int32 division has a zero divisor
var ErrDivisionByZero = errors.New("division by zero")

// Evaluator walks a bound tree. Callers should only evaluate trees whose
// binding produced no diagnostics.
type Evaluator struct {
	root binding.Expression
}

// New creates an Evaluator for root
func New(root binding.Expression) *Evaluator {
	return &Evaluator{root: root}
}

// Evaluate returns the value of the tree as an int32 or a bool
func (e *Evaluator) Evaluate() (any, error) {
	return e.evaluateExpression(e.root)
}

func (e *Evaluator) evaluateExpression(node binding.Expression) (any, error) {
	switch n := node.(type) {
	case *binding.LiteralExpression:
		return n.Value, nil
	case *binding.UnaryExpression:
		return e.evaluateUnaryExpression(n)
	case *binding.BinaryExpression:
		return e.evaluateBinaryExpression(n)
	default:
		panic(fmt.Sprintf("unexpected bound node %T", node))
	}
}

func (e *Evaluator) evaluateUnaryExpression(n *binding.UnaryExpression) (any, error) {
	operand, err := e.evaluateExpression(n.Operand)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case binding.Identity:
		return operand.(int32), nil
	case binding.Negation:
		return -operand.(int32), nil
	case binding.LogicalNegation:
		return !operand.(bool), nil
	default:
		panic(fmt.Sprintf("unexpected unary operator %v", n.Op.Kind))
	}
}

func (e *Evaluator) evaluateBinaryExpression(n *binding.BinaryExpression) (any, error) {
	left, err := e.evaluateExpression(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluateExpression(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case binding.Addition:
		return left.(int32) + right.(int32), nil
	case binding.Subtraction:
		return left.(int32) - right.(int32), nil
	case binding.Multiplication:
		return left.(int32) * right.(int32), nil
	case binding.Division:
		divisor := right.(int32)
		if divisor == 0 {
			return nil, ErrDivisionByZero
		}
		return left.(int32) / divisor, nil
	case binding.LogicalAnd:
		return left.(bool) && right.(bool), nil
	case binding.LogicalOr:
		return left.(bool) || right.(bool), nil
	case binding.Equality:
		return left == right, nil
	case binding.Inequality:
		return left != right, nil
	default:
		panic(fmt.Sprintf("unexpected binary operator %v", n.Op.Kind))
	}
}
