package binding

import "github.com/dangerclosesec/biza/analysis/syntax"

// UnaryOperatorKind is the semantic flavor of a resolved unary operator
type UnaryOperatorKind int

const (
	Identity UnaryOperatorKind = iota
	Negation
	LogicalNegation
)

func (k UnaryOperatorKind) String() string {
	switch k {
	case Identity:
		return "Identity"
	case Negation:
		return "Negation"
	case LogicalNegation:
		return "LogicalNegation"
	default:
		return "UnaryOperatorKind(?)"
	}
}

// BinaryOperatorKind is the semantic flavor of a resolved binary operator
type BinaryOperatorKind int

const (
	Addition BinaryOperatorKind = iota
	Subtraction
	Multiplication
	Division
	LogicalAnd
	LogicalOr
	Equality
	Inequality
)

func (k BinaryOperatorKind) String() string {
	switch k {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	case LogicalAnd:
		return "LogicalAnd"
	case LogicalOr:
		return "LogicalOr"
	case Equality:
		return "Equality"
	case Inequality:
		return "Inequality"
	default:
		return "BinaryOperatorKind(?)"
	}
}

// UnaryOperator describes one valid (token, operand type) pairing
type UnaryOperator struct {
	SyntaxKind  syntax.Kind
	Kind        UnaryOperatorKind
	OperandType Type
	Type        Type
}

// BinaryOperator describes one valid (token, left type, right type) pairing
type BinaryOperator struct {
	SyntaxKind syntax.Kind
	Kind       BinaryOperatorKind
	LeftType   Type
	RightType  Type
	Type       Type
}

// The tables are never modified after initialization and may be read from
// any number of goroutines.
var (
	unaryOperators = []UnaryOperator{
		{SyntaxKind: syntax.BangToken, Kind: LogicalNegation, OperandType: TypeBool, Type: TypeBool},
		{SyntaxKind: syntax.PlusToken, Kind: Identity, OperandType: TypeInt, Type: TypeInt},
		{SyntaxKind: syntax.MinusToken, Kind: Negation, OperandType: TypeInt, Type: TypeInt},
	}

	binaryOperators = []BinaryOperator{
		arithmetic(syntax.PlusToken, Addition),
		arithmetic(syntax.MinusToken, Subtraction),
		arithmetic(syntax.StarToken, Multiplication),
		arithmetic(syntax.SlashToken, Division),

		sameType(syntax.EqualsEqualsToken, Equality, TypeInt),
		sameType(syntax.BangEqualsToken, Inequality, TypeInt),

		sameType(syntax.AmpersandAmpersandToken, LogicalAnd, TypeBool),
		sameType(syntax.PipePipeToken, LogicalOr, TypeBool),
		sameType(syntax.EqualsEqualsToken, Equality, TypeBool),
		sameType(syntax.BangEqualsToken, Inequality, TypeBool),
	}
)

func arithmetic(kind syntax.Kind, op BinaryOperatorKind) BinaryOperator {
	return BinaryOperator{SyntaxKind: kind, Kind: op, LeftType: TypeInt, RightType: TypeInt, Type: TypeInt}
}

// sameType builds a bool-valued operator over two operands of type t
func sameType(kind syntax.Kind, op BinaryOperatorKind, t Type) BinaryOperator {
	return BinaryOperator{SyntaxKind: kind, Kind: op, LeftType: t, RightType: t, Type: TypeBool}
}

// BindUnaryOperator finds the unary operator for kind applied to operandType.
// ok is false when no such operator exists. The descriptor is returned by
// value so the table cannot be modified through it.
func BindUnaryOperator(kind syntax.Kind, operandType Type) (op UnaryOperator, ok bool) {
	for _, u := range unaryOperators {
		if u.SyntaxKind == kind && u.OperandType == operandType {
			return u, true
		}
	}
	return UnaryOperator{}, false
}

// BindBinaryOperator finds the binary operator for kind applied to leftType
// and rightType. ok is false when no such operator exists.
func BindBinaryOperator(kind syntax.Kind, leftType, rightType Type) (op BinaryOperator, ok bool) {
	for _, b := range binaryOperators {
		if b.SyntaxKind == kind && b.LeftType == leftType && b.RightType == rightType {
			return b, true
		}
	}
	return BinaryOperator{}, false
}
