package binding

// Expression is the closed set of bound expression nodes. Every node carries
// a resolved type.
type Expression interface {
	Type() Type
	boundExpression()
}

// LiteralExpression is a constant int32 or bool
type LiteralExpression struct {
	Value any
	typ   Type
}

// NewLiteralExpression binds a constant. A value that is neither int32 nor
// bool becomes int32 zero.
func NewLiteralExpression(value any) *LiteralExpression {
	t, ok := TypeOf(value)
	if !ok {
		value, t = int32(0), TypeInt
	}
	return &LiteralExpression{Value: value, typ: t}
}

func (e *LiteralExpression) Type() Type { return e.typ }

// UnaryExpression is a resolved unary operator applied to its operand
type UnaryExpression struct {
	Op      UnaryOperator
	Operand Expression
}

func (e *UnaryExpression) Type() Type { return e.Op.Type }

// BinaryExpression is a resolved binary operator applied to two operands
type BinaryExpression struct {
	Left  Expression
	Op    BinaryOperator
	Right Expression
}

func (e *BinaryExpression) Type() Type { return e.Op.Type }

func (*LiteralExpression) boundExpression() {}
func (*UnaryExpression) boundExpression()   {}
func (*BinaryExpression) boundExpression()  {}
