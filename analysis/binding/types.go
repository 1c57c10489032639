package binding

import "fmt"

// Type is the closed set of value types an expression can have.
// There are no conversions between them.
type Type int

const (
	TypeInt Type = iota
	TypeBool
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int32"
	case TypeBool:
		return "bool"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// MarshalText renders the type by name in JSON output
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TypeOf returns the type of a literal value. ok is false for anything other
// than int32 or bool.
func TypeOf(value any) (t Type, ok bool) {
	switch value.(type) {
	case int32:
		return TypeInt, true
	case bool:
		return TypeBool, true
	default:
		return 0, false
	}
}
