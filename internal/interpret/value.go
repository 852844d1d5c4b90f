package interpret

import (
	"math"
	"strconv"
)

type ValueType int

const (
	NIL_VALUE ValueType = iota
	BOOLEAN_VALUE
	NUMBER_VALUE
	STRING_VALUE
)

func (t ValueType) String() string {
	switch t {
	case NIL_VALUE:
		return "nil"
	case BOOLEAN_VALUE:
		return "boolean"
	case NUMBER_VALUE:
		return "number"
	case STRING_VALUE:
		return "string"
	default:
		return "unknown"
	}
}

// Value is an immutable runtime scalar. The zero Value is nil.
type Value struct {
	Type ValueType

	boolean bool
	number  float64
	str     string
}

func NilValue() Value {
	return Value{}
}

func BooleanValue(b bool) Value {
	return Value{Type: BOOLEAN_VALUE, boolean: b}
}

func NumberValue(n float64) Value {
	return Value{Type: NUMBER_VALUE, number: n}
}

func StringValue(s string) Value {
	return Value{Type: STRING_VALUE, str: s}
}

func (v Value) Boolean() (bool, bool) {
	return v.boolean, v.Type == BOOLEAN_VALUE
}

func (v Value) Number() (float64, bool) {
	return v.number, v.Type == NUMBER_VALUE
}

func (v Value) Str() (string, bool) {
	return v.str, v.Type == STRING_VALUE
}

// IsTruthy treats nil and false as false and everything else, including 0 and
// the empty string, as true.
func (v Value) IsTruthy() bool {
	switch v.Type {
	case NIL_VALUE:
		return false
	case BOOLEAN_VALUE:
		return v.boolean
	default:
		return true
	}
}

// Equal never coerces: values of different types are unequal. NaN is not
// equal to itself.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case NIL_VALUE:
		return true
	case BOOLEAN_VALUE:
		return v.boolean == other.boolean
	case NUMBER_VALUE:
		return v.number == other.number
	case STRING_VALUE:
		return v.str == other.str
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Type {
	case BOOLEAN_VALUE:
		return strconv.FormatBool(v.boolean)
	case NUMBER_VALUE:
		return formatNumber(v.number)
	case STRING_VALUE:
		return v.str
	default:
		return "nil"
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}
