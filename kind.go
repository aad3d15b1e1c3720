package safejson

import (
	"math"

	"github.com/nullsafe/safejson/ir"
)

// IsNull reports whether there is no usable value here: the node is
// missing or wraps the null literal. Use Exists to tell the two apart.
func (n *Node) IsNull() bool {
	v, ok := n.payload()
	return !ok || v.Type() == ir.NullType
}

// IsObject reports whether the node wraps an object.
func (n *Node) IsObject() bool {
	_, ok := n.objectPayload()
	return ok
}

// IsArray reports whether the node wraps an array.
func (n *Node) IsArray() bool {
	_, ok := n.arrayPayload()
	return ok
}

// IsString reports whether the node wraps a string.
func (n *Node) IsString() bool {
	v, ok := n.payload()
	return ok && v.Type() == ir.StringType
}

// IsBool reports whether the node wraps a boolean.
func (n *Node) IsBool() bool {
	v, ok := n.payload()
	return ok && v.Type() == ir.BoolType
}

// IsNumber reports whether the node wraps any numeric value.
func (n *Node) IsNumber() bool {
	v, ok := n.payload()
	return ok && v.Type().IsNumber()
}

// IsInt reports whether the node wraps an integer in 32-bit range.
func (n *Node) IsInt() bool {
	v, ok := n.payload()
	if !ok {
		return false
	}
	i, ok := v.(ir.Int)
	return ok && i >= math.MinInt32 && i <= math.MaxInt32
}

// IsInt64 reports whether the node wraps an integer.
func (n *Node) IsInt64() bool {
	v, ok := n.payload()
	return ok && v.Type() == ir.IntType
}

// IsFloat reports whether the node wraps a non-integer number: a float
// or an arbitrary-precision decimal.
func (n *Node) IsFloat() bool {
	v, ok := n.payload()
	if !ok {
		return false
	}
	t := v.Type()
	return t == ir.FloatType || t == ir.DecimalType
}

// IsDecimal reports whether the node wraps an arbitrary-precision
// decimal.
func (n *Node) IsDecimal() bool {
	v, ok := n.payload()
	return ok && v.Type() == ir.DecimalType
}

// IsTime reports whether GetTime would succeed with these layouts.
func (n *Node) IsTime(layouts ...string) bool {
	_, ok := n.GetTime(layouts...)
	return ok
}
