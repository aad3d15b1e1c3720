package safejson

import (
	"github.com/nullsafe/safejson/ir"
)

// Size is the entry count for an object, the element count for an
// array, and 0 for everything else.
func (n *Node) Size() int {
	v, ok := n.payload()
	if !ok {
		return 0
	}
	switch x := v.(type) {
	case *ir.Object:
		return x.Len()
	case *ir.Array:
		return x.Len()
	}
	return 0
}

// IsEmpty reports whether there is nothing here: the node is missing or
// null, or wraps a zero-length object or array. A non-null scalar is
// never empty, the empty string included.
func (n *Node) IsEmpty() bool {
	v, ok := n.payload()
	if !ok {
		return true
	}
	switch x := v.(type) {
	case ir.Null:
		return true
	case *ir.Object:
		return x.Len() == 0
	case *ir.Array:
		return x.Len() == 0
	}
	return false
}

// ToJSON renders the value as one JSON document with indent spaces per
// nesting level; 0 is compact. Missing and null both render as the
// literal null.
func (n *Node) ToJSON(indent int) string {
	v, ok := n.nonNull()
	if !ok {
		return "null"
	}
	return ir.Text(v, indent)
}

// String is a debug form, not JSON: SafeJson[MISSING], SafeJson[JSON_NULL],
// or SafeJson[v] with v rendered compactly.
func (n *Node) String() string {
	v, ok := n.payload()
	if !ok {
		return "SafeJson[MISSING]"
	}
	if v.Type() == ir.NullType {
		return "SafeJson[JSON_NULL]"
	}
	if s, ok := v.(ir.String); ok {
		return "SafeJson[" + string(s) + "]"
	}
	return "SafeJson[" + ir.Text(v, 0) + "]"
}

// MarshalJSON renders the node compactly; missing and null marshal as
// null. It never fails.
func (n *Node) MarshalJSON() ([]byte, error) {
	return []byte(n.ToJSON(0)), nil
}
