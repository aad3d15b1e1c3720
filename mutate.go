package safejson

import (
	"github.com/nullsafe/safejson/ir"
)

// Put sets key on the underlying object and returns the node for
// chaining. It is a silent no-op unless the node wraps an object.
func (n *Node) Put(key string, v any) *Node {
	if obj, ok := n.objectPayload(); ok {
		obj.Set(key, toValue(v))
	}
	return n
}

// Add appends to the underlying array and returns the node for
// chaining. It is a silent no-op unless the node wraps an array.
func (n *Node) Add(v any) *Node {
	if arr, ok := n.arrayPayload(); ok {
		arr.Append(toValue(v))
	}
	return n
}

// PutIndex replaces the element at i and returns the node for chaining.
// It is a silent no-op unless the node wraps an array and 0 <= i < Len;
// it never extends the array.
func (n *Node) PutIndex(i int, v any) *Node {
	if arr, ok := n.arrayPayload(); ok {
		arr.SetAt(i, toValue(v))
	}
	return n
}

// toValue converts a caller-supplied value for storage. A *Node
// unwraps to its payload, or to null when missing; Go nil becomes
// null; anything the tree cannot represent becomes null rather than
// failing.
func toValue(v any) ir.Value {
	switch x := v.(type) {
	case nil:
		return ir.NullValue
	case *Node:
		if p, ok := x.payload(); ok {
			return p
		}
		return ir.NullValue
	case ir.Value:
		return x
	default:
		iv, err := ir.FromAny(x)
		if err != nil {
			return ir.NullValue
		}
		return iv
	}
}
