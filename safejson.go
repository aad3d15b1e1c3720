// Package safejson provides null-safe, chainable navigation and typed
// extraction over a JSON value tree.
//
// A Node is an immutable handle that either wraps a value or is the
// missing node. Navigation is total: looking up an absent key, an out of
// range index, or a member of a scalar never fails: it yields the
// missing node, and every further lookup on that stays missing. Typed
// getters return a comma-ok pair instead of an error, so a whole chain
// reads as one expression:
//
//	port, ok := safejson.Parse(text).Get("server").Get("ports").Index(0).GetInt()
//
// Nodes never copy the underlying tree. Mutation through Put, Add and
// PutIndex writes to the shared tree, so every node wrapping the same
// object or array observes it.
package safejson

import (
	"github.com/nullsafe/safejson/ir"
)

// Node is a handle into a JSON tree location. The zero value is the
// missing node; use the constructors rather than constructing Nodes
// directly.
type Node struct {
	val     ir.Value
	present bool
}

// missing is the one node every failed lookup returns. It carries no
// diagnostic.
var missing = &Node{}

// Parse wraps the root of the JSON document in text. Blank input and
// malformed input yield the missing node; there is no error to inspect.
// Scalar roots are valid: Parse(`"x"`) is a present string node.
func Parse(text string) *Node {
	v, err := ir.Parse(text)
	if err != nil {
		return missing
	}
	return &Node{val: v, present: true}
}

// Wrap wraps any value as a present node. A nil value yields the
// missing node.
func Wrap(v ir.Value) *Node {
	if v == nil {
		return missing
	}
	return &Node{val: v, present: true}
}

// WrapObject wraps an existing object. A nil object yields the missing
// node.
func WrapObject(o *ir.Object) *Node {
	if o == nil {
		return missing
	}
	return &Node{val: o, present: true}
}

// WrapArray wraps an existing array. A nil array yields the missing
// node.
func WrapArray(a *ir.Array) *Node {
	if a == nil {
		return missing
	}
	return &Node{val: a, present: true}
}

// EmptyObject returns a present node wrapping a new empty object.
func EmptyObject() *Node {
	return &Node{val: ir.NewObject(), present: true}
}

// EmptyArray returns a present node wrapping a new empty array.
func EmptyArray() *Node {
	return &Node{val: ir.NewArray(), present: true}
}

// Exists reports whether a path resolved to here, even when the value
// is null. Get("a") on {"a": null} exists; Get("b") does not.
func (n *Node) Exists() bool {
	_, ok := n.payload()
	return ok
}

// payload returns the wrapped value when the node is present. A nil
// receiver counts as missing.
func (n *Node) payload() (ir.Value, bool) {
	if n == nil || !n.present {
		return nil, false
	}
	return n.val, true
}

// nonNull returns the wrapped value when the node is present and the
// value is not the null literal.
func (n *Node) nonNull() (ir.Value, bool) {
	v, ok := n.payload()
	if !ok || v.Type() == ir.NullType {
		return nil, false
	}
	return v, true
}

func (n *Node) objectPayload() (*ir.Object, bool) {
	v, ok := n.payload()
	if !ok {
		return nil, false
	}
	o, ok := v.(*ir.Object)
	return o, ok
}

func (n *Node) arrayPayload() (*ir.Array, bool) {
	v, ok := n.payload()
	if !ok {
		return nil, false
	}
	a, ok := v.(*ir.Array)
	return a, ok
}
