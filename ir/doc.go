// Package ir provides the value tree JSON documents are represented as.
//
// # Overview
//
// A document is a tree of Value nodes. Value is a closed tagged union:
// the leaf types Null, Bool, Int, Float, Decimal and String are
// immutable value types, while *Object and *Array are mutable
// containers shared by reference. The tree carries no position
// information from input documents, making it purely semantic.
//
// # Numbers
//
// Numeric literals classify on parse. An integer literal that fits an
// int64 becomes Int; every other literal (fractions, exponent forms,
// integers beyond 64 bits) becomes Decimal and keeps the full
// precision of its text via an arbitrary-precision decimal. Float
// exists for values that enter the tree as Go floats rather than text.
//
// # Creating values
//
// Use the constructor functions:
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	obj := ir.NewObject()
//	obj.Set("key", s)
//
// FromAny converts Go-style representations (map[string]any, []any,
// scalars) and ToAny converts back.
//
// # Text
//
// Parse decodes one JSON document; Write and Text serialize a Value
// with a configurable indent. A parsed document's objects carry their
// keys in sorted order, so rendering is deterministic.
package ir
