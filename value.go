package safejson

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd"

	"github.com/nullsafe/safejson/ir"
)

// GetString returns the value when it is inherently a string. Numbers
// and booleans do not coerce; use AsString for display rendering.
func (n *Node) GetString() (string, bool) {
	v, ok := n.nonNull()
	if !ok {
		return "", false
	}
	s, ok := v.(ir.String)
	return string(s), ok
}

// AsString renders any non-null value as text: strings unquoted,
// scalars in their literal form, objects and arrays as compact JSON.
func (n *Node) AsString() (string, bool) {
	v, ok := n.payload()
	if !ok || v.Type() == ir.NullType {
		return "", false
	}
	if s, ok := v.(ir.String); ok {
		return string(s), true
	}
	return ir.Text(v, 0), true
}

// GetInt returns the value as an int in 32-bit range. Numeric payloads
// truncate toward zero; out-of-range values fail rather than wrap.
// String payloads parse as exact decimals and must be integral: "42"
// converts, "3.5" does not.
func (n *Node) GetInt() (int, bool) {
	i, ok := n.GetInt64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int(i), true
}

// GetInt64 is GetInt over the full 64-bit range.
func (n *Node) GetInt64() (int64, bool) {
	v, ok := n.nonNull()
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case ir.Int:
		return int64(x), true
	case ir.Float, ir.Decimal:
		dec, _ := ir.AsDecimal(v)
		if dec == nil {
			return 0, false
		}
		return decimalToInt64(dec, false)
	case ir.String:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i, true
		}
		dec := apd.Decimal{}
		if _, _, err := dec.SetString(string(x)); err != nil {
			return 0, false
		}
		return decimalToInt64(&dec, true)
	}
	return 0, false
}

// decimalToInt64 narrows d, truncating toward zero. With exact set,
// a fractional part fails instead of truncating.
func decimalToInt64(d *apd.Decimal, exact bool) (int64, bool) {
	integ, frac := &apd.Decimal{}, &apd.Decimal{}
	d.Modf(integ, frac)
	if exact && frac.Sign() != 0 {
		return 0, false
	}
	i, err := integ.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// GetFloat64 converts numeric payloads to float64 and parses string
// payloads with standard floating-point syntax. Decimals beyond
// float64 range saturate to ±Inf; strings spelling NaN or Inf fail,
// since no JSON number produces them.
func (n *Node) GetFloat64() (float64, bool) {
	v, ok := n.nonNull()
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case ir.Int:
		return float64(x), true
	case ir.Float:
		return float64(x), true
	case ir.Decimal:
		f, err := strconv.ParseFloat(x.Dec().String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	case ir.String:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// GetDecimal returns the value as an arbitrary-precision decimal.
// String payloads parse as decimal text; numeric payloads convert via
// their canonical text form, so a float 0.1 becomes exactly 0.1. The
// returned decimal is the caller's to mutate.
func (n *Node) GetDecimal() (*apd.Decimal, bool) {
	v, ok := n.nonNull()
	if !ok {
		return nil, false
	}
	if s, ok := v.(ir.String); ok {
		dec := apd.Decimal{}
		if _, _, err := dec.SetString(string(s)); err != nil {
			return nil, false
		}
		return &dec, true
	}
	return ir.AsDecimal(v)
}

// GetBool returns boolean payloads as-is and matches string payloads
// case-insensitively against "true" and "false".
func (n *Node) GetBool() (bool, bool) {
	v, ok := n.nonNull()
	if !ok {
		return false, false
	}
	switch x := v.(type) {
	case ir.Bool:
		return bool(x), true
	case ir.String:
		switch strings.ToLower(string(x)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// GetTime parses a string payload as a timestamp. Caller layouts are
// tried first in the order given, then the built-in layouts; the first
// layout that parses the whole string wins.
func (n *Node) GetTime(layouts ...string) (time.Time, bool) {
	v, ok := n.nonNull()
	if !ok {
		return time.Time{}, false
	}
	s, ok := v.(ir.String)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, string(s)); err == nil {
			return ts, true
		}
	}
	for _, layout := range defaultTimeLayouts {
		if ts, err := time.Parse(layout, string(s)); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// GetObject returns the live underlying object. Mutations through it
// are visible to every node sharing the tree.
func (n *Node) GetObject() (*ir.Object, bool) {
	v, ok := n.nonNull()
	if !ok {
		return nil, false
	}
	o, ok := v.(*ir.Object)
	return o, ok
}

// GetArray returns the live underlying array. Mutations through it are
// visible to every node sharing the tree.
func (n *Node) GetArray() (*ir.Array, bool) {
	v, ok := n.nonNull()
	if !ok {
		return nil, false
	}
	a, ok := v.(*ir.Array)
	return a, ok
}

// GetValue returns the raw payload, the untyped escape hatch. Missing
// and null both yield no value.
func (n *Node) GetValue() (ir.Value, bool) {
	return n.nonNull()
}
