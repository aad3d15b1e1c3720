package ir

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd"
)

// Value is a single JSON value. The implementations are limited to the
// types in this package: Null, Bool, Int, Float, Decimal, String, *Array
// and *Object.
type Value interface {
	Type() Type

	isValue()
}

// Null is the JSON null literal. It is distinct from a Go nil Value,
// which this package never produces: an absent value is represented by
// callers, not by the tree.
type Null struct{}

// NullValue is JSON `null`.
var NullValue = Null{}

type Bool bool

type Int int64

type Float float64

// Decimal is a numeric value that is not exactly representable as an
// int64: fractions, exponent forms and integers beyond 64 bits. It
// carries the full precision of the source text.
type Decimal apd.Decimal

type String string

func (Null) Type() Type    { return NullType }
func (Bool) Type() Type    { return BoolType }
func (Int) Type() Type     { return IntType }
func (Float) Type() Type   { return FloatType }
func (Decimal) Type() Type { return DecimalType }
func (String) Type() Type  { return StringType }
func (*Array) Type() Type  { return ArrayType }
func (*Object) Type() Type { return ObjectType }

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Int) isValue()     {}
func (Float) isValue()   {}
func (Decimal) isValue() {}
func (String) isValue()  {}
func (*Array) isValue()  {}
func (*Object) isValue() {}

func FromString(v string) Value {
	return String(v)
}

func FromInt(v int64) Value {
	return Int(v)
}

func FromFloat(v float64) Value {
	return Float(v)
}

func FromBool(v bool) Value {
	return Bool(v)
}

// FromDecimal copies d into the tree. The source decimal stays owned by
// the caller.
func FromDecimal(d *apd.Decimal) Value {
	cp := apd.Decimal{}
	cp.Set(d)
	return Decimal(cp)
}

// Dec returns d as an apd.Decimal pointer. The pointee is shared with
// the tree; callers who mutate it must copy first.
func (d *Decimal) Dec() *apd.Decimal {
	return (*apd.Decimal)(d)
}

// AsDecimal converts any numeric value to a fresh arbitrary-precision
// decimal via its canonical text form. It returns false for
// non-numeric values.
func AsDecimal(v Value) (*apd.Decimal, bool) {
	switch n := v.(type) {
	case Int:
		dec := apd.Decimal{}
		dec.SetCoefficient(int64(n))
		return &dec, true
	case Float:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		dec := apd.Decimal{}
		// Text form, not the binary expansion: 0.1 stays 0.1.
		if _, _, err := dec.SetString(strconv.FormatFloat(f, 'g', -1, 64)); err != nil {
			return nil, false
		}
		return &dec, true
	case Decimal:
		dec := apd.Decimal{}
		dec.Set(n.Dec())
		return &dec, true
	default:
		return nil, false
	}
}

// Equal reports structural equality. Numbers compare by numeric value
// regardless of their tag, so Int(3), Float(3) and Decimal 3.0 are all
// equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	at, bt := a.Type(), b.Type()
	if at.IsNumber() && bt.IsNumber() {
		ad, _ := AsDecimal(a)
		bd, _ := AsDecimal(b)
		if ad == nil || bd == nil {
			return false
		}
		return ad.Cmp(bd) == 0
	}
	if at != bt {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case String:
		return av == b.(String)
	case *Array:
		bv := b.(*Array)
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			x, _ := av.At(i)
			y, _ := bv.At(i)
			if !Equal(x, y) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.fields {
			x, _ := av.Get(k)
			y, ok := bv.Get(k)
			if !ok || !Equal(x, y) {
				return false
			}
		}
		return true
	}
	return false
}
