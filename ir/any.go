package ir

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/cockroachdb/apd"
	json "github.com/goccy/go-json"
)

// FromAny converts a Go-style representation of JSON into a Value:
// nil is null, map[string]any is an object (keys sorted), []any is an
// array, json.Number classifies into Int or Decimal, and the native
// scalar types map to their tags. A Value passes through unchanged.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return NullValue, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case json.Number:
		return fromNumber(string(x))
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromAny(float64(x))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("cannot represent %v as a value", x)
		}
		return Float(x), nil
	case *apd.Decimal:
		return FromDecimal(x), nil
	case []any:
		arr := NewArray()
		for _, elt := range x {
			ev, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			arr.Append(ev)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			ev, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, ev)
		}
		return obj, nil
	case map[any]any:
		// YAML mappings may carry non-string keys.
		strMap := make(map[string]any, len(x))
		for k, kv := range x {
			strMap[fmt.Sprint(k)] = kv
		}
		return FromAny(strMap)
	default:
		return nil, fmt.Errorf("cannot represent %T as a value", v)
	}
}

// fromNumber classifies a JSON number literal: int64-exact integers
// become Int, everything else keeps full precision as Decimal.
func fromNumber(lit string) (Value, error) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int(i), nil
	}
	dec := apd.Decimal{}
	if _, _, err := dec.SetString(lit); err != nil {
		return nil, fmt.Errorf("bad number literal %q", lit)
	}
	return Decimal(dec), nil
}

func fromUint(u uint64) (Value, error) {
	if u <= math.MaxInt64 {
		return Int(u), nil
	}
	return fromNumber(strconv.FormatUint(u, 10))
}

// ToAny converts a Value to a Go-style representation: objects become
// map[string]any (member order is lost), arrays []any, Int int64, Float
// float64. A Decimal becomes int64 when integral and in range,
// otherwise the nearest float64; callers needing full precision should
// stay on the Value side.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(x)
	case Int:
		return int64(x)
	case Float:
		return float64(x)
	case Decimal:
		if i, err := x.Dec().Int64(); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(x.Dec().String(), 64)
		return f
	case String:
		return string(x)
	case *Array:
		res := make([]any, x.Len())
		for i := range res {
			elt, _ := x.At(i)
			res[i] = ToAny(elt)
		}
		return res
	case *Object:
		res := make(map[string]any, x.Len())
		for _, k := range x.Keys() {
			elt, _ := x.Get(k)
			res[k] = ToAny(elt)
		}
		return res
	default:
		panic("impossible production")
	}
}
