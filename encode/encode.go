package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nullsafe/safejson/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w as one JSON document followed by a newline. The
// default indent is two spaces per level.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(v, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(v ir.Value, w io.Writer, es *EncState) error {
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: nil value", ErrEncoding)
	case *ir.Object:
		return encodeObject(x, w, es)
	case *ir.Array:
		return encodeArray(x, w, es)
	default:
		return writeScalar(x, w, es)
	}
}

func encodeObject(o *ir.Object, w io.Writer, es *EncState) error {
	if o.Len() == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, k := range o.Keys() {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, k); err != nil {
			return err
		}
		sep := ":"
		if es.indent > 0 {
			sep = ": "
		}
		if err := writeSep(w, es, ir.ObjectType, sep); err != nil {
			return err
		}
		v, _ := o.Get(k)
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(a *ir.Array, w io.Writer, es *EncState) error {
	if a.Len() == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		v, _ := a.At(i)
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// writeScalar renders a leaf in its canonical token form, colored by
// its type.
func writeScalar(v ir.Value, w io.Writer, es *EncState) error {
	tok := ir.Text(v, 0)
	if es.Color != nil {
		tok = es.Color(v.Type(), ValueColor, tok)
	}
	return writeString(w, tok)
}

func writeField(w io.Writer, es *EncState, key string) error {
	tok := ir.Text(ir.FromString(key), 0)
	if es.Color != nil {
		tok = es.Color(ir.ObjectType, FieldColor, tok)
	}
	return writeString(w, tok)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}
