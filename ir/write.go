package ir

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write serializes v as one JSON document. indent == 0 is compact with
// no inserted whitespace; indent > 0 breaks lines and indents by that
// many spaces per nesting level. Object members render in their stored
// order.
func Write(v Value, w io.Writer, indent int) error {
	ws := &writeState{w: w, indent: indent}
	ws.value(v)
	return ws.err
}

// Text renders v like Write, as a string.
func Text(v Value, indent int) string {
	buf := &strings.Builder{}
	if err := Write(v, buf, indent); err != nil {
		return ""
	}
	return buf.String()
}

type writeState struct {
	w      io.Writer
	indent int
	depth  int
	err    error
}

func (ws *writeState) str(s string) {
	if ws.err != nil {
		return
	}
	_, ws.err = io.WriteString(ws.w, s)
}

func (ws *writeState) nl() {
	if ws.indent == 0 {
		return
	}
	ws.str("\n" + strings.Repeat(" ", ws.indent*ws.depth))
}

func (ws *writeState) value(v Value) {
	switch x := v.(type) {
	case nil:
		ws.err = fmt.Errorf("%w: nil value", errInternal)
	case Null:
		ws.str("null")
	case Bool:
		if x {
			ws.str("true")
		} else {
			ws.str("false")
		}
	case Int:
		ws.str(strconv.FormatInt(int64(x), 10))
	case Float:
		ws.str(strconv.FormatFloat(float64(x), 'g', -1, 64))
	case Decimal:
		ws.str(x.Dec().String())
	case String:
		ws.quoted(string(x))
	case *Array:
		if x.Len() == 0 {
			ws.str("[]")
			return
		}
		ws.str("[")
		ws.depth++
		for i := 0; i < x.Len(); i++ {
			if i > 0 {
				ws.str(",")
			}
			ws.nl()
			elt, _ := x.At(i)
			ws.value(elt)
		}
		ws.depth--
		ws.nl()
		ws.str("]")
	case *Object:
		if x.Len() == 0 {
			ws.str("{}")
			return
		}
		ws.str("{")
		ws.depth++
		for i, k := range x.fields {
			if i > 0 {
				ws.str(",")
			}
			ws.nl()
			ws.quoted(k)
			ws.str(":")
			if ws.indent > 0 {
				ws.str(" ")
			}
			ws.value(x.values[i])
		}
		ws.depth--
		ws.nl()
		ws.str("}")
	default:
		ws.err = fmt.Errorf("%w: unknown value %T", errInternal, v)
	}
}

func (ws *writeState) quoted(s string) {
	ws.str(`"`)
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		ws.str(s[start:i])
		switch c {
		case '"':
			ws.str(`\"`)
		case '\\':
			ws.str(`\\`)
		case '\n':
			ws.str(`\n`)
		case '\r':
			ws.str(`\r`)
		case '\t':
			ws.str(`\t`)
		case '\b':
			ws.str(`\b`)
		case '\f':
			ws.str(`\f`)
		default:
			ws.str(fmt.Sprintf(`\u%04x`, c))
		}
		start = i + 1
	}
	ws.str(s[start:])
	ws.str(`"`)
}
