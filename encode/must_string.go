package encode

import (
	"bytes"
	"strings"

	"github.com/nullsafe/safejson/ir"
)

func MustString(v ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
