package ir

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/nullsafe/safejson/debug"
)

// Parse decodes one JSON document. Blank input, malformed input and
// trailing non-whitespace after the document all wrap ErrParse. Scalar
// roots are valid: Parse("3") is Int(3).
func Parse(text string) (Value, error) {
	return ParseBytes([]byte(text))
}

func ParseBytes(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	// Numbers stay textual so int64-exact and arbitrary-precision
	// literals classify without a float64 round trip.
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		if debug.Parse() {
			debug.Logf("parse: decode error: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if dec.More() {
		if debug.Parse() {
			debug.Logf("parse: trailing data after document")
		}
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	v, err := FromAny(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return v, nil
}
