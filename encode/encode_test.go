package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/nullsafe/safejson/ir"
)

func mustParse(t *testing.T, text string) ir.Value {
	t.Helper()
	v, err := ir.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return v
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []EncodeOption
		want string
	}{
		{
			"compact",
			`{"b": 1, "a": [true, null]}`,
			[]EncodeOption{Compact()},
			`{"a":[true,null],"b":1}` + "\n",
		},
		{
			"default indent",
			`{"a": [1, 2]}`,
			nil,
			"{\n  \"a\": [\n    1,\n    2\n  ]\n}\n",
		},
		{
			"four space indent",
			`{"a": 1}`,
			[]EncodeOption{Indent(4)},
			"{\n    \"a\": 1\n}\n",
		},
		{
			"scalar",
			`"x"`,
			nil,
			"\"x\"\n",
		},
		{
			"empty containers",
			`{"o": {}, "a": []}`,
			[]EncodeOption{Compact()},
			`{"a":[],"o":{}}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(mustParse(t, tt.text), buf, tt.opts...); err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeNil(t *testing.T) {
	if err := Encode(nil, bytes.NewBuffer(nil)); err == nil {
		t.Error("Encode(nil) did not fail")
	}
}

func TestMustString(t *testing.T) {
	got := MustString(mustParse(t, `[1, 2]`))
	want := "[\n  1,\n  2\n]"
	if got != want {
		t.Errorf("MustString = %q, want %q", got, want)
	}
}

func TestEncodeColorsDisabled(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	v := mustParse(t, `{"a": [1, "two", true, null]}`)
	plain := bytes.NewBuffer(nil)
	if err := Encode(v, plain, Compact()); err != nil {
		t.Fatal(err)
	}
	colored := bytes.NewBuffer(nil)
	if err := Encode(v, colored, Compact(), EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	// With colors off the color path must not alter the text.
	if plain.String() != colored.String() {
		t.Errorf("colored = %q, want %q", colored.String(), plain.String())
	}
}

func TestEncodeColorsEnabled(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	buf := bytes.NewBuffer(nil)
	v := mustParse(t, `{"pct": "100%"}`)
	if err := Encode(v, buf, Compact(), EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Encode with colors = %q, want escape sequences", got)
	}
	// Percent signs survive the sprintf-style color functions.
	if !strings.Contains(got, "100%") || strings.Contains(got, "100%%") {
		t.Errorf("Encode with colors = %q, want literal %%", got)
	}
}
