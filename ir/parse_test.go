package ir

import (
	"errors"
	"testing"
)

func TestParseClassifies(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Type
	}{
		{"object", `{"a": 1}`, ObjectType},
		{"array", `[1, 2]`, ArrayType},
		{"string", `"hi"`, StringType},
		{"int", `7`, IntType},
		{"negative int", `-7`, IntType},
		{"max int64", `9223372036854775807`, IntType},
		{"fraction", `3.5`, DecimalType},
		{"exponent", `1e3`, DecimalType},
		{"beyond int64", `9223372036854775808`, DecimalType},
		{"bool", `true`, BoolType},
		{"null", `null`, NullType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			if v.Type() != tt.expected {
				t.Errorf("Parse(%q).Type() = %v, want %v", tt.text, v.Type(), tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"blank", "   \n\t  "},
		{"malformed", `{"a":`},
		{"bare word", `nope`},
		{"trailing garbage", `{"a": 1} extra`},
		{"two documents", `{} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.text, v)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", tt.text, err)
			}
		})
	}
}

func TestParseDecimalKeepsText(t *testing.T) {
	v, err := Parse(`0.30000000000000004`)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := v.(Decimal)
	if !ok {
		t.Fatalf("Parse(0.30000000000000004) = %T, want Decimal", v)
	}
	if got := d.Dec().String(); got != "0.30000000000000004" {
		t.Errorf("Dec().String() = %q, want the source literal", got)
	}
}

func TestParseSortsObjectKeys(t *testing.T) {
	v, err := Parse(`{"b": 1, "a": 2, "c": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*Object)
	keys := obj.Keys()
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}
