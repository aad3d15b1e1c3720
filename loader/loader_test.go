package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
)

func TestLoadJSON(t *testing.T) {
	node, err := Load([]byte(`{"name": "orders-api", "replicas": 3}`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s, ok := node.Get("name").GetString(); !ok || s != "orders-api" {
		t.Errorf(`Get("name") = %q, %v, want "orders-api", true`, s, ok)
	}
	if i, ok := node.Get("replicas").GetInt(); !ok || i != 3 {
		t.Errorf(`Get("replicas") = %v, %v, want 3, true`, i, ok)
	}
}

func TestLoadYAML(t *testing.T) {
	doc := strings.Join([]string{
		"name: orders-api",
		"replicas: 3",
		"endpoints:",
		"  - host: a.example.com",
		"  - host: b.example.com",
	}, "\n")

	node, err := Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s, _ := node.Get("name").GetString(); s != "orders-api" {
		t.Errorf(`Get("name") = %q, want "orders-api"`, s)
	}
	if i, _ := node.Get("replicas").GetInt(); i != 3 {
		t.Errorf(`Get("replicas") = %v, want 3`, i)
	}
	if s, _ := node.Get("endpoints").Index(1).Get("host").GetString(); s != "b.example.com" {
		t.Errorf("endpoints[1].host = %q, want \"b.example.com\"", s)
	}
}

func TestLoadSniffing(t *testing.T) {
	tests := []struct {
		name string
		text string
		json string
	}{
		{"json object", `{"a": 1}`, `{"a":1}`},
		{"json array", `[1, 2]`, `[1,2]`},
		{"json string", `"x"`, `"x"`},
		{"bare number", `42`, `42`},
		{"bare bool", `true`, `true`},
		{"yaml mapping", "a: 1", `{"a":1}`},
		{"yaml sequence", "- 1\n- 2", `[1,2]`},
		{"yaml nested", "a:\n  b: x", `{"a":{"b":"x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Load([]byte(tt.text))
			if err != nil {
				t.Fatalf("Load(%q) error: %v", tt.text, err)
			}
			if got := node.ToJSON(0); got != tt.json {
				t.Errorf("Load(%q) = %s, want %s", tt.text, got, tt.json)
			}
		})
	}
}

func TestLoadExplicitFormat(t *testing.T) {
	// YAML accepts flow-style JSON, so forcing YAML still works here.
	node, err := Load([]byte(`{"a": 1}`), WithFormat(YAMLFormat))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if i, _ := node.Get("a").GetInt(); i != 1 {
		t.Errorf(`Get("a") = %v, want 1`, i)
	}

	// The reverse is an error: block YAML is not JSON.
	if _, err := Load([]byte("a: 1"), WithFormat(JSONFormat)); err == nil {
		t.Error("Load(yaml, WithFormat(JSON)) did not fail")
	}
}

func TestLoadErrors(t *testing.T) {
	for _, text := range []string{"", "   \n\t "} {
		if _, err := Load([]byte(text)); !errors.Is(err, ErrEmpty) {
			t.Errorf("Load(%q) error = %v, want ErrEmpty", text, err)
		}
	}

	// Content routed to the JSON parser fails loudly, with no YAML retry.
	if _, err := Load([]byte(`{"a": `)); err == nil {
		t.Error("Load(truncated json) did not fail")
	}
	if _, err := Load([]byte(`{a: 1}`)); err == nil {
		t.Error("Load(unquoted-key flow doc) did not fail")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		json string
	}{
		{"json extension", write("doc.json", `{"a": 1}`), `{"a":1}`},
		{"yaml extension", write("doc.yaml", "a: 1"), `{"a":1}`},
		{"yml extension", write("doc.yml", "b: 2"), `{"b":2}`},
		{"no extension sniffs", write("doc", "c: 3"), `{"c":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := LoadFile(tt.path)
			if err != nil {
				t.Fatalf("LoadFile error: %v", err)
			}
			if got := node.ToJSON(0); got != tt.json {
				t.Errorf("LoadFile = %s, want %s", got, tt.json)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("LoadFile(absent) did not fail")
	}
}

func TestLoadLogger(t *testing.T) {
	var lines []string
	lg := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	if _, err := Load([]byte(`{"a": 1}`), WithLogger(lg)); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, ln := range lines {
		if strings.Contains(ln, "format selected") {
			found = true
		}
	}
	if !found {
		t.Errorf("log lines %v do not mention the format decision", lines)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"json", JSONFormat, false},
		{"j", JSONFormat, false},
		{"yaml", YAMLFormat, false},
		{"yml", YAMLFormat, false},
		{"y", YAMLFormat, false},
		{"toml", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if tt.err {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrBadFormat", tt.in, err)
			}
			continue
		}
		if err != nil || f != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.in, f, err, tt.want)
		}
	}
}

func TestFormatText(t *testing.T) {
	if JSONFormat.String() != "json" || YAMLFormat.String() != "yaml" {
		t.Errorf("String() = %q, %q", JSONFormat.String(), YAMLFormat.String())
	}
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Errorf("Suffix() = %q, %q", JSONFormat.Suffix(), YAMLFormat.Suffix())
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || !f.IsYAML() {
		t.Errorf("UnmarshalText(yaml) = %v, %v", f, err)
	}
	if !JSONFormat.IsJSON() || JSONFormat.IsYAML() {
		t.Error("JSONFormat predicates wrong")
	}
}
