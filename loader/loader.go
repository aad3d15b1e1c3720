// Package loader reads JSON or YAML input into nodes, picking the
// format from an explicit option, the file extension, or the content.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	gojson "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/nullsafe/safejson"
	"github.com/nullsafe/safejson/debug"
	"github.com/nullsafe/safejson/ir"
)

// ErrEmpty reports blank input. The loader is an explicit I/O surface,
// so unlike safejson.Parse it fails loudly here.
var ErrEmpty = errors.New("empty input")

type Option func(*config)

type config struct {
	format    Format
	hasFormat bool
	log       logr.Logger
}

// WithFormat skips sniffing and loads as f.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
		c.hasFormat = true
	}
}

// WithLogger routes format decisions and sizes to lg. The default
// discards them.
func WithLogger(lg logr.Logger) Option {
	return func(c *config) { c.log = lg }
}

func newConfig(opts []Option) *config {
	cfg := &config{log: logr.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load parses data as one document. Without WithFormat the format is
// sniffed: content starting with '{', '[' or '"', or forming a valid
// JSON document, loads as JSON; everything else as YAML. YAML values
// JSON cannot represent, NaN and the infinities, fail the load.
func Load(data []byte, opts ...Option) (*safejson.Node, error) {
	return load(data, newConfig(opts), "")
}

// LoadFile reads and parses path. A .json, .yaml or .yml extension
// decides the format before the content heuristic runs.
func LoadFile(path string, opts ...Option) (*safejson.Node, error) {
	cfg := newConfig(opts)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.log.V(1).Info("read file", "path", path, "bytes", len(data))
	return load(data, cfg, filepath.Ext(path))
}

func load(data []byte, cfg *config, ext string) (*safejson.Node, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("load: %w", ErrEmpty)
	}
	f, how := pickFormat(cfg, ext, trimmed)
	cfg.log.V(1).Info("format selected", "format", f.String(), "by", how)
	if debug.Loader() {
		debug.Logf("loader: %s via %s (%d bytes)", f, how, len(data))
	}
	switch f {
	case YAMLFormat:
		var a any
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("load yaml: %w", err)
		}
		v, err := ir.FromAny(a)
		if err != nil {
			return nil, fmt.Errorf("load yaml: %w", err)
		}
		return safejson.Wrap(v), nil
	default:
		v, err := ir.ParseBytes(data)
		if err != nil {
			return nil, fmt.Errorf("load json: %w", err)
		}
		return safejson.Wrap(v), nil
	}
}

func pickFormat(cfg *config, ext string, trimmed []byte) (Format, string) {
	if cfg.hasFormat {
		return cfg.format, "option"
	}
	switch strings.ToLower(ext) {
	case ".json":
		return JSONFormat, "extension"
	case ".yaml", ".yml":
		return YAMLFormat, "extension"
	}
	switch trimmed[0] {
	case '{', '[', '"':
		return JSONFormat, "content"
	}
	// Bare scalars like 42 or true are valid documents in both formats;
	// route them through the stricter parser.
	if gojson.Valid(trimmed) {
		return JSONFormat, "content"
	}
	return YAMLFormat, "content"
}
