// Package diff renders the textual difference between two documents.
package diff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nullsafe/safejson/ir"
)

type config struct {
	color bool
}

type Option func(*config)

// WithColor renders deletions in red and insertions in green instead
// of the [-...-] and [+...+] markers.
func WithColor() Option {
	return func(cfg *config) {
		cfg.color = true
	}
}

// Texts diffs two rendered documents. The empty string means no
// difference.
func Texts(a, b string, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if a == b {
		return ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		case diffpatch.DiffDelete:
			if cfg.color {
				buf.WriteString(color.RedString("%s", diff.Text))
			} else {
				buf.WriteString("[-" + diff.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if cfg.color {
				buf.WriteString(color.GreenString("%s", diff.Text))
			} else {
				buf.WriteString("[+" + diff.Text + "+]")
			}
		}
	}
	return buf.String()
}

// Values diffs the canonical renderings of two values.
func Values(a, b ir.Value, opts ...Option) string {
	return Texts(ir.Text(a, 2), ir.Text(b, 2), opts...)
}
