// Package patch applies RFC 6902 JSON Patch and RFC 7386 merge patch
// documents to values.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/nullsafe/safejson/debug"
	"github.com/nullsafe/safejson/ir"
)

// Apply applies the RFC 6902 operations in ops to doc and returns the
// patched value. Neither input is modified.
func Apply(doc, ops ir.Value) (ir.Value, error) {
	p, err := jsonpatch.DecodePatch([]byte(ir.Text(ops, 0)))
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch: applying %d ops", len(p))
	}
	out, err := p.Apply([]byte(ir.Text(doc, 0)))
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return ir.ParseBytes(out)
}

// Merge applies the RFC 7386 merge patch mp to doc and returns the
// result. A null member in mp deletes the member from doc.
func Merge(doc, mp ir.Value) (ir.Value, error) {
	out, err := jsonpatch.MergePatch([]byte(ir.Text(doc, 0)), []byte(ir.Text(mp, 0)))
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch: merge result %d bytes", len(out))
	}
	return ir.ParseBytes(out)
}
