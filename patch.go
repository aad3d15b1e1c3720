package safejson

import (
	"fmt"

	"github.com/nullsafe/safejson/patch"
)

// ApplyPatch applies the RFC 6902 operations in ops to doc and wraps
// the patched document. Both nodes must be present.
func ApplyPatch(doc, ops *Node) (*Node, error) {
	dv, ok := doc.payload()
	if !ok {
		return nil, fmt.Errorf("patch doc: %w", ErrMissing)
	}
	ov, ok := ops.payload()
	if !ok {
		return nil, fmt.Errorf("patch ops: %w", ErrMissing)
	}
	res, err := patch.Apply(dv, ov)
	if err != nil {
		return nil, err
	}
	return &Node{val: res, present: true}, nil
}

// ApplyMergePatch applies the RFC 7386 merge patch mp to doc and wraps
// the result. Both nodes must be present.
func ApplyMergePatch(doc, mp *Node) (*Node, error) {
	dv, ok := doc.payload()
	if !ok {
		return nil, fmt.Errorf("merge doc: %w", ErrMissing)
	}
	mv, ok := mp.payload()
	if !ok {
		return nil, fmt.Errorf("merge patch: %w", ErrMissing)
	}
	res, err := patch.Merge(dv, mv)
	if err != nil {
		return nil, err
	}
	return &Node{val: res, present: true}, nil
}
