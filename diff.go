package safejson

import (
	"github.com/nullsafe/safejson/diff"
)

// Diff renders the textual difference between two nodes. Missing and
// null nodes render as null, so diffing against either works. The
// empty string means the nodes render identically.
func Diff(a, b *Node, opts ...diff.Option) string {
	return diff.Texts(a.ToJSON(2), b.ToJSON(2), opts...)
}
