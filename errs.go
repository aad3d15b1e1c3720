package safejson

import "errors"

// ErrMissing reports an operation that needs a value was given a
// missing node. Only the document-level operations return it; the
// Node surface itself never errors.
var ErrMissing = errors.New("missing value")
