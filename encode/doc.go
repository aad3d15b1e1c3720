// Package encode renders values as JSON text with optional indentation
// and terminal colors.
//
// # Usage
//
//	// Encode with the default two-space indent
//	var buf bytes.Buffer
//	err := encode.Encode(v, &buf)
//
//	// Encode compactly
//	err := encode.Encode(v, &buf, encode.Compact())
//
//	// Encode for a terminal
//	err := encode.Encode(v, &buf, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/nullsafe/safejson/ir - value representation
package encode
