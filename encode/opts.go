package encode

type EncodeOption func(*EncState)

// Indent sets the spaces per nesting level; 0 encodes compactly.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Compact is Indent(0).
func Compact() EncodeOption {
	return func(es *EncState) { es.indent = 0 }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
