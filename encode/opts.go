package encode

type EncodeOption func(*EncState)

// Depth sets the starting indentation depth.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeWire selects the compact single-line form.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
