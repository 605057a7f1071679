package encode

import (
	"bytes"
	"strings"

	"github.com/pdxmerge/pdx-format/go-pdx/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// MustWire renders node in the compact single-line form used for
// conflict value texts.
func MustWire(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
