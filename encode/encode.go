package encode

import (
	"io"

	"github.com/pdxmerge/pdx-format/go-pdx/ir"
)

type EncState struct {
	depth int
	wire  bool

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes node as script text. A block node is written as a
// file: one entry per line, tab-indented, no braces around the root.
// In wire mode everything goes on a single line, which is the form
// used for conflict value texts.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node.Type != ir.BlockType {
		if err := writeString(w, es.color(node.Kind, ValueColor, node.Raw)); err != nil {
			return err
		}
		return es.finish(w)
	}
	if es.wire {
		if err := encodeEntriesWire(node.Entries, w, es); err != nil {
			return err
		}
		return nil
	}
	if err := encodeEntries(node.Entries, w, es); err != nil {
		return err
	}
	return nil
}

func (es *EncState) finish(w io.Writer) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func encodeEntries(entries []*ir.Entry, w io.Writer, es *EncState) error {
	for _, e := range entries {
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := encodeEntry(e, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeEntry(e *ir.Entry, w io.Writer, es *EncState) error {
	if e.HasKey {
		if err := writeString(w, es.color(ir.IdentKind, KeyColor, keyText(e.Key))); err != nil {
			return err
		}
		if err := writeString(w, " "+es.color(ir.IdentKind, OpColor, e.Op.String())+" "); err != nil {
			return err
		}
	}
	return encodeValue(e.Value, w, es)
}

func encodeValue(n *ir.Node, w io.Writer, es *EncState) error {
	if n.Type == ir.ScalarType {
		return writeString(w, es.color(n.Kind, ValueColor, n.Raw))
	}
	if len(n.Entries) == 0 {
		return writeString(w, es.color(ir.IdentKind, BraceColor, "{}"))
	}
	if es.wire {
		if err := writeString(w, es.color(ir.IdentKind, BraceColor, "{")+" "); err != nil {
			return err
		}
		if err := encodeEntriesWire(n.Entries, w, es); err != nil {
			return err
		}
		return writeString(w, " "+es.color(ir.IdentKind, BraceColor, "}"))
	}
	if err := writeString(w, es.color(ir.IdentKind, BraceColor, "{")+"\n"); err != nil {
		return err
	}
	es.depth++
	if err := encodeEntries(n.Entries, w, es); err != nil {
		return err
	}
	es.depth--
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.IdentKind, BraceColor, "}"))
}

func encodeEntriesWire(entries []*ir.Entry, w io.Writer, es *EncState) error {
	for i, e := range entries {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encodeEntry(e, w, es); err != nil {
			return err
		}
	}
	return nil
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.wire || es.depth == 0 {
		return nil
	}
	b := make([]byte, es.depth)
	for i := range b {
		b[i] = '\t'
	}
	_, err := w.Write(b)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
