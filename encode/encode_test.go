package encode

import (
	"bytes"
	"testing"

	"github.com/pdxmerge/pdx-format/go-pdx/ir"
	"github.com/pdxmerge/pdx-format/go-pdx/parse"
)

func TestEncodeRoundTrip(t *testing.T) {
	docs := []string{
		`a = 1`,
		`a = 1 a = 2`,
		`cost ?= 0.5`,
		`age > 16 gold >= 50 x < 1 y <= 2`,
		`start = 1066.9.15 ai = yes`,
		`name = "New \"World\""`,
		`traits = { brave just }`,
		`empty = {}`,
		`colors = { { 10 20 30 } { 40 50 60 } }`,
		`
country_event = {
	id = my_mod.1
	option = {
		name = "OK"
		ai_chance = { factor = 10 }
	}
}`,
	}
	for _, doc := range docs {
		orig, err := parse.Parse([]byte(doc))
		if err != nil {
			t.Fatalf("parse %q: %v", doc, err)
		}
		var buf bytes.Buffer
		if err := Encode(orig, &buf); err != nil {
			t.Fatalf("encode %q: %v", doc, err)
		}
		again, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v\n# encoded\n%s", doc, err, buf.String())
		}
		if !ir.Equal(orig, again) {
			t.Errorf("round trip changed %q\n# encoded\n%s", doc, buf.String())
		}
	}
}

func TestEncodeWireForm(t *testing.T) {
	root, err := parse.Parse([]byte("a = 1\nb = {\n\tc = yes\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := MustWire(root)
	want := `a = 1 b = { c = yes }`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeIndentation(t *testing.T) {
	root := ir.Block(
		ir.KV("a", ir.Block(
			ir.KV("b", ir.FromInt(1)),
		)),
	)
	var buf bytes.Buffer
	if err := Encode(root, &buf); err != nil {
		t.Fatal(err)
	}
	want := "a = {\n\tb = 1\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeEmptyBlock(t *testing.T) {
	root := ir.Block(ir.KV("x", ir.Block()))
	if got := MustWire(root); got != "x = {}" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeQuotedKey(t *testing.T) {
	root := ir.Block(&ir.Entry{
		Key:    "two words",
		HasKey: true,
		Op:     ir.OpEq,
		Value:  ir.FromInt(1),
	})
	var buf bytes.Buffer
	if err := Encode(root, &buf); err != nil {
		t.Fatal(err)
	}
	again, err := parse.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("reparse: %v\n# encoded\n%s", err, buf.String())
	}
	if again.Entries[0].Key != "two words" {
		t.Errorf("key lost: %q", again.Entries[0].Key)
	}
}

func TestEncodeVerbatimScalars(t *testing.T) {
	// numeric text is preserved exactly, 0.50 never becomes 0.5
	root, err := parse.Parse([]byte(`x = 0.50 y = +1 z = 007`))
	if err != nil {
		t.Fatal(err)
	}
	if got := MustWire(root); got != `x = 0.50 y = +1 z = 007` {
		t.Errorf("got %q", got)
	}
}
