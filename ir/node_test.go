package ir

import (
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	orig := Block(
		KV("a", FromInt(1)),
		KV("b", Block(Item(FromIdent("x")))),
	)
	orig.Entries[0].Origins = []string{"base"}
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone should be equal to original")
	}
	cp.Entries[0].Value.Raw = "99"
	cp.Entries[0].Origins[0] = "mutated"
	cp.Entries[1].Value.Entries[0].Value.Raw = "y"
	if orig.Entries[0].Value.Raw != "1" {
		t.Error("clone shares scalar with original")
	}
	if orig.Entries[0].Origins[0] != "base" {
		t.Error("clone shares origins slice with original")
	}
	if orig.Entries[1].Value.Entries[0].Value.Raw != "x" {
		t.Error("clone shares nested block with original")
	}
}

func TestValueUnquotes(t *testing.T) {
	if got := FromString(`say "hi"`).Value(); got != `say "hi"` {
		t.Errorf("got %q", got)
	}
	if got := FromIdent("plain").Value(); got != "plain" {
		t.Errorf("got %q", got)
	}
	if got := Block().Value(); got != "" {
		t.Errorf("block Value: got %q", got)
	}
}

func TestGetFirstMatch(t *testing.T) {
	b := Block(
		KV("k", FromInt(1)),
		KV("k", FromInt(2)),
		Item(FromIdent("bare")),
	)
	v := Get(b, "k")
	if v == nil || v.Raw != "1" {
		t.Errorf("Get should return the first k")
	}
	if Get(b, "missing") != nil {
		t.Error("Get of a missing key should be nil")
	}
	if Get(FromInt(1), "k") != nil {
		t.Error("Get on a scalar should be nil")
	}
}

func TestVisitOrder(t *testing.T) {
	b := Block(
		KV("a", FromInt(1)),
		KV("b", Block(KV("c", FromInt(2)))),
	)
	var pre, post int
	err := b.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// root, a's value, b's value, c's value
	if pre != 4 || post != 4 {
		t.Errorf("got pre=%d post=%d, want 4/4", pre, post)
	}
}

func TestPathSegments(t *testing.T) {
	var p Path
	p = p.Child("country_event", 0).Child("option", 2)
	if got := p.String(); got != "country_event.option[2]" {
		t.Errorf("got %q", got)
	}
	// Child must not alias the parent's backing array
	q := p.Child("x", 0)
	r := p.Child("y", 0)
	if q[len(q)-1] == r[len(r)-1] {
		t.Error("sibling paths overwrote each other")
	}
}
