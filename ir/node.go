package ir

import (
	"slices"
	"strconv"

	"github.com/pdxmerge/pdx-format/go-pdx/token"
)

// Node is a value in a script tree: a scalar literal or a block of
// entries. Trees are treated as immutable once built; operations that
// derive new trees clone rather than mutate.
type Node struct {
	Type Type

	// scalar
	Kind Kind
	Raw  string // verbatim source token, quotes included for strings

	// block
	Entries []*Entry
}

// Entry is one element of a block's ordered sequence: either
// `key op value` or a bare value (list item). Duplicate keys are
// legal and order-significant; order is the slice index.
type Entry struct {
	Key    string
	HasKey bool
	Op     Op
	Value  *Node

	// Origins is the merge provenance of this entry: which inputs
	// contributed it. Empty on a freshly parsed tree.
	Origins []string
}

func Block(entries ...*Entry) *Node {
	return &Node{Type: BlockType, Entries: entries}
}

func Scalar(kind Kind, raw string) *Node {
	return &Node{Type: ScalarType, Kind: kind, Raw: raw}
}

func FromIdent(v string) *Node {
	return Scalar(IdentKind, v)
}

func FromString(v string) *Node {
	return Scalar(StringKind, token.Quote(v))
}

func FromInt(v int64) *Node {
	return Scalar(NumberKind, strconv.FormatInt(v, 10))
}

func FromBool(v bool) *Node {
	if v {
		return Scalar(BoolKind, "yes")
	}
	return Scalar(BoolKind, "no")
}

// KV builds a `key = value` entry.
func KV(key string, value *Node) *Entry {
	return &Entry{Key: key, HasKey: true, Op: OpEq, Value: value}
}

// KVOp builds a keyed entry with an explicit operator.
func KVOp(key string, op Op, value *Node) *Entry {
	return &Entry{Key: key, HasKey: true, Op: op, Value: value}
}

// Item builds a bare list-item entry.
func Item(value *Node) *Entry {
	return &Entry{Value: value}
}

// Value returns the semantic text of a scalar: the unquoted content
// for strings, the verbatim token otherwise. Blocks return "".
func (n *Node) Value() string {
	if n.Type != ScalarType {
		return ""
	}
	if n.Kind == StringKind {
		return token.QuotedToString([]byte(n.Raw))
	}
	return n.Raw
}

func (n *Node) IsBlock() bool {
	return n != nil && n.Type == BlockType
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type: n.Type,
		Kind: n.Kind,
		Raw:  n.Raw,
	}
	if n.Type != BlockType {
		return res
	}
	res.Entries = make([]*Entry, len(n.Entries))
	for i, e := range n.Entries {
		res.Entries[i] = e.Clone()
	}
	return res
}

func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	return &Entry{
		Key:     e.Key,
		HasKey:  e.HasKey,
		Op:      e.Op,
		Value:   e.Value.Clone(),
		Origins: slices.Clone(e.Origins),
	}
}

// Get returns the value of the first entry keyed by key, or nil.
// Blocks are ordered sequences, not maps: duplicate keys are data, so
// callers that care about repeats must walk Entries themselves.
func Get(n *Node, key string) *Node {
	if n == nil || n.Type != BlockType {
		return nil
	}
	for _, e := range n.Entries {
		if e.HasKey && e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Visit walks the tree in depth-first order, calling f before (isPost
// false) and after (isPost true) each node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive && n.Type == BlockType {
		for _, e := range n.Entries {
			if err := e.Value.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
