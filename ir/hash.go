package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// shared seed so hashes are stable within a process
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node's semantic content,
// consistent with Compare: nodes with Compare(a, b) == 0 hash equally.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashTo(&h)
	return h.Sum64()
}

func (n *Node) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case ScalarType:
		h.WriteByte(byte(n.Kind))
		h.WriteString(n.Value())
	case BlockType:
		var b [8]byte
		for _, e := range n.Entries {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	}
}

// Hash returns a 64-bit hash of the entry, excluding origin tags.
func (e *Entry) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	if e.HasKey {
		h.WriteByte(1)
		h.WriteString(e.Key)
	} else {
		h.WriteByte(0)
	}
	h.WriteByte(byte(e.Op))
	e.Value.hashTo(&h)
	return h.Sum64()
}
