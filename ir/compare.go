package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes semantically.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Semantic means post-parse token equality: string quoting style is
// ignored, all other literals compare by their verbatim text, and
// origin tags never participate.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case ScalarType:
		if a.Kind != b.Kind {
			return cmp.Compare(a.Kind, b.Kind)
		}
		return strings.Compare(a.Value(), b.Value())
	case BlockType:
		lenA, lenB := len(a.Entries), len(b.Entries)
		for i := range min(lenA, lenB) {
			if c := CompareEntry(a.Entries[i], b.Entries[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(lenA, lenB)
	}
	return 0
}

// CompareEntry compares two block entries: key (bare items sort
// before keyed ones), operator, then value.
func CompareEntry(a, b *Entry) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.HasKey != b.HasKey {
		if !a.HasKey {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	if a.Op != b.Op {
		return cmp.Compare(a.Op, b.Op)
	}
	return Compare(a.Value, b.Value)
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func EqualEntry(a, b *Entry) bool {
	return CompareEntry(a, b) == 0
}
