package ir

import (
	"fmt"
	"strings"
)

// Path is a key path from the root block down to an entry. Segments
// are keys; a duplicate key's ordinal occurrence is suffixed as
// `key[n]` for n > 0, so the first occurrence reads as the bare key.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Child extends the path with one segment for the given key and its
// ordinal occurrence among siblings sharing that key.
func (p Path) Child(key string, ordinal int) Path {
	seg := key
	if ordinal > 0 {
		seg = fmt.Sprintf("%s[%d]", key, ordinal)
	}
	res := make(Path, 0, len(p)+1)
	res = append(res, p...)
	return append(res, seg)
}
