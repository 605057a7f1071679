package encode

import (
	"github.com/pdxmerge/pdx-format/go-pdx/token"
)

// keyText renders a key for output, re-quoting only when the bare
// form would not tokenize back to a single word.
func keyText(key string) string {
	if key == "" {
		return `""`
	}
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case ' ', '\t', '\r', '\n', '{', '}', '=', '<', '>', '?', '#', '"', '\\':
			return token.Quote(key)
		}
	}
	return key
}
