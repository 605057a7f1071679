package token

import (
	"strings"
)

// QuotedToString converts a double-quoted source token, including the
// surrounding quotes, to its string value. Escape handling is
// deliberately permissive: `\"` and `\\` are required by the dialect,
// `\n` and `\t` are honored, and any other escaped character stands
// for itself.
func QuotedToString(d []byte) string {
	if len(d) < 2 || d[0] != '"' {
		return string(d)
	}
	body := d[1 : len(d)-1]
	if len(d) < 2 || d[len(d)-1] != '"' {
		body = d[1:]
	}
	var sb strings.Builder
	sb.Grow(len(body))
	escaped := false
	for _, c := range string(body) {
		if !escaped {
			if c == '\\' {
				escaped = true
				continue
			}
			sb.WriteRune(c)
			continue
		}
		escaped = false
		switch c {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Quote renders v as a double-quoted source token.
func Quote(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for _, c := range v {
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
