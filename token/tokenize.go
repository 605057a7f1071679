package token

import (
	"unicode/utf8"
)

// Tokenize splits a script document into tokens. Comments and
// whitespace (including newlines) separate tokens and are not
// returned. Positions on the returned tokens index into d.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	pd := &PosDoc{d: d}
	i, n := 0, len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '\n':
			pd.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			for i < n && d[i] != '\n' {
				i++
			}
		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Pos: pd.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Pos: pd.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '=':
			dst = append(dst, Token{Type: TEq, Pos: pd.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '?':
			if i+1 >= n || d[i+1] != '=' {
				return nil, ExpectedErr("'=' after '?'", pd.Pos(i))
			}
			dst = append(dst, Token{Type: TQEq, Pos: pd.Pos(i), Bytes: d[i : i+2]})
			i += 2
		case c == '<':
			if i+1 < n && d[i+1] == '=' {
				dst = append(dst, Token{Type: TLe, Pos: pd.Pos(i), Bytes: d[i : i+2]})
				i += 2
				break
			}
			dst = append(dst, Token{Type: TLt, Pos: pd.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '>':
			if i+1 < n && d[i+1] == '=' {
				dst = append(dst, Token{Type: TGe, Pos: pd.Pos(i), Bytes: d[i : i+2]})
				i += 2
				break
			}
			dst = append(dst, Token{Type: TGt, Pos: pd.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '"':
			end, err := quotedEnd(d, i, pd)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TString, Pos: pd.Pos(i), Bytes: d[i:end]})
			i = end
		default:
			start := i
			for i < n && !isWordBreak(d[i]) {
				r, sz := utf8.DecodeRune(d[i:])
				if r == utf8.RuneError && sz == 1 {
					return nil, NewTokenizeErr(ErrBadUTF8, pd.Pos(i))
				}
				i += sz
			}
			if i == start {
				return nil, UnexpectedErr("character "+string(d[i]), pd.Pos(i))
			}
			w := d[start:i]
			dst = append(dst, Token{Type: classify(w), Pos: pd.Pos(start), Bytes: w})
		}
	}
	return dst, nil
}

func isWordBreak(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '=', '<', '>', '?', '#', '"':
		return true
	}
	return false
}

// quotedEnd scans a double-quoted token starting at i and returns the
// offset one past its closing quote. Strings do not span lines.
func quotedEnd(d []byte, i int, pd *PosDoc) (int, error) {
	start := i
	i++ // opening quote
	escaped := false
	for i < len(d) {
		c := d[i]
		if c == '\n' {
			break
		}
		i++
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			return i, nil
		}
	}
	return 0, NewTokenizeErr(ErrUnterminated, pd.Pos(start))
}
