package token

import (
	"fmt"
)

type Type int

const (
	TLiteral Type = iota // bare word: identifier, dotted/namespaced name
	TInteger
	TFloat
	TDate // YYYY.MM.DD
	TBool // yes / no
	TString // double-quoted
	TEq  // =
	TQEq // ?=
	TLt  // <
	TGt  // >
	TLe  // <=
	TGe  // >=
	TLCurl
	TRCurl
)

func (t Type) String() string {
	return map[Type]string{
		TLiteral: "TLiteral",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TDate:    "TDate",
		TBool:    "TBool",
		TString:  "TString",
		TEq:      "TEq",
		TQEq:     "TQEq",
		TLt:      "TLt",
		TGt:      "TGt",
		TLe:      "TLe",
		TGe:      "TGe",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
	}[t]
}

// IsOperator reports whether t is one of the assignment/comparison
// operators that separate a key from its value.
func (t Type) IsOperator() bool {
	switch t {
	case TEq, TQEq, TLt, TGt, TLe, TGe:
		return true
	}
	return false
}

// IsScalar reports whether t can stand alone as a scalar value.
func (t Type) IsScalar() bool {
	switch t {
	case TLiteral, TInteger, TFloat, TDate, TBool, TString:
		return true
	}
	return false
}

type Token struct {
	Type  Type
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the semantic text of the token: quoted strings are
// unquoted, everything else is the verbatim source text.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}
