package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in    string
	types []Type
	texts []string
}

func TestTokenizeOK(t *testing.T) {
	tts := []tokTest{
		{
			in:    `a = 1`,
			types: []Type{TLiteral, TEq, TInteger},
			texts: []string{"a", "=", "1"},
		},
		{
			in:    `cost ?= 0.5`,
			types: []Type{TLiteral, TQEq, TFloat},
			texts: []string{"cost", "?=", "0.5"},
		},
		{
			in:    `age > 16 prestige >= 100 gold < 50 piety <= 0`,
			types: []Type{TLiteral, TGt, TInteger, TLiteral, TGe, TInteger, TLiteral, TLt, TInteger, TLiteral, TLe, TInteger},
		},
		{
			in:    `start_date = 1066.9.15`,
			types: []Type{TLiteral, TEq, TDate},
			texts: []string{"start_date", "=", "1066.9.15"},
		},
		{
			in:    `ai = yes human = no`,
			types: []Type{TLiteral, TEq, TBool, TLiteral, TEq, TBool},
		},
		{
			in:    `name = "New \"World\" Order"`,
			types: []Type{TLiteral, TEq, TString},
			texts: []string{"name", "=", `New "World" Order`},
		},
		{
			in:    "traits = { brave just }",
			types: []Type{TLiteral, TEq, TLCurl, TLiteral, TLiteral, TRCurl},
		},
		{
			in:    "a=1", // operators break words without spaces
			types: []Type{TLiteral, TEq, TInteger},
		},
		{
			in:    "a={b=2}",
			types: []Type{TLiteral, TEq, TLCurl, TLiteral, TEq, TInteger, TRCurl},
		},
		{
			in:    "# full line comment\na = 1 # trailing\n# another",
			types: []Type{TLiteral, TEq, TInteger},
		},
		{
			in:    "-3 +4 -0.5",
			types: []Type{TInteger, TInteger, TFloat},
		},
		{
			in:    "e_hre.100 namespace.my_event",
			types: []Type{TLiteral, TLiteral},
		},
		{
			in:    "\t\r\n  \n",
			types: []Type{},
		},
		{
			in:    `flag = héllo_wörld`,
			types: []Type{TLiteral, TEq, TLiteral},
		},
	}
	for i := range tts {
		tt := &tts[i]
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for j := range toks {
			if toks[j].Type != tt.types[j] {
				t.Errorf("%q tok %d: got %s, want %s", tt.in, j, toks[j].Type, tt.types[j])
			}
			if tt.texts != nil && toks[j].String() != tt.texts[j] {
				t.Errorf("%q tok %d: got text %q, want %q", tt.in, j, toks[j].String(), tt.texts[j])
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	errTests := []struct {
		in string
		e  error
	}{
		{in: `name = "unterminated`, e: ErrUnterminated},
		{in: "name = \"no\nnewlines\"", e: ErrUnterminated},
		{in: `a ? b`},
		{in: `a ?`},
		{in: "bad \xff byte", e: ErrBadUTF8},
	}
	for i := range errTests {
		et := &errTests[i]
		_, err := Tokenize(nil, []byte(et.in))
		if err == nil {
			t.Errorf("%q: expected error", et.in)
			continue
		}
		if et.e != nil && !errors.Is(err, et.e) {
			t.Errorf("%q: got %v, want %v", et.in, err, et.e)
		}
		var tErr *TokenizeErr
		if !errors.As(err, &tErr) {
			t.Errorf("%q: error %v has no position", et.in, err)
		}
	}
}

func TestClassify(t *testing.T) {
	cts := []struct {
		in string
		ty Type
	}{
		{"1066.1.1", TDate},
		{"1066.1", TFloat},
		{"1066", TInteger},
		{"-12", TInteger},
		{"+12", TInteger},
		{"1.5", TFloat},
		{"-0.25", TFloat},
		{"yes", TBool},
		{"no", TBool},
		{"yess", TLiteral},
		{"1066.1.1.1", TLiteral},
		{"1066.", TFloat},
		{".1.1", TLiteral},
		{"a1066.1.1", TLiteral},
		{"-", TLiteral},
		{"e_hre.100", TLiteral},
	}
	for _, ct := range cts {
		if got := classify([]byte(ct.in)); got != ct.ty {
			t.Errorf("classify(%q): got %s, want %s", ct.in, got, ct.ty)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	vals := []string{
		"",
		"hello",
		`with "quotes"`,
		`back\slash`,
		"tab\tand\nnewline",
		"ünïcode",
	}
	for _, v := range vals {
		q := Quote(v)
		if got := QuotedToString([]byte(q)); got != v {
			t.Errorf("round trip %q: got %q via %q", v, got, q)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	in := "a = 1\nbb = 2\n\tc = 3"
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	wantLC := [][2]int{
		{0, 0}, {0, 2}, {0, 4},
		{1, 0}, {1, 3}, {1, 5},
		{2, 1}, {2, 3}, {2, 5},
	}
	if len(toks) != len(wantLC) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantLC))
	}
	for i := range toks {
		line, col := toks[i].Pos.LineCol()
		if line != wantLC[i][0] || col != wantLC[i][1] {
			t.Errorf("tok %d %q: got %d:%d, want %d:%d",
				i, string(toks[i].Bytes), line, col, wantLC[i][0], wantLC[i][1])
		}
	}
}
