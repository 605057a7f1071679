// Package parse provides script parsing support.
package parse

import (
	"fmt"

	"github.com/pdxmerge/pdx-format/go-pdx/ir"
	"github.com/pdxmerge/pdx-format/go-pdx/token"
)

// Parse converts script text into its root block. The parser is
// single-pass recursive descent with one token of lookahead: a scalar
// followed by an operator starts a keyed entry, anything else is a
// bare list item.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	off := 0
	root := &ir.Node{Type: ir.BlockType}
	if err := parseBlock(toks, root, nil, &off, 0, pOpts); err != nil {
		return nil, err
	}
	return root, nil
}

// parseBlock fills p with entries until the block's closing brace, or
// end of input at the root. open is the position of the opening brace
// for nested blocks, nil at the root.
func parseBlock(toks []token.Token, p *ir.Node, open *token.Pos, pi *int, depth int, opts *parseOpts) error {
	if depth > opts.maxDepth {
		return fmt.Errorf("%w (%d) at %s", ErrDepth, opts.maxDepth, open)
	}
	for *pi < len(toks) {
		t := &toks[*pi]
		switch {
		case t.Type == token.TRCurl:
			if open == nil {
				return fmt.Errorf("%w: unexpected '}' %s", ErrParse, t.Pos)
			}
			*pi++
			return nil
		case t.Type == token.TLCurl:
			// bare nested block list item
			*pi++
			val := &ir.Node{Type: ir.BlockType}
			if err := parseBlock(toks, val, t.Pos, pi, depth+1, opts); err != nil {
				return err
			}
			p.Entries = append(p.Entries, ir.Item(val))
		case t.Type.IsScalar():
			*pi++
			if *pi < len(toks) && toks[*pi].Type.IsOperator() {
				opTok := &toks[*pi]
				*pi++
				val, err := parseValue(toks, pi, depth, opts)
				if err != nil {
					return err
				}
				p.Entries = append(p.Entries, &ir.Entry{
					Key:    t.String(),
					HasKey: true,
					Op:     opOf(opTok.Type),
					Value:  val,
				})
				continue
			}
			p.Entries = append(p.Entries, ir.Item(scalarOf(t)))
		case t.Type.IsOperator():
			return fmt.Errorf("%w: operator %q without key %s", ErrParse, string(t.Bytes), t.Pos)
		default:
			return fmt.Errorf("%w: unexpected token %q %s", ErrParse, string(t.Bytes), t.Pos)
		}
	}
	if open != nil {
		return fmt.Errorf("%w: unbalanced block opened at %s", ErrParse, open)
	}
	return nil
}

// parseValue consumes the value after `key op`: a scalar token or a
// nested `{ ... }` block.
func parseValue(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: premature end of input, expected value %s", ErrParse, endPos(toks))
	}
	t := &toks[*pi]
	switch {
	case t.Type == token.TLCurl:
		*pi++
		val := &ir.Node{Type: ir.BlockType}
		if err := parseBlock(toks, val, t.Pos, pi, depth+1, opts); err != nil {
			return nil, err
		}
		return val, nil
	case t.Type.IsScalar():
		*pi++
		return scalarOf(t), nil
	default:
		return nil, fmt.Errorf("%w: expected value, got %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
}

func endPos(toks []token.Token) *token.Pos {
	if len(toks) == 0 {
		return nil
	}
	return toks[len(toks)-1].Pos
}

func scalarOf(t *token.Token) *ir.Node {
	return ir.Scalar(kindOf(t.Type), string(t.Bytes))
}

func kindOf(t token.Type) ir.Kind {
	switch t {
	case token.TString:
		return ir.StringKind
	case token.TInteger, token.TFloat:
		return ir.NumberKind
	case token.TDate:
		return ir.DateKind
	case token.TBool:
		return ir.BoolKind
	default:
		return ir.IdentKind
	}
}

func opOf(t token.Type) ir.Op {
	switch t {
	case token.TQEq:
		return ir.OpQEq
	case token.TLt:
		return ir.OpLt
	case token.TGt:
		return ir.OpGt
	case token.TLe:
		return ir.OpLe
	case token.TGe:
		return ir.OpGe
	default:
		return ir.OpEq
	}
}
