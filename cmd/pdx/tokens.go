package main

import (
	"fmt"

	"github.com/pdxmerge/pdx-format/go-pdx/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var toks []token.Token
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		toks, err = token.Tokenize(toks[:0], d)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", arg, err)
		}
		for i := range toks {
			t := &toks[i]
			line, col := t.Pos.LineCol()
			fmt.Fprintf(cc.Out, "%d:%d\t%s\t%q\n", line+1, col+1, t.Type, string(t.Bytes))
		}
	}
	return nil
}
