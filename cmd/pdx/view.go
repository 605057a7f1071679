package main

import (
	"fmt"

	"github.com/pdxmerge/pdx-format/go-pdx/encode"
	"github.com/pdxmerge/pdx-format/go-pdx/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		root, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
