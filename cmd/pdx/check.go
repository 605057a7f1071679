package main

import (
	"fmt"

	"github.com/pdxmerge/pdx-format/go-pdx/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", arg)
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
