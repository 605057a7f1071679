package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "pdx").
		WithSynopsis("pdx [opts] command [opts]").
		WithDescription("pdx is a tool for working with script files and mod overlays.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pdxMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			ViewCommand(cfg),
			TokensCommand(cfg),
			MergeCommand(cfg),
			MergeDirCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("parse script files and report syntax errors").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("re-encode script files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [files]").
		WithDescription("dump the token stream of script files").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := NewMergeConfig(mainCfg)
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "m",
		Aliases:     []string{"mod"},
		Description: "overlay in priority order, lowest first; repeatable",
		Type:        cli.NamedFuncOpt(cfg.modOpt, "(name=file)"),
	})
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("mg").
		WithSynopsis("merge [-base file] -m name=file [-m name2=file2 ...]").
		WithDescription(mergeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeCmd(cfg, cc, args)
		})
}

const mergeDescription = `merge combines a base script file with mod overlays.

The base file, when given, anchors ordering and conflict detection.
Overlays apply in the order of the -m flags; later overlays take
priority. Without -base, the first overlay acts as the base.

The merged document goes to the command output. The conflict report
goes to stderr, or to the -report file; -json switches the report to
JSON. -filter restricts the report with a boolean expression over the
fields path, kind, mods, base, and resolved, for example:

  pdx merge -base a.txt -m big=b.txt -filter 'kind == "structural"'

Defaults for -strategy, -filter, and -jobs come from the environment
variables PDX_STRATEGY, PDX_FILTER, and PDX_JOBS.`
