package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdxmerge/pdx-format/go-pdx/encode"
	"github.com/pdxmerge/pdx-format/go-pdx/ir"
	"github.com/pdxmerge/pdx-format/go-pdx/merge"
	"github.com/pdxmerge/pdx-format/go-pdx/parse"
	"github.com/pdxmerge/pdx-format/go-pdx/report"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MergeConfig struct {
	*MainConfig

	Base     string `cli:"name=base desc='base game file'"`
	Strategy string `cli:"name=strategy desc='conflict strategy: last, first'"`
	Filter   string `cli:"name=filter desc='boolean filter expression for the report'"`
	JSON     bool   `cli:"name=json desc='emit the conflict report as JSON'"`
	Report   string `cli:"name=report desc='conflict report file (default stderr)'"`

	mods []overlayArg

	Merge *cli.Command
}

type overlayArg struct {
	mod  string
	file string
}

func NewMergeConfig(mainCfg *MainConfig) *MergeConfig {
	cfg := &MergeConfig{MainConfig: mainCfg}
	envCfg, err := ParseEnvConfig()
	if err == nil {
		cfg.Strategy = envCfg.Strategy
		cfg.Filter = envCfg.Filter
	}
	return cfg
}

func (cfg *MergeConfig) modOpt(cc *cli.Context, a string) (any, error) {
	name, file, ok := strings.Cut(a, "=")
	if !ok || name == "" || file == "" {
		return nil, fmt.Errorf("%w: -m wants name=file, got %q", cli.ErrUsage, a)
	}
	cfg.mods = append(cfg.mods, overlayArg{mod: name, file: file})
	return nil, nil
}

func mergeCmd(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: merge takes no positional arguments, use -base and -m", cli.ErrUsage)
	}
	if len(cfg.mods) == 0 {
		return fmt.Errorf("%w: merge needs at least one -m name=file overlay", cli.ErrUsage)
	}
	strategy, err := strategyOf(cfg.Strategy)
	if err != nil {
		return err
	}

	var base *ir.Node
	if cfg.Base != "" {
		d, err := readArg(cfg.Base)
		if err != nil {
			return err
		}
		base, err = parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", cfg.Base, err)
		}
	}
	overlays := make([]merge.Overlay, 0, len(cfg.mods))
	for _, m := range cfg.mods {
		d, err := readArg(m.file)
		if err != nil {
			return err
		}
		root, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s (%s): %w", m.file, m.mod, err)
		}
		overlays = append(overlays, merge.Overlay{Mod: m.mod, Root: root})
	}

	merged, conflicts, err := merge.Merge(base, overlays, merge.WithStrategy(strategy))
	if err != nil {
		return err
	}
	if err := encode.Encode(merged, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding merged result: %w", err)
	}

	if cfg.Filter != "" {
		prg, err := report.CompileFilter(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		conflicts, err = report.Filter(conflicts, prg)
		if err != nil {
			return err
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	w, closeW, err := cfg.reportWriter()
	if err != nil {
		return err
	}
	defer closeW()
	if cfg.JSON {
		return report.WriteJSON(w, conflicts)
	}
	var rOpts []report.RenderOpt
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		rOpts = append(rOpts, report.RenderColors(true))
	}
	return report.Render(w, conflicts, rOpts...)
}

func (cfg *MergeConfig) reportWriter() (io.Writer, func() error, error) {
	if cfg.Report == "" || cfg.Report == "-" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.Report, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func strategyOf(name string) (merge.Strategy, error) {
	switch name {
	case "", "last":
		return merge.LastWins{}, nil
	case "first":
		return merge.FirstWins{}, nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q, want last or first", cli.ErrUsage, name)
}
