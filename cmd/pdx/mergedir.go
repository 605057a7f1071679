package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdxmerge/pdx-format/go-pdx/batch"
	"github.com/pdxmerge/pdx-format/go-pdx/encode"
	"github.com/pdxmerge/pdx-format/go-pdx/merge"
	"github.com/pdxmerge/pdx-format/go-pdx/report"

	"github.com/scott-cotton/cli"
)

type MergeDirConfig struct {
	*MainConfig

	Base     string `cli:"name=base desc='base game directory'"`
	Dest     string `cli:"name=dest desc='destination directory for merged files'"`
	Strategy string `cli:"name=strategy desc='conflict strategy: last, first'"`
	Jobs     int    `cli:"name=jobs desc='max files merged in parallel (0 = all CPUs)'"`
	JSON     bool   `cli:"name=json desc='emit the conflict report as JSON'"`

	mods []overlayArg

	MergeDir *cli.Command
}

func NewMergeDirConfig(mainCfg *MainConfig) *MergeDirConfig {
	cfg := &MergeDirConfig{MainConfig: mainCfg}
	envCfg, err := ParseEnvConfig()
	if err == nil {
		cfg.Strategy = envCfg.Strategy
		cfg.Jobs = envCfg.Jobs
	}
	return cfg
}

func (cfg *MergeDirConfig) modOpt(cc *cli.Context, a string) (any, error) {
	name, dir, ok := strings.Cut(a, "=")
	if !ok || name == "" || dir == "" {
		return nil, fmt.Errorf("%w: -m wants name=dir, got %q", cli.ErrUsage, a)
	}
	cfg.mods = append(cfg.mods, overlayArg{mod: name, file: dir})
	return nil, nil
}

func MergeDirCommand(mainCfg *MainConfig) *cli.Command {
	cfg := NewMergeDirConfig(mainCfg)
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "m",
		Aliases:     []string{"mod"},
		Description: "overlay directory in priority order, lowest first; repeatable",
		Type:        cli.NamedFuncOpt(cfg.modOpt, "(name=dir)"),
	})
	return cli.NewCommandAt(&cfg.MergeDir, "mergedir").
		WithAliases("md").
		WithSynopsis("mergedir -base dir -m name=dir [-m name2=dir2 ...] -dest out").
		WithDescription(`mergedir merges every script file across a base directory and
overlay directories, matching files by relative path. Merged files land
under -dest; the combined conflict report goes to the command output.`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeDir(cfg, cc, args)
		})
}

func mergeDir(cfg *MergeDirConfig, cc *cli.Context, args []string) error {
	args, err := cfg.MergeDir.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: mergedir takes no positional arguments", cli.ErrUsage)
	}
	if len(cfg.mods) == 0 {
		return fmt.Errorf("%w: mergedir needs at least one -m name=dir overlay", cli.ErrUsage)
	}
	if cfg.Dest == "" {
		return fmt.Errorf("%w: mergedir needs -dest", cli.ErrUsage)
	}
	strategy, err := strategyOf(cfg.Strategy)
	if err != nil {
		return err
	}

	files, err := collectFiles(cfg)
	if err != nil {
		return err
	}
	var bOpts []batch.Option
	if cfg.Jobs > 0 {
		bOpts = append(bOpts, batch.Concurrency(cfg.Jobs))
	}
	bOpts = append(bOpts, batch.MergeOptions(merge.WithStrategy(strategy)))
	results, err := batch.Run(context.Background(), files, bOpts...)
	if err != nil {
		return err
	}

	var allConflicts []merge.Conflict
	bad := 0
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "%v\n", res.Err)
			continue
		}
		dst := filepath.Join(cfg.Dest, filepath.FromSlash(res.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
		if err != nil {
			return err
		}
		err = encode.Encode(res.Merged, f, encode.EncodeWire(cfg.WireOut))
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("error writing %s: %w", dst, err)
		}
		for _, c := range res.Conflicts {
			c.Path = append([]string{res.Path}, c.Path...)
			allConflicts = append(allConflicts, c)
		}
	}
	if len(allConflicts) > 0 {
		if cfg.JSON {
			if err := report.WriteJSON(cc.Out, allConflicts); err != nil {
				return err
			}
		} else if err := report.Render(cc.Out, allConflicts); err != nil {
			return err
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// collectFiles gathers the union of relative paths across the base and
// overlay directories and pairs each path with every source that has
// it. An overlay directory must exist; the base directory may be
// empty or missing for total-conversion setups.
func collectFiles(cfg *MergeDirConfig) ([]batch.File, error) {
	byPath := map[string]*batch.File{}
	var order []string

	add := func(dir string) (map[string][]byte, error) {
		texts := map[string][]byte{}
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dir, p)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			data, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			texts[rel] = data
			if _, ok := byPath[rel]; !ok {
				byPath[rel] = &batch.File{Path: rel}
				order = append(order, rel)
			}
			return nil
		})
		return texts, err
	}

	if cfg.Base != "" {
		baseTexts, err := add(cfg.Base)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		for rel, data := range baseTexts {
			byPath[rel].Base = data
		}
	}
	for _, m := range cfg.mods {
		texts, err := add(m.file)
		if err != nil {
			return nil, err
		}
		for rel, data := range texts {
			f := byPath[rel]
			f.Overlays = append(f.Overlays, batch.Source{Mod: m.mod, Text: data})
		}
	}

	sort.Strings(order)
	files := make([]batch.File, 0, len(order))
	for _, rel := range order {
		files = append(files, *byPath[rel])
	}
	return files, nil
}
