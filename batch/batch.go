package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pdxmerge/pdx-format/go-pdx/debug"
	"github.com/pdxmerge/pdx-format/go-pdx/ir"
	"github.com/pdxmerge/pdx-format/go-pdx/merge"
	"github.com/pdxmerge/pdx-format/go-pdx/parse"

	"golang.org/x/sync/errgroup"
)

// Source is one mod's text for a file path.
type Source struct {
	Mod  string
	Text []byte
}

// File is one relative path to merge: the base game's text plus every
// mod's version, in load-order priority.
type File struct {
	Path     string
	Base     []byte // nil when the base game has no file at Path
	Overlays []Source
}

// Result is the outcome for one file. Err is set when any source text
// failed to parse or the merge exceeded the depth limit; Merged and
// Conflicts are valid otherwise.
type Result struct {
	Path      string
	Merged    *ir.Node
	Conflicts []merge.Conflict
	Err       error
}

type runOpts struct {
	concurrency int
	mergeOpts   []merge.Option
}

type Option func(*runOpts)

// Concurrency bounds the number of files merged in parallel. The
// default is GOMAXPROCS.
func Concurrency(n int) Option {
	return func(o *runOpts) { o.concurrency = n }
}

// MergeOptions forwards options to every per-file merge.
func MergeOptions(opts ...merge.Option) Option {
	return func(o *runOpts) { o.mergeOpts = opts }
}

// Run merges every file concurrently. Results come back in input
// order. A file whose sources fail to parse gets an error Result and
// does not affect the other files; Run itself only fails when the
// context is canceled.
func Run(ctx context.Context, files []File, opts ...Option) ([]Result, error) {
	o := &runOpts{concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(o)
	}
	results := make([]Result, len(files))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.concurrency)
	for i := range files {
		f := &files[i]
		res := &results[i]
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			*res = runOne(f, o.mergeOpts)
			if debug.Batch() {
				debug.Logf("batch: %s done (%d conflicts, err=%v)\n",
					res.Path, len(res.Conflicts), res.Err)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(f *File, mergeOpts []merge.Option) Result {
	res := Result{Path: f.Path}
	var base *ir.Node
	if f.Base != nil {
		root, err := parse.Parse(f.Base)
		if err != nil {
			res.Err = fmt.Errorf("%s: base: %w", f.Path, err)
			return res
		}
		base = root
	}
	overlays := make([]merge.Overlay, 0, len(f.Overlays))
	for _, src := range f.Overlays {
		root, err := parse.Parse(src.Text)
		if err != nil {
			res.Err = fmt.Errorf("%s: %s: %w", f.Path, src.Mod, err)
			return res
		}
		overlays = append(overlays, merge.Overlay{Mod: src.Mod, Root: root})
	}
	merged, conflicts, err := merge.Merge(base, overlays, mergeOpts...)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", f.Path, err)
		return res
	}
	res.Merged = merged
	res.Conflicts = conflicts
	return res
}
