package report

import (
	"fmt"
	"io"

	"github.com/pdxmerge/pdx-format/go-pdx/merge"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type renderOpts struct {
	color bool
}

type RenderOpt func(*renderOpts)

// RenderColors enables ANSI coloring of the rendered report.
func RenderColors(on bool) RenderOpt {
	return func(o *renderOpts) { o.color = on }
}

// Render writes a human-readable conflict report. Each conflict shows
// its path, kind, the base value when present, every contribution in
// priority order, and the resolution with an inline character diff
// against the base.
func Render(w io.Writer, conflicts []merge.Conflict, opts ...RenderOpt) error {
	o := &renderOpts{}
	for _, opt := range opts {
		opt(o)
	}
	pathc := sprintf(o.color, color.New(color.FgHiWhite, color.Bold))
	kindc := sprintf(o.color, color.New(color.FgMagenta))
	modc := sprintf(o.color, color.New(color.FgCyan))
	resc := sprintf(o.color, color.New(color.FgGreen))

	for i := range conflicts {
		c := &conflicts[i]
		if _, err := fmt.Fprintf(w, "%s %s conflict\n",
			pathc("%s:", c.Path.String()), kindc("%s", c.Kind.String())); err != nil {
			return err
		}
		if c.Base != nil {
			if _, err := fmt.Fprintf(w, "  %s %s\n", modc("%-12s", "base"), *c.Base); err != nil {
				return err
			}
		}
		for _, contrib := range c.Contribs {
			if _, err := fmt.Fprintf(w, "  %s %s\n", modc("%-12s", contrib.Mod), contrib.Value); err != nil {
				return err
			}
		}
		res := c.Resolved
		if o.color && c.Base != nil {
			res = inlineDiff(*c.Base, c.Resolved)
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", resc("%-12s", "resolved"), res); err != nil {
			return err
		}
	}
	return nil
}

// inlineDiff renders to with deletions from from struck through in red
// and insertions in green, so the change against the base reads at a
// glance.
func inlineDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	del := color.New(color.FgRed, color.CrossedOut).Sprintf
	ins := color.New(color.FgGreen).Sprintf
	var out []byte
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			out = append(out, del("%s", d.Text)...)
		case diffpatch.DiffInsert:
			out = append(out, ins("%s", d.Text)...)
		case diffpatch.DiffEqual:
			out = append(out, d.Text...)
		}
	}
	return string(out)
}

func sprintf(on bool, c *color.Color) func(string, ...any) string {
	if !on {
		return fmt.Sprintf
	}
	return c.Sprintf
}
