package report

import (
	"fmt"

	"github.com/pdxmerge/pdx-format/go-pdx/merge"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the expression environment of one conflict, as seen by
// filter expressions. Example filters:
//
//	kind == "structural"
//	"extra_mod" in mods
//	path startsWith "country_event"
type Env struct {
	Path     string   `expr:"path"`
	Kind     string   `expr:"kind"`
	Mods     []string `expr:"mods"`
	Base     string   `expr:"base"`
	Resolved string   `expr:"resolved"`
}

// CompileFilter compiles a boolean filter expression over conflict
// fields.
func CompileFilter(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", src, err)
	}
	return prg, nil
}

// Filter returns the conflicts matching the compiled expression, in
// their original order.
func Filter(conflicts []merge.Conflict, prg *vm.Program) ([]merge.Conflict, error) {
	var res []merge.Conflict
	for i := range conflicts {
		c := &conflicts[i]
		env := Env{
			Path:     c.Path.String(),
			Kind:     c.Kind.String(),
			Resolved: c.Resolved,
		}
		if c.Base != nil {
			env.Base = *c.Base
		}
		for _, contrib := range c.Contribs {
			env.Mods = append(env.Mods, contrib.Mod)
		}
		v, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("filter at %s: %w", env.Path, err)
		}
		if v.(bool) {
			res = append(res, *c)
		}
	}
	return res, nil
}
