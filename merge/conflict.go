package merge

import (
	"github.com/pdxmerge/pdx-format/go-pdx/ir"
)

type Kind int

const (
	// ValueConflict: two or more overlays assign different literal
	// values to the same aligned leaf.
	ValueConflict Kind = iota
	// StructuralConflict: sources disagree on whether an aligned
	// entry's value is a scalar or a block.
	StructuralConflict
)

func (k Kind) String() string {
	switch k {
	case ValueConflict:
		return "value"
	case StructuralConflict:
		return "structural"
	}
	return "<unknown>"
}

// Contribution is one overlay's value for a conflicted entry, in
// compact wire text.
type Contribution struct {
	Mod   string
	Value string
}

// Conflict records a disagreement between sources. Conflicts are
// outcomes, not errors: each one is resolved deterministically and
// reported with full provenance so an operator can override the
// automatic resolution.
type Conflict struct {
	Path     ir.Path
	Kind     Kind
	Base     *string        // base's value text; nil for pure additions
	Contribs []Contribution // differing overlay values, priority order
	Resolved string         // value text of the winner
}
