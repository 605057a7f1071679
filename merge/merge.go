package merge

import (
	"errors"
	"fmt"

	"github.com/pdxmerge/pdx-format/go-pdx/debug"
	"github.com/pdxmerge/pdx-format/go-pdx/encode"
	"github.com/pdxmerge/pdx-format/go-pdx/ir"
)

// BaseOrigin is the origin tag attached to entries contributed by the
// base file.
const BaseOrigin = "base"

// DefaultMaxDepth bounds merge recursion, mirroring the parser's
// nesting limit.
const DefaultMaxDepth = 256

var ErrDepth = errors.New("merge nesting depth limit exceeded")

// Overlay is one mod's version of a file, applied on top of the base
// in priority order: later overlays win ties.
type Overlay struct {
	Mod  string
	Root *ir.Node
}

type Option func(*merger)

func WithStrategy(s Strategy) Option {
	return func(m *merger) { m.strategy = s }
}

func MaxDepth(n int) Option {
	return func(m *merger) { m.maxDepth = n }
}

// Merge combines a base tree with an ordered list of overlay trees
// into a new merged tree plus a conflict report. base may be nil when
// no source file defines this path; the first overlay then acts as
// the effective base. Inputs are never mutated.
//
// The only error condition is nesting beyond the depth limit; all
// disagreements between well-formed trees become Conflict records.
func Merge(base *ir.Node, overlays []Overlay, opts ...Option) (*ir.Node, []Conflict, error) {
	m := &merger{
		strategy: LastWins{},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(m)
	}
	sources := make([]src, 0, len(overlays)+1)
	if base != nil {
		sources = append(sources, src{origin: BaseOrigin, prio: -1, node: base})
	} else {
		if len(overlays) == 0 {
			return ir.Block(), nil, nil
		}
		sources = append(sources, src{origin: overlays[0].Mod, prio: 0, node: overlays[0].Root})
		overlays = overlays[1:]
	}
	for i, ov := range overlays {
		sources = append(sources, src{origin: ov.Mod, prio: i + 1, node: ov.Root})
	}
	merged, err := m.mergeBlock(nil, 0, sources)
	if err != nil {
		return nil, nil, err
	}
	return merged, m.conflicts, nil
}

type merger struct {
	strategy  Strategy
	maxDepth  int
	conflicts []Conflict
}

// src is one input block at the current recursion level, with the
// origin tag and priority of the tree it came from.
type src struct {
	origin string
	prio   int // -1 for the base tree
	node   *ir.Node
}

// member is one source's entry within an aligned group.
type member struct {
	origin string
	prio   int
	entry  *ir.Entry
}

// group is the set of entries, one per source at most, aligned to the
// same override target: same key path and same ordinal occurrence for
// keyed entries, semantic equality for bare list items.
type group struct {
	key     string
	hasKey  bool
	ord     int // ordinal occurrence of key among siblings
	members []member
}

// mergeBlock aligns the entries of the source blocks and resolves
// each aligned group into one merged entry. Source order: the base
// block first, then overlays by ascending priority.
func (m *merger) mergeBlock(path ir.Path, depth int, sources []src) (*ir.Node, error) {
	if depth > m.maxDepth {
		return nil, fmt.Errorf("%w (%d) at %q", ErrDepth, m.maxDepth, path.String())
	}
	var (
		groups   []*group
		keyCount = map[string]int{}
	)
	for si, s := range sources {
		if s.node == nil || s.node.Type != ir.BlockType {
			// parser output is blocks all the way down; anything
			// else is a programming error upstream
			panic(fmt.Sprintf("merge: non-block source at %q", path.String()))
		}
		effBase := si == 0
		seen := map[string]int{}
		for _, e := range s.node.Entries {
			mem := member{origin: s.origin, prio: s.prio, entry: e}
			if !e.HasKey {
				// the (effective) base keeps every item, duplicates
				// included; overlay items union in by equality
				if !effBase {
					if g := findItemGroup(groups, e); g != nil {
						g.members = append(g.members, mem)
						continue
					}
				}
				groups = append(groups, &group{members: []member{mem}})
				continue
			}
			j := seen[e.Key]
			seen[e.Key]++
			if g := findKeyGroup(groups, e.Key, j); g != nil {
				g.members = append(g.members, mem)
				continue
			}
			ord := keyCount[e.Key]
			keyCount[e.Key]++
			groups = append(groups, &group{key: e.Key, hasKey: true, ord: ord, members: []member{mem}})
		}
	}
	res := ir.Block()
	for _, g := range groups {
		entry, err := m.resolveGroup(path, depth, g)
		if err != nil {
			return nil, err
		}
		res.Entries = append(res.Entries, entry)
	}
	return res, nil
}

// findKeyGroup returns the group holding the ord-th occurrence of key,
// if any source aligned it already.
func findKeyGroup(groups []*group, key string, ord int) *group {
	for _, g := range groups {
		if g.hasKey && g.key == key && g.ord == ord {
			return g
		}
	}
	return nil
}

// findItemGroup matches a bare list item against existing item groups
// by semantic equality (post-parse token equality, not raw text).
func findItemGroup(groups []*group, e *ir.Entry) *group {
	for _, g := range groups {
		if g.hasKey {
			continue
		}
		if ir.Compare(g.members[0].entry.Value, e.Value) == 0 {
			return g
		}
	}
	return nil
}

// resolveGroup turns one aligned group into a merged entry, recording
// conflicts as it goes.
func (m *merger) resolveGroup(path ir.Path, depth int, g *group) (*ir.Entry, error) {
	if !g.hasKey {
		// bare list items within a group are equal by construction
		res := g.members[0].entry.Clone()
		res.Origins = groupOrigins(g.members)
		return res, nil
	}

	eff := g.members[0]
	var differing []member
	for _, mem := range g.members[1:] {
		if !sameEntry(eff.entry, mem.entry) {
			differing = append(differing, mem)
		}
	}
	childPath := path.Child(g.key, g.ord)

	if len(differing) == 0 {
		res := eff.entry.Clone()
		res.Origins = groupOrigins(g.members)
		return res, nil
	}

	if structural(eff, differing) {
		return m.resolveConflict(childPath, StructuralConflict, g, eff, differing)
	}

	if eff.entry.Value.IsBlock() {
		// all differing values are blocks too: union interiors
		// recursively; every member participates so nested origin
		// tags stay complete
		subSources := make([]src, 0, len(g.members))
		for _, mem := range g.members {
			subSources = append(subSources, src{origin: mem.origin, prio: mem.prio, node: mem.entry.Value})
		}
		val, err := m.mergeBlock(childPath, depth+1, subSources)
		if err != nil {
			return nil, err
		}
		return &ir.Entry{
			Key:     g.key,
			HasKey:  true,
			Op:      eff.entry.Op,
			Value:   val,
			Origins: groupOrigins(g.members),
		}, nil
	}

	// scalar leaf: a single distinct differing value is the common
	// independent-edit case and is accepted silently
	if distinctValues(differing) == 1 {
		winner := differing[len(differing)-1]
		res := winner.entry.Clone()
		res.Origins = memberOrigins(g.members, winner)
		if debug.Merge() {
			debug.Logf("merge: %s <- %s (independent edit by %s)\n",
				childPath.String(), valueText(winner.entry), winner.origin)
		}
		return res, nil
	}
	return m.resolveConflict(childPath, ValueConflict, g, eff, differing)
}

// resolveConflict records a conflict and resolves it via the
// configured strategy. The effective base joins the contribution list
// when it is itself an overlay (pure-addition groups).
func (m *merger) resolveConflict(path ir.Path, kind Kind, g *group, eff member, differing []member) (*ir.Entry, error) {
	c := Conflict{Path: path, Kind: kind}
	candidates := make([]member, 0, len(differing)+1)
	if eff.prio < 0 {
		baseText := valueText(eff.entry)
		c.Base = &baseText
	} else {
		candidates = append(candidates, eff)
	}
	candidates = append(candidates, differing...)
	for _, mem := range candidates {
		c.Contribs = append(c.Contribs, Contribution{Mod: mem.origin, Value: valueText(mem.entry)})
	}
	choice := m.strategy.Choose(&c)
	if choice < 0 || choice >= len(candidates) {
		choice = len(candidates) - 1
	}
	winner := candidates[choice]
	c.Resolved = valueText(winner.entry)
	m.conflicts = append(m.conflicts, c)
	if debug.Merge() {
		debug.Logf("merge: %s conflict at %s resolved to %s (%s)\n",
			kind, path.String(), c.Resolved, winner.origin)
	}
	res := winner.entry.Clone()
	res.Origins = memberOrigins(g.members, winner)
	return res, nil
}

// structural reports whether the aligned values disagree on scalar
// versus block shape.
func structural(eff member, differing []member) bool {
	isBlock := eff.entry.Value.IsBlock()
	for _, mem := range differing {
		if mem.entry.Value.IsBlock() != isBlock {
			return true
		}
	}
	return false
}

// sameEntry is alignment equality: operator plus semantic value.
func sameEntry(a, b *ir.Entry) bool {
	return a.Op == b.Op && ir.Compare(a.Value, b.Value) == 0
}

// distinctValues counts distinct (operator, value) pairs among the
// differing members.
func distinctValues(differing []member) int {
	n := 0
	for i, mem := range differing {
		dup := false
		for _, prev := range differing[:i] {
			if sameEntry(prev.entry, mem.entry) {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

// groupOrigins unions the origin tags of every member, preserving
// first-seen order.
func groupOrigins(members []member) []string {
	res := make([]string, 0, len(members))
	for _, mem := range members {
		if !containsOrigin(res, mem.origin) {
			res = append(res, mem.origin)
		}
	}
	return res
}

// memberOrigins collects the origins of members whose entry equals
// the winner's.
func memberOrigins(members []member, winner member) []string {
	var res []string
	for _, mem := range members {
		if sameEntry(mem.entry, winner.entry) && !containsOrigin(res, mem.origin) {
			res = append(res, mem.origin)
		}
	}
	return res
}

func containsOrigin(origins []string, o string) bool {
	for _, x := range origins {
		if x == o {
			return true
		}
	}
	return false
}

// valueText renders an entry's value for conflict reporting: compact
// wire form, braces restored around blocks, a non-default operator
// kept visible.
func valueText(e *ir.Entry) string {
	text := encode.MustWire(e.Value)
	if e.Value.IsBlock() {
		if len(e.Value.Entries) == 0 {
			text = "{}"
		} else {
			text = "{ " + text + " }"
		}
	}
	if e.HasKey && e.Op != ir.OpEq {
		return e.Op.String() + " " + text
	}
	return text
}
