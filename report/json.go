package report

import (
	"encoding/json"
	"io"

	"github.com/pdxmerge/pdx-format/go-pdx/merge"
)

type contribJSON struct {
	Mod   string `json:"mod"`
	Value string `json:"value"`
}

type conflictJSON struct {
	Path     string        `json:"path"`
	Kind     string        `json:"kind"`
	Base     *string       `json:"base,omitempty"`
	Contribs []contribJSON `json:"contributions"`
	Resolved string        `json:"resolved"`
}

// WriteJSON emits the conflicts as a JSON array, one object per
// conflict, in the order they were detected.
func WriteJSON(w io.Writer, conflicts []merge.Conflict) error {
	out := make([]conflictJSON, 0, len(conflicts))
	for i := range conflicts {
		c := &conflicts[i]
		cj := conflictJSON{
			Path:     c.Path.String(),
			Kind:     c.Kind.String(),
			Base:     c.Base,
			Resolved: c.Resolved,
			Contribs: make([]contribJSON, 0, len(c.Contribs)),
		}
		for _, contrib := range c.Contribs {
			cj.Contribs = append(cj.Contribs, contribJSON{Mod: contrib.Mod, Value: contrib.Value})
		}
		out = append(out, cj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
