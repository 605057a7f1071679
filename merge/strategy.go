package merge

// Strategy picks the winning contribution of a conflict. The chosen
// index is recorded as the conflict's resolution; alignment and
// conflict detection are unaffected by the strategy in use.
type Strategy interface {
	Choose(c *Conflict) int
}

// LastWins resolves to the highest-priority overlay (the last in the
// overlays sequence). This is the default.
type LastWins struct{}

func (LastWins) Choose(c *Conflict) int { return len(c.Contribs) - 1 }

// FirstWins resolves to the lowest-priority overlay.
type FirstWins struct{}

func (FirstWins) Choose(c *Conflict) int { return 0 }
