package parse

// DefaultMaxDepth bounds block nesting. Real script files nest a
// handful of levels; the limit exists to reject pathological input
// before it can exhaust the stack.
const DefaultMaxDepth = 256

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
