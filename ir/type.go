package ir

type Type int

const (
	ScalarType Type = iota
	BlockType
)

func (t Type) String() string {
	switch t {
	case ScalarType:
		return "scalar"
	case BlockType:
		return "block"
	}
	return "<unknown>"
}

func Types() []Type {
	return []Type{ScalarType, BlockType}
}

// Kind classifies a scalar token so that it can be re-serialized
// unambiguously (quoting, numeric form).
type Kind int

const (
	IdentKind Kind = iota
	StringKind
	NumberKind
	BoolKind
	DateKind
)

func (k Kind) String() string {
	switch k {
	case IdentKind:
		return "ident"
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	case DateKind:
		return "date"
	}
	return "<unknown>"
}

// Op is the operator between a key and its value. Operators are
// preserved verbatim and never normalized: `?=` and the comparison
// forms carry distinct script semantics.
type Op int

const (
	OpEq Op = iota // =
	OpQEq          // ?=
	OpLt           // <
	OpGt           // >
	OpLe           // <=
	OpGe           // >=
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpQEq:
		return "?="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	}
	return "<op?>"
}
