package paramset

// Kind tags the category a schema node belongs to. Every [Param]
// implementation reports exactly one Kind, and the traversal [Visitor]
// downcasts on it rather than relying on a type switch over concrete types,
// so new Param implementations only need to satisfy the right sub-interface.
type Kind int

const (
	// KindAtom marks a leaf node wrapping a single typed value.
	KindAtom Kind = iota
	// KindTable marks a named aggregation of heterogeneous members.
	KindTable
	// KindSeqFixed marks a fixed-size homogeneous sequence.
	KindSeqFixed
	// KindSeqVector marks an unbounded homogeneous sequence.
	KindSeqVector
	// KindTuple marks a fixed-size heterogeneous sequence.
	KindTuple
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindTable:
		return "table"
	case KindSeqFixed:
		return "sequence"
	case KindSeqVector:
		return "sequence"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// IsTable reports whether k is [KindTable].
func IsTable(k Kind) bool { return k == KindTable }

// IsSequence reports whether k is [KindSeqFixed] or [KindSeqVector].
func IsSequence(k Kind) bool { return k == KindSeqFixed || k == KindSeqVector }

// IsTuple reports whether k is [KindTuple].
func IsTuple(k Kind) bool { return k == KindTuple }

// IsAtom reports whether k is [KindAtom].
func IsAtom(k Kind) bool { return k == KindAtom }

// Name is a schema node's bare identifier segment, as supplied by the
// caller constructing it. The empty-root sentinel used internally to anchor
// top-level construction is never a legal user-supplied Name.
type Name string

// Comment is free-form, possibly multi-line, documentation attached to a
// schema node. It is rendered as `# `-prefixed lines by [Table.PrintAllowedConfiguration].
type Comment string

// Param is the capability set every schema node exposes, regardless of
// category. Category-specific behavior (enumerating children, stringifying
// a value, binding from a document) lives on the narrower interfaces
// [TableParam], [SequenceParam], [TupleParam], and [AtomParam]; [Visitor]
// downcasts to those using [Param.ParamKind].
type Param interface {
	// ParamName returns the node's local identifier segment.
	ParamName() string
	// ParamKey returns the node's full dotted-plus-bracketed path.
	ParamKey() string
	// ParamComment returns the node's documentation, or "" if none.
	ParamComment() string
	// HasDefault reports whether this node, and every descendant, has a
	// default value.
	HasDefault() bool
	// IsOptional reports whether this node may be absent from a document
	// without producing a validation error.
	IsOptional() bool
	// ParamKind returns the node's category tag.
	ParamKind() Kind
}

// TableParam is the capability set of [KindTable] nodes.
type TableParam interface {
	Param
	// Members returns this table's children in declaration order.
	Members() []Param
}

// SequenceParam is the capability set of [KindSeqFixed] and [KindSeqVector]
// nodes.
type SequenceParam interface {
	Param
	// Elements returns this sequence's children in index order.
	Elements() []Param
}

// TupleParam is the capability set of [KindTuple] nodes.
type TupleParam interface {
	Param
	// Elements returns this tuple's children in index order.
	Elements() []Param
}

// AtomParam is the capability set of [KindAtom] nodes.
type AtomParam interface {
	Param
	// Stringify renders the atom's current value, or a type placeholder
	// token (e.g. "<int>") if unset and without a default.
	Stringify() string
	// GoKind returns the underlying scalar's kind name (e.g. "bool",
	// "int64", "string"), for consumers that reconstruct a type
	// description without coercing a value -- see
	// [go.fenwick.dev/paramset/jsonschema].
	GoKind() string
}

// IsSequenceElement reports whether key ends in `]`, i.e. whether the node
// it names is a positional child of a [Sequence] or [Tuple].
func IsSequenceElement(key string) bool {
	return len(key) > 0 && key[len(key)-1] == ']'
}
