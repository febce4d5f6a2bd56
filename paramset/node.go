package paramset

// NodeKind tags the shape of a parsed configuration document node, mirroring
// the three-way shape in [Param]'s own [Kind] taxonomy (tables and tuples
// both present as [NodeTable] or [NodeSequence] from the document's point of
// view; only the schema distinguishes fixed-heterogeneous from
// fixed-homogeneous).
type NodeKind int

const (
	// NodeAtom is a single scalar value.
	NodeAtom NodeKind = iota
	// NodeTable is a named aggregation of child nodes.
	NodeTable
	// NodeSequence is an ordered collection of child nodes.
	NodeSequence
)

// Node is the abstract configuration document tree the schema engine
// validates against and binds from. It is produced by an external parser
// collaborator -- see [go.fenwick.dev/paramset/document] for KDL and YAML
// front ends -- and is never mutated by this package.
type Node interface {
	// NodeKind reports this node's shape.
	NodeKind() NodeKind
}

// AtomNode is a [Node] wrapping a single scalar value in its raw textual
// form. Coercion to a concrete Go type happens in [Atom.Bind].
type AtomNode interface {
	Node
	// Raw returns the node's raw textual value.
	Raw() string
}

// TableNode is a [Node] aggregating named children. Keys returns the
// document's declared key order so validation can report extras in source
// order.
type TableNode interface {
	Node
	// Keys returns this table's member names in document order.
	Keys() []string
	// Get looks up a member by name.
	Get(name string) (Node, bool)
}

// SequenceNode is a [Node] holding an ordered list of children.
type SequenceNode interface {
	Node
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i.
	At(i int) Node
}
