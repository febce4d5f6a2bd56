package document

import (
	"fmt"
	"io"

	kdl "github.com/sblinch/kdl-go"
	kdldoc "github.com/sblinch/kdl-go/document"

	"go.fenwick.dev/paramset"
)

// seqElementName is the KDL node name convention for an anonymous sequence
// or tuple element, e.g.:
//
//	points {
//	    - 1 2
//	    - 3 4
//	}
const seqElementName = "-"

// FromKDL parses r as a KDL document and returns its top-level nodes as an
// implicit root [Table].
func FromKDL(r io.Reader) (*Table, error) {
	doc, err := kdl.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing kdl document: %w", err)
	}

	return kdlTable(doc.Nodes), nil
}

func kdlTable(nodes []*kdldoc.Node) *Table {
	t := NewTable()
	for _, n := range nodes {
		t.Set(n.Name.ValueString(), kdlNode(n))
	}

	return t
}

// kdlNode converts a single KDL node into the document tree shape its
// contents imply:
//
//   - no children, no properties, zero or one argument: a scalar [Value].
//   - no children, no properties, more than one argument: a [Sequence] of
//     scalars, one per argument (e.g. `numbers 1 2 3`).
//   - children all named "-": a [Sequence] of whatever those children are.
//   - children otherwise, or properties present (e.g. `key=value` syntax):
//     a [Table] keyed by child name, with any properties added as further
//     table entries.
func kdlNode(n *kdldoc.Node) paramset.Node {
	switch {
	case len(n.Children) > 0 && isSequenceChildren(n.Children):
		elems := make([]paramset.Node, len(n.Children))
		for i, c := range n.Children {
			elems[i] = kdlNode(c)
		}

		return NewSequence(elems...)

	case len(n.Children) > 0 || n.Properties.Exist():
		return kdlTableWithProperties(n)

	case len(n.Arguments) > 1:
		elems := make([]paramset.Node, len(n.Arguments))
		for i, a := range n.Arguments {
			elems[i] = NewValue(a.ValueString())
		}

		return NewSequence(elems...)

	case len(n.Arguments) == 1:
		return NewValue(n.Arguments[0].ValueString())

	default:
		return NewValue("")
	}
}

// kdlTableWithProperties builds a [Table] from n's children, then adds n's
// properties (KDL's `key=value` syntax) as further table entries.
func kdlTableWithProperties(n *kdldoc.Node) *Table {
	t := kdlTable(n.Children)
	for name, v := range n.Properties.Unordered() {
		t.Set(name, NewValue(v.ValueString()))
	}

	return t
}

func isSequenceChildren(children []*kdldoc.Node) bool {
	for _, c := range children {
		if c.Name.ValueString() != seqElementName {
			return false
		}
	}

	return true
}
