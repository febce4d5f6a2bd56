// Package document provides concrete implementations of the paramset
// document contract ([paramset.Node], [paramset.AtomNode],
// [paramset.TableNode], [paramset.SequenceNode]) along with adapters that
// build them from real configuration formats (KDL, YAML).
//
// paramset never parses configuration text itself; it only walks whatever
// tree an adapter in this package hands it. Swap the format by swapping the
// adapter — the schema and its validation logic never change.
package document

import "go.fenwick.dev/paramset"

// Value is a leaf document node: a single scalar in its raw textual form,
// exactly as paramset's Atom coercion expects to receive it.
type Value struct {
	raw string
}

// NewValue wraps raw as a leaf document node.
func NewValue(raw string) *Value {
	return &Value{raw: raw}
}

func (*Value) NodeKind() paramset.NodeKind { return paramset.NodeAtom }

// Raw returns the scalar's unparsed textual representation.
func (v *Value) Raw() string { return v.raw }

// Table is an ordered name-to-node mapping. Declaration order is preserved
// so that extra-key diagnostics can reference source order rather than map
// iteration order.
type Table struct {
	order    []string
	children map[string]paramset.Node
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{children: make(map[string]paramset.Node)}
}

// Set inserts or replaces the child named name, returning t for chaining.
func (t *Table) Set(name string, n paramset.Node) *Table {
	if _, exists := t.children[name]; !exists {
		t.order = append(t.order, name)
	}

	t.children[name] = n

	return t
}

func (*Table) NodeKind() paramset.NodeKind { return paramset.NodeTable }

// Keys returns the child names in declaration order.
func (t *Table) Keys() []string { return t.order }

// Get returns the named child, if present.
func (t *Table) Get(name string) (paramset.Node, bool) {
	n, ok := t.children[name]
	return n, ok
}

// Sequence is an ordered list of document nodes.
type Sequence struct {
	elems []paramset.Node
}

// NewSequence wraps elems as a document sequence, in order.
func NewSequence(elems ...paramset.Node) *Sequence {
	return &Sequence{elems: elems}
}

func (*Sequence) NodeKind() paramset.NodeKind { return paramset.NodeSequence }

// Len returns the number of elements.
func (s *Sequence) Len() int { return len(s.elems) }

// At returns the element at index i.
func (s *Sequence) At(i int) paramset.Node { return s.elems[i] }
