package paramset_test

import "go.fenwick.dev/paramset"

// fakeAtom, fakeTable, and fakeSeq are the smallest possible stand-ins for
// a parsed configuration document (see [paramset.Node]) -- enough to drive
// [paramset.Table.Validate] and friends without depending on a real parser
// front end.

type fakeAtom struct {
	raw string
}

func (fakeAtom) NodeKind() paramset.NodeKind { return paramset.NodeAtom }
func (a fakeAtom) Raw() string               { return a.raw }

type fakeTable struct {
	order    []string
	children map[string]paramset.Node
}

func newFakeTable() *fakeTable {
	return &fakeTable{children: make(map[string]paramset.Node)}
}

func (t *fakeTable) set(name string, n paramset.Node) *fakeTable {
	if _, ok := t.children[name]; !ok {
		t.order = append(t.order, name)
	}

	t.children[name] = n

	return t
}

func (t *fakeTable) NodeKind() paramset.NodeKind { return paramset.NodeTable }
func (t *fakeTable) Keys() []string              { return t.order }

func (t *fakeTable) Get(name string) (paramset.Node, bool) {
	n, ok := t.children[name]
	return n, ok
}

type fakeSeq struct {
	elems []paramset.Node
}

func (fakeSeq) NodeKind() paramset.NodeKind { return paramset.NodeSequence }
func (s fakeSeq) Len() int                  { return len(s.elems) }
func (s fakeSeq) At(i int) paramset.Node    { return s.elems[i] }
