package paramset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.fenwick.dev/paramset"
)

// countingVisitor records which node names it saw, in visit order, and can
// veto an entire subtree by name.
type countingVisitor struct {
	paramset.BaseVisitor

	veto  string
	order []string
}

func (v *countingVisitor) BeforeAction(p paramset.Param) bool {
	return p.ParamName() != v.veto
}

func (v *countingVisitor) EnterTable(tp paramset.TableParam) {
	v.order = append(v.order, "enter:"+tp.ParamName())
}

func (v *countingVisitor) EnterSequence(sp paramset.ElementsParam) {
	v.order = append(v.order, "enter:"+sp.ParamName())
}

func (v *countingVisitor) Atom(ap paramset.AtomParam) {
	v.order = append(v.order, "atom:"+ap.ParamName())
}

func TestWalkVisitsInDeclarationOrder(t *testing.T) {
	paramset.ClearRegistry()

	root := paramset.BuildTable("root", func() {
		paramset.NewAtom[int]("first")
		paramset.BuildSeqFixed("mid", 1, func(n paramset.Name, _ int) *paramset.Atom[int] {
			return paramset.NewAtom[int](n)
		})
		paramset.NewAtom[int]("last")
	})

	v := &countingVisitor{}
	paramset.Walk(v, root)

	assert.Equal(t, []string{
		"enter:root",
		"atom:first",
		"enter:mid",
		"atom:[0]",
		"atom:last",
	}, v.order)
}

func TestWalkBeforeActionVetoesSubtree(t *testing.T) {
	paramset.ClearRegistry()

	root := paramset.BuildTable("root", func() {
		paramset.NewAtom[int]("visible")
		paramset.BuildTable("skipped", func() {
			paramset.NewAtom[int]("hidden")
		})
	})

	v := &countingVisitor{veto: "skipped"}
	paramset.Walk(v, root)

	assert.Contains(t, v.order, "atom:visible")
	assert.NotContains(t, v.order, "enter:skipped")
	assert.NotContains(t, v.order, "atom:hidden")
}

func TestWalkCantHappenIsUnreachableInPractice(t *testing.T) {
	paramset.ClearRegistry()

	a := paramset.NewAtom[int]("solo")

	v := &countingVisitor{}
	require.NotPanics(t, func() { paramset.Walk(v, a) })
	assert.Equal(t, []string{"atom:solo"}, v.order)
}
