package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.fenwick.dev/paramset"
	"go.fenwick.dev/paramset/document"
)

func TestValueRaw(t *testing.T) {
	v := document.NewValue("42")

	assert.Equal(t, paramset.NodeAtom, v.NodeKind())
	assert.Equal(t, "42", v.Raw())
}

func TestTablePreservesDeclarationOrder(t *testing.T) {
	tbl := document.NewTable().
		Set("zebra", document.NewValue("z")).
		Set("apple", document.NewValue("a")).
		Set("zebra", document.NewValue("z2"))

	assert.Equal(t, paramset.NodeTable, tbl.NodeKind())
	assert.Equal(t, []string{"zebra", "apple"}, tbl.Keys(), "re-setting an existing key must not move it")

	v, ok := tbl.Get("apple")
	assert.True(t, ok)
	assert.Equal(t, "a", v.(*document.Value).Raw())

	v, ok = tbl.Get("zebra")
	assert.True(t, ok)
	assert.Equal(t, "z2", v.(*document.Value).Raw())

	_, ok = tbl.Get("missing")
	assert.False(t, ok)
}

func TestSequenceOrderAndLength(t *testing.T) {
	seq := document.NewSequence(
		document.NewValue("1"),
		document.NewValue("2"),
		document.NewValue("3"),
	)

	assert.Equal(t, paramset.NodeSequence, seq.NodeKind())
	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, "2", seq.At(1).(*document.Value).Raw())
}
