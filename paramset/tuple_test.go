package paramset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.fenwick.dev/paramset"
)

func TestTupleHeterogeneousConstruction(t *testing.T) {
	paramset.ClearRegistry()

	var count *paramset.Atom[int]
	var ratio *paramset.Atom[float64]
	var name *paramset.Atom[string]

	tup := paramset.BuildTuple("tuple", []func(paramset.Name) paramset.Param{
		func(n paramset.Name) paramset.Param { count = paramset.NewAtom[int](n); return count },
		func(n paramset.Name) paramset.Param { ratio = paramset.NewAtom[float64](n); return ratio },
		func(n paramset.Name) paramset.Param { name = paramset.NewAtom[string](n); return name },
	})

	require.Equal(t, 3, tup.Size())
	assert.Equal(t, "tuple[0]", count.ParamKey())
	assert.Equal(t, "tuple[1]", ratio.ParamKey())
	assert.Equal(t, "tuple[2]", name.ParamKey())
	assert.Equal(t, paramset.KindTuple, tup.ParamKind())
}

func TestTupleBindWrongSize(t *testing.T) {
	paramset.ClearRegistry()

	tup := paramset.BuildTuple("tuple", []func(paramset.Name) paramset.Param{
		func(n paramset.Name) paramset.Param { return paramset.NewAtom[int](n) },
		func(n paramset.Name) paramset.Param { return paramset.NewAtom[int](n) },
	})

	err := tup.Bind(fakeSeq{elems: []paramset.Node{fakeAtom{raw: "1"}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, paramset.ErrWrongSize))
}

func TestTupleBindSuccess(t *testing.T) {
	paramset.ClearRegistry()

	var a *paramset.Atom[int]
	var b *paramset.Atom[bool]

	tup := paramset.BuildTuple("tuple", []func(paramset.Name) paramset.Param{
		func(n paramset.Name) paramset.Param { a = paramset.NewAtom[int](n); return a },
		func(n paramset.Name) paramset.Param { b = paramset.NewAtom[bool](n); return b },
	})

	require.NoError(t, tup.Bind(fakeSeq{elems: []paramset.Node{
		fakeAtom{raw: "7"},
		fakeAtom{raw: "false"},
	}}))

	av, err := a.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, av)

	bv, err := b.Get()
	require.NoError(t, err)
	assert.False(t, bv)
}
