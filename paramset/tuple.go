package paramset

import "fmt"

// Tuple is a fixed-size, heterogeneous, positionally-indexed collection of
// child schema nodes. Structurally it is a fixed sequence with per-index
// types; unlike [Sequence], its elements need not share a concrete Go
// type, so they are stored as the [Param] interface.
type Tuple struct {
	name       string
	key        string
	comment    string
	optional   bool
	hasDefault bool
	elements   []Param
}

// TupleOption configures a [Tuple] at construction time.
type TupleOption func(*Tuple)

// WithTupleComment attaches documentation to a [Tuple].
func WithTupleComment(c Comment) TupleOption {
	return func(t *Tuple) { t.comment = string(c) }
}

// TupleOptional marks a [Tuple] as legal to omit from a document.
func TupleOptional() TupleOption {
	return func(t *Tuple) { t.optional = true }
}

// BuildTuple declares a tuple parameter named name with one child per
// factory in elems, called in order as elems[i](IndexName(i)); every
// child's key ends in "[i]". Each factory is typically a closure over
// NewAtom, BuildTable, BuildSeqFixed/BuildSeqVector, or a nested
// BuildTuple, allowing per-index heterogeneous types.
func BuildTuple(name Name, elems []func(Name) Param, opts ...TupleOption) *Tuple {
	t := &Tuple{name: string(name)}

	parent, key := enterScope(name, t)
	t.key = key

	for _, opt := range opts {
		opt(t)
	}

	runScope(func() {
		t.elements = make([]Param, len(elems))
		for i, factory := range elems {
			t.elements[i] = factory(IndexName(i))
		}
	})

	t.hasDefault = allHaveDefault(t.elements)

	defaultRegistry.enroll(parent, t)

	return t
}

// ParamName implements [Param].
func (t *Tuple) ParamName() string { return t.name }

// ParamKey implements [Param].
func (t *Tuple) ParamKey() string { return t.key }

// ParamComment implements [Param].
func (t *Tuple) ParamComment() string { return t.comment }

// HasDefault implements [Param]. A tuple has a default iff every element
// does.
func (t *Tuple) HasDefault() bool { return t.hasDefault }

// IsOptional implements [Param].
func (t *Tuple) IsOptional() bool { return t.optional }

// ParamKind implements [Param].
func (t *Tuple) ParamKind() Kind { return KindTuple }

// Size returns the tuple's declared arity, K.
func (t *Tuple) Size() int { return len(t.elements) }

// Elements implements [TupleParam].
func (t *Tuple) Elements() []Param { return t.elements }

// Bind reads the tuple's elements from a parsed document node. It fails
// with [ErrWrongSize] if doc's length disagrees with K, and with an
// aggregated wrapping of each element's error on any per-index failure.
func (t *Tuple) Bind(doc SequenceNode) error {
	if doc.Len() != len(t.elements) {
		return fieldErr(t.key, fmt.Errorf("%w: want %d, got %d", ErrWrongSize, len(t.elements), doc.Len()))
	}

	var errs []*FieldError

	for i, e := range t.elements {
		if err := bindParam(e, doc.At(i)); err != nil {
			errs = append(errs, flattenFieldErrors(err)...)
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
