package paramset

import "fmt"

// Sequence is an ordered, homogeneous collection of child schema nodes of
// concrete type E, either bounded (fixed count known at schema build) or
// unbounded (acts as a "vector" with a single exemplar child used for
// shape and printing, until a document is bound).
type Sequence[E Param] struct {
	name       string
	key        string
	comment    string
	optional   bool
	hasDefault bool
	vector     bool
	elements   []E
	newElem    func(Name, int) E
}

// SeqOption configures a [Sequence] at construction time.
type SeqOption[E Param] func(*Sequence[E])

// WithSeqComment attaches documentation to a [Sequence].
func WithSeqComment[E Param](c Comment) SeqOption[E] {
	return func(s *Sequence[E]) { s.comment = string(c) }
}

// SeqOptional marks a [Sequence] as legal to omit from a document.
func SeqOptional[E Param]() SeqOption[E] {
	return func(s *Sequence[E]) { s.optional = true }
}

// BuildSeqFixed declares a fixed-size sequence named name with n children,
// each built by calling elem(IndexName(i), i) in turn; every child's key
// ends in "[i]". elem is typically a closure over NewAtom, BuildTable,
// BuildSeqFixed/BuildSeqVector, or BuildTuple.
func BuildSeqFixed[E Param](name Name, n int, elem func(Name, int) E, opts ...SeqOption[E]) *Sequence[E] {
	return buildSequence(name, n, false, elem, opts...)
}

// BuildSeqVector declares an unbounded sequence named name. At
// schema-build time exactly one exemplar child is constructed at key
// "[0]", used for shape validation and for printing; after [Sequence.Bind]
// runs it holds as many children as the document provided.
func BuildSeqVector[E Param](name Name, elem func(Name, int) E, opts ...SeqOption[E]) *Sequence[E] {
	return buildSequence(name, 1, true, elem, opts...)
}

func buildSequence[E Param](name Name, n int, vector bool, elem func(Name, int) E, opts ...SeqOption[E]) *Sequence[E] {
	s := &Sequence[E]{name: string(name), vector: vector, newElem: elem}

	parent, key := enterScope(name, s)
	s.key = key

	for _, opt := range opts {
		opt(s)
	}

	runScope(func() {
		s.elements = make([]E, n)
		for i := 0; i < n; i++ {
			s.elements[i] = elem(IndexName(i), i)
		}
	})

	s.hasDefault = allElementsHaveDefault(s.elements)

	defaultRegistry.enroll(parent, s)

	return s
}

func allElementsHaveDefault[E Param](elems []E) bool {
	for _, e := range elems {
		if !e.HasDefault() {
			return false
		}
	}

	return true
}

// ParamName implements [Param].
func (s *Sequence[E]) ParamName() string { return s.name }

// ParamKey implements [Param].
func (s *Sequence[E]) ParamKey() string { return s.key }

// ParamComment implements [Param].
func (s *Sequence[E]) ParamComment() string { return s.comment }

// HasDefault implements [Param]. A sequence has a default iff every
// element built at schema-build time does; [Sequence.Bind] does not
// recompute it.
func (s *Sequence[E]) HasDefault() bool { return s.hasDefault }

// IsOptional implements [Param].
func (s *Sequence[E]) IsOptional() bool { return s.optional }

// ParamKind implements [Param], returning [KindSeqFixed] or
// [KindSeqVector].
func (s *Sequence[E]) ParamKind() Kind {
	if s.vector {
		return KindSeqVector
	}

	return KindSeqFixed
}

// Size returns the current number of elements.
func (s *Sequence[E]) Size() int { return len(s.elements) }

// IsVector reports whether this is an unbounded (vector) sequence.
func (s *Sequence[E]) IsVector() bool { return s.vector }

// TypedElements returns the sequence's children with their concrete type
// E, in index order.
func (s *Sequence[E]) TypedElements() []E { return s.elements }

// Elements implements [SequenceParam].
func (s *Sequence[E]) Elements() []Param {
	out := make([]Param, len(s.elements))
	for i, e := range s.elements {
		out[i] = e
	}

	return out
}

// Bind reads the sequence's elements from a parsed document node. For a
// fixed sequence it fails with [ErrWrongSize] if doc's length disagrees
// with the declared size. For a vector sequence, it first re-derives the
// element list to doc's length (re-invoking the same per-element factory
// used at schema-build time, so shape stays identical to the exemplar),
// re-entering this sequence's own construction scope exactly as
// [buildSequence] does so each rebuilt element's key is still prefixed by
// this sequence's key and re-registers as this sequence's child rather than
// the registry's root sentinel, then binds each child; it fails with an
// aggregated wrapping of each element's error on any per-child failure.
func (s *Sequence[E]) Bind(doc SequenceNode) error {
	n := doc.Len()

	if !s.vector {
		if n != len(s.elements) {
			return fieldErr(s.key, fmt.Errorf("%w: want %d, got %d", ErrWrongSize, len(s.elements), n))
		}
	} else {
		defaultRegistry.resetChildren(s)

		elems := make([]E, n)

		enterBoundScope(s)
		runScope(func() {
			for i := 0; i < n; i++ {
				elems[i] = s.newElem(IndexName(i), i)
			}
		})

		s.elements = elems
	}

	var errs []*FieldError

	for i, e := range s.elements {
		if err := bindParam(e, doc.At(i)); err != nil {
			errs = append(errs, flattenFieldErrors(err)...)
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
