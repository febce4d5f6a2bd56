package paramset

// ElementsParam is satisfied by both [SequenceParam] and [TupleParam]: the
// source's ParameterWalker treats fixed sequences, vector sequences, and
// tuples identically (a Tuple is, structurally, a fixed sequence with
// per-index types), dispatching enter_sequence/exit_sequence for all
// three. [Visitor] does the same here.
type ElementsParam interface {
	Param
	Elements() []Param
}

// Visitor is a double-dispatch walker over a fully built schema tree. Per
// node, in declaration order:
//
//	before_action(p)                      -- may veto the subtree
//	  table:     EnterTable(t); walk each member; ExitTable(t)
//	  sequence:  EnterSequence(s); walk each element; ExitSequence(s)
//	  atom:      Atom(a)
//	after_action(p)
//
// EnterTable, EnterSequence, and Atom are the required callbacks; the
// others default to no-ops via the embeddable [BaseVisitor].
type Visitor interface {
	// BeforeAction is called before any category-specific action. Return
	// false to skip the subtree (and the matching AfterAction) entirely.
	BeforeAction(p Param) bool
	// AfterAction is called after the category-specific action, including
	// after a table's or sequence's children have all been walked.
	AfterAction(p Param)
	// EnterTable is called before a table's members are walked.
	EnterTable(t TableParam)
	// ExitTable is called after a table's members have all been walked.
	ExitTable(t TableParam)
	// EnterSequence is called before a sequence's (or tuple's) elements
	// are walked.
	EnterSequence(s ElementsParam)
	// ExitSequence is called after a sequence's (or tuple's) elements
	// have all been walked.
	ExitSequence(s ElementsParam)
	// Atom is called for each leaf node.
	Atom(a AtomParam)
}

// BaseVisitor supplies no-op defaults for the optional [Visitor] methods.
// Embed it in a concrete visitor and override only the hooks that matter.
type BaseVisitor struct{}

// BeforeAction implements [Visitor] with the default: never veto.
func (BaseVisitor) BeforeAction(Param) bool { return true }

// AfterAction implements [Visitor] with a no-op default.
func (BaseVisitor) AfterAction(Param) {}

// ExitTable implements [Visitor] with a no-op default.
func (BaseVisitor) ExitTable(TableParam) {}

// ExitSequence implements [Visitor] with a no-op default.
func (BaseVisitor) ExitSequence(ElementsParam) {}

// Walk traverses the schema tree rooted at p, invoking v's callbacks.
// p may be nil, in which case Walk is a no-op. A node whose reported
// [Param.ParamKind] does not match any capability interface it actually
// implements is an unreachable internal invariant violation: Walk panics
// with a *[FieldError] wrapping [ErrCantHappen] rather than silently
// skipping it.
func Walk(v Visitor, p Param) {
	if p == nil || !v.BeforeAction(p) {
		return
	}

	switch p.ParamKind() {
	case KindTable:
		t, ok := p.(TableParam)
		if !ok {
			panic(fieldErr(p.ParamKey(), ErrCantHappen))
		}

		v.EnterTable(t)

		for _, m := range t.Members() {
			Walk(v, m)
		}

		v.ExitTable(t)

	case KindSeqFixed, KindSeqVector, KindTuple:
		s, ok := p.(ElementsParam)
		if !ok {
			panic(fieldErr(p.ParamKey(), ErrCantHappen))
		}

		v.EnterSequence(s)

		for _, e := range s.Elements() {
			Walk(v, e)
		}

		v.ExitSequence(s)

	case KindAtom:
		a, ok := p.(AtomParam)
		if !ok {
			panic(fieldErr(p.ParamKey(), ErrCantHappen))
		}

		v.Atom(a)

	default:
		panic(fieldErr(p.ParamKey(), ErrCantHappen))
	}

	v.AfterAction(p)
}
