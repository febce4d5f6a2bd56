package paramset

// atomBinder is satisfied by every Atom[T] regardless of T.
type atomBinder interface {
	Bind(AtomNode) error
}

// seqBinder is satisfied by every Sequence[E] regardless of E.
type seqBinder interface {
	Bind(SequenceNode) error
}

// bindParam is the validation binder (spec §4.10) shared by
// [Table.Validate], [Sequence.Bind], and [Tuple.Bind]: given one schema
// node and the document node found at its key, it checks that the
// document's shape agrees with the node's [Kind] and then binds or
// recurses as appropriate. Downcasting is driven entirely by p.ParamKind(),
// mirroring the double-dispatch in [Visitor]; a mismatch between a node's
// reported Kind and its concrete type is a [ErrCantHappen] invariant
// violation, not a validation failure.
func bindParam(p Param, n Node) error {
	switch p.ParamKind() {
	case KindAtom:
		an, ok := n.(AtomNode)
		if !ok {
			return fieldErr(p.ParamKey(), ErrWrongKind)
		}

		b, ok := p.(atomBinder)
		if !ok {
			return fieldErr(p.ParamKey(), ErrCantHappen)
		}

		return b.Bind(an)

	case KindTable:
		tn, ok := n.(TableNode)
		if !ok {
			return fieldErr(p.ParamKey(), ErrWrongKind)
		}

		tbl, ok := p.(*Table)
		if !ok {
			return fieldErr(p.ParamKey(), ErrCantHappen)
		}

		return tbl.Validate(tn, nil)

	case KindSeqFixed, KindSeqVector:
		sn, ok := n.(SequenceNode)
		if !ok {
			return fieldErr(p.ParamKey(), ErrWrongKind)
		}

		b, ok := p.(seqBinder)
		if !ok {
			return fieldErr(p.ParamKey(), ErrCantHappen)
		}

		return b.Bind(sn)

	case KindTuple:
		sn, ok := n.(SequenceNode)
		if !ok {
			return fieldErr(p.ParamKey(), ErrWrongKind)
		}

		tup, ok := p.(*Tuple)
		if !ok {
			return fieldErr(p.ParamKey(), ErrCantHappen)
		}

		return tup.Bind(sn)

	default:
		return fieldErr(p.ParamKey(), ErrCantHappen)
	}
}
