// Package paramset implements a typed, self-describing configuration schema
// for a hierarchical configuration document language: name/value pairs with
// nested tables and sequences.
//
// Consumers declare the shape of the configuration they accept by composing
// schema parameters -- atomic leaves ([Atom]), fixed or homogeneous
// sequences ([Sequence]), heterogeneous tuples ([Tuple]), and nested tables
// ([Table]). At schema-construction time the package builds a canonical set
// of fully-qualified parameter keys describing the expected shape. At
// validation time it walks a parsed configuration document (see package
// [go.fenwick.dev/paramset/document]) against that shape, reporting every
// deviation, and binds values into the schema's typed backing storage. It
// can also render the allowed configuration back out in document syntax,
// including defaults and comments, via [Table.PrintAllowedConfiguration].
//
// # Design Principles
//
//  1. Construction is bottom-up, traversal is top-down. Leaves are built
//     first and register themselves with their enclosing parent as their
//     constructor returns; [Table.Validate] and [Table.PrintAllowedConfiguration]
//     then walk the finished tree root-to-leaf via [Visitor].
//  2. No parameter owns a pointer to its container. A process-wide name
//     stack and schema registry reconstruct the parent/child relation from
//     construction order alone (see [Table], [registry]).
//  3. Fail loud at build time, fail complete at validate time. Misusing a
//     type parameter (nesting a schema type inside an [Atom], for example)
//     is rejected by the Go type system before a document is ever read.
//     Validating a bad document collects every deviation into one
//     [ValidationError] instead of stopping at the first.
//
// # Basic Usage
//
//	var cfg struct {
//		Host *paramset.Atom[string]
//		Port *paramset.Atom[int64]
//	}
//
//	tbl := paramset.BuildTable("server", func() {
//		cfg.Host = paramset.NewAtom[string]("host", paramset.WithDefault("localhost"))
//		cfg.Port = paramset.NewAtom[int64]("port")
//	})
//
//	err := tbl.Validate(doc, nil)
//	if err != nil {
//		var verr *paramset.ValidationError
//		if errors.As(err, &verr) {
//			for _, fe := range verr.Errors {
//				fmt.Println(fe)
//			}
//		}
//	}
//
// See [Table], [BuildTable] for the full construction pattern, including
// nested tables, sequences, and tuples.
package paramset
