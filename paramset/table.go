package paramset

import (
	"io"
	"strings"
)

// Table is a named aggregation of heterogeneous child schema nodes. It is
// the root of most user schemas.
type Table struct {
	name       string
	key        string
	comment    string
	optional   bool
	hasDefault bool
	members    []Param
}

// TableOption configures a [Table] at construction time.
type TableOption func(*Table)

// WithTableComment attaches documentation to a [Table].
func WithTableComment(c Comment) TableOption {
	return func(t *Table) { t.comment = string(c) }
}

// TableOptional marks a [Table] as legal to omit from a document.
func TableOptional() TableOption {
	return func(t *Table) { t.optional = true }
}

// BuildTable declares a table parameter named name. build is called
// immediately, in the scope of the table being constructed: every Atom,
// Table, Sequence, or Tuple it declares (directly, or indirectly through
// further Build* calls) becomes a member of this table, keyed
// name.memberName. This is the Go rendering of the source's construction
// pattern, where a language with member-initializer-list semantics nests
// child construction inside the parent's constructor body automatically;
// Go has no such hook, so the nesting is made explicit via the callback.
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
func BuildTable(name Name, build func(), opts ...TableOption) *Table {
	t := &Table{name: string(name)}

	parent, key := enterScope(name, t)
	t.key = key

	for _, opt := range opts {
		opt(t)
	}

	runScope(build)

	t.members = defaultRegistry.childrenOf(t)
	t.hasDefault = allHaveDefault(t.members)

	defaultRegistry.enroll(parent, t)

	return t
}

// ParamName implements [Param].
func (t *Table) ParamName() string { return t.name }

// ParamKey implements [Param].
func (t *Table) ParamKey() string { return t.key }

// ParamComment implements [Param].
func (t *Table) ParamComment() string { return t.comment }

// HasDefault implements [Param]. A table has a default iff every member
// does.
func (t *Table) HasDefault() bool { return t.hasDefault }

// IsOptional implements [Param].
func (t *Table) IsOptional() bool { return t.optional }

// ParamKind implements [Param].
func (t *Table) ParamKind() Kind { return KindTable }

// Members implements [TableParam], returning children in declaration
// order.
func (t *Table) Members() []Param { return t.members }

// memberByName looks up a direct member by its bare name.
func (t *Table) memberByName(name string) (Param, bool) {
	for _, m := range t.members {
		if m.ParamName() == name {
			return m, true
		}
	}

	return nil, false
}

// ValidateOption configures a single [Table.Validate] call.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	trimParents bool
}

// WithTrimParents validates doc against the subtree rooted at this table:
// every reported [FieldError.Key] has the table's own key (and everything
// above it) stripped, as if the table were itself the document's root.
// Use this when doc is a fragment that corresponds only to this table, not
// the whole schema tree the table happens to be nested inside of.
func WithTrimParents() ValidateOption {
	return func(c *validateConfig) { c.trimParents = true }
}

// Validate walks doc and this table's schema in parallel, reporting every
// missing required member, every extra document key not covered by
// ignoredKeys, every kind mismatch, and every atom coercion failure. All
// deviations are collected and returned together as a *[ValidationError]
// wrapping [ErrInvalidDocument]; on success, every atom, sequence, and
// tuple member is bound from doc.
func (t *Table) Validate(doc TableNode, ignoredKeys map[string]bool, opts ...ValidateOption) error {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var errs []*FieldError

	seen := make(map[string]bool, len(t.members))

	for _, m := range t.members {
		seen[m.ParamName()] = true

		child, ok := doc.Get(m.ParamName())
		if !ok {
			if !m.HasDefault() && !m.IsOptional() {
				errs = append(errs, fieldErr(m.ParamKey(), ErrMissingRequired))
			}

			continue
		}

		if err := bindParam(m, child); err != nil {
			errs = append(errs, flattenFieldErrors(err)...)
		}
	}

	for _, k := range doc.Keys() {
		if seen[k] || ignoredKeys[k] {
			continue
		}

		errs = append(errs, fieldErr(childKey(t.key, Name(k)), ErrExtra))
	}

	if cfg.trimParents {
		for _, fe := range errs {
			fe.Key = trimKeyPrefix(fe.Key, t.key)
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

// trimKeyPrefix strips base (and its following separator) from the front of
// key. Every descendant key is guaranteed to carry its ancestor's key as a
// literal prefix (spec's key-prefix invariant), so this is exact rather than
// best-effort: key == base yields "", and a descendant key loses base and
// the "." that follows it. A key that does not start with base+"." is
// returned unchanged.
func trimKeyPrefix(key, base string) string {
	if base == "" {
		return key
	}

	if key == base {
		return ""
	}

	return strings.TrimPrefix(key, base+".")
}

// PrintAllowedConfiguration renders this table's schema (spec §4.9) to w
// in document syntax, with comments, defaults, optional markers, and
// ellipses for unbounded sequences. indentPrefix seeds the root indent
// level. A [Printer]-reported [ErrLogic] (a vector sequence with other
// than one exemplar, which only happens if printing runs after a
// document has been bound into the tree) is returned as an error rather
// than left to propagate as a panic.
func (t *Table) PrintAllowedConfiguration(w io.Writer, indentPrefix string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(*FieldError)
			if !ok {
				panic(r)
			}

			err = fe
		}
	}()

	p := NewPrinter(indentPrefix)
	Walk(p, t)

	_, err = io.WriteString(w, p.String())

	return err
}

// allHaveDefault reports whether every node in kids has a default (an
// empty slice vacuously does).
func allHaveDefault(kids []Param) bool {
	for _, k := range kids {
		if !k.HasDefault() {
			return false
		}
	}

	return true
}

// flattenFieldErrors unwraps err into its constituent *FieldError values,
// whether it is a single FieldError or an aggregated ValidationError
// produced by a nested Table's own Validate call.
func flattenFieldErrors(err error) []*FieldError {
	switch e := err.(type) {
	case *FieldError:
		return []*FieldError{e}
	case *ValidationError:
		return e.Errors
	default:
		return []*FieldError{fieldErr("", err)}
	}
}
