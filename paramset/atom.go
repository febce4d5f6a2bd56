package paramset

import (
	"fmt"
	"reflect"
	"strconv"
)

// AtomValue is the closed set of scalar kinds an [Atom] may hold. It
// deliberately excludes slices, maps, and other [Param] types: composing
// those requires [Sequence], [Tuple], or [Table] instead, and the Go type
// system rejects any other T at the Atom's declaration site -- this is the
// idiomatic-Go form of the source's NO_STD_CONTAINERS / NO_NESTED_FHICL_TYPES
// static assertions.
type AtomValue interface {
	~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Atom is a schema leaf holding a single typed value of type T.
type Atom[T AtomValue] struct {
	name       string
	key        string
	comment    string
	optional   bool
	hasDefault bool
	set        bool
	value      T
	stringify  func(T) string
	coerce     func(string) (T, error)
}

// AtomOption configures an [Atom] at construction time.
type AtomOption[T AtomValue] func(*Atom[T])

// WithDefault gives an [Atom] a default value, making it non-required.
func WithDefault[T AtomValue](v T) AtomOption[T] {
	return func(a *Atom[T]) {
		a.value = v
		a.hasDefault = true
		a.set = true
	}
}

// WithAtomComment attaches documentation to an [Atom].
func WithAtomComment[T AtomValue](c Comment) AtomOption[T] {
	return func(a *Atom[T]) {
		a.comment = string(c)
	}
}

// Optional marks an [Atom] as legal to omit from a document without a
// validation error, even though it carries no default.
func Optional[T AtomValue]() AtomOption[T] {
	return func(a *Atom[T]) {
		a.optional = true
	}
}

// WithStringify overrides how the atom's value is rendered by
// [Table.PrintAllowedConfiguration]. The default uses fmt.Sprint.
func WithStringify[T AtomValue](f func(T) string) AtomOption[T] {
	return func(a *Atom[T]) {
		a.stringify = f
	}
}

// WithCoercion overrides how a raw document value converts to T. The
// default handles every kind in the [AtomValue] type set via strconv.
func WithCoercion[T AtomValue](f func(string) (T, error)) AtomOption[T] {
	return func(a *Atom[T]) {
		a.coerce = f
	}
}

// NewAtom declares an atomic leaf parameter named name in the currently
// constructing scope (the enclosing [BuildTable]/[BuildSeqFixed]/
// [BuildSeqVector]/[BuildTuple] callback, or process root if none is
// active). Any combination of [WithDefault], [WithAtomComment], [Optional],
// [WithStringify], and [WithCoercion] may be supplied.
func NewAtom[T AtomValue](name Name, opts ...AtomOption[T]) *Atom[T] {
	a := &Atom[T]{}

	parent := defaultRegistry.topSelf()
	a.key = childKey(defaultRegistry.topKey(), name)
	a.name = string(name)

	for _, opt := range opts {
		opt(a)
	}

	defaultRegistry.enroll(parent, a)

	return a
}

// ParamName implements [Param].
func (a *Atom[T]) ParamName() string { return a.name }

// ParamKey implements [Param].
func (a *Atom[T]) ParamKey() string { return a.key }

// ParamComment implements [Param].
func (a *Atom[T]) ParamComment() string { return a.comment }

// HasDefault implements [Param].
func (a *Atom[T]) HasDefault() bool { return a.hasDefault }

// IsOptional implements [Param].
func (a *Atom[T]) IsOptional() bool { return a.optional }

// ParamKind implements [Param].
func (a *Atom[T]) ParamKind() Kind { return KindAtom }

// Get returns the atom's current value. It returns [ErrUnset] wrapped in a
// [FieldError] if the atom has neither a default nor a bound value.
func (a *Atom[T]) Get() (T, error) {
	var zero T

	if !a.set {
		return zero, fieldErr(a.key, ErrUnset)
	}

	return a.value, nil
}

// Stringify implements [AtomParam]. It yields the current value's textual
// form, or a type placeholder token (e.g. "<int>") when neither a default
// nor a bound value is present.
func (a *Atom[T]) Stringify() string {
	if !a.set {
		return fmt.Sprintf("<%s>", atomTypeName[T]())
	}

	if a.stringify != nil {
		return a.stringify(a.value)
	}

	return fmt.Sprint(a.value)
}

// Bind reads the atom's value from a parsed document node, coercing it to
// T. It fails with [ErrCoercion] on mismatch.
func (a *Atom[T]) Bind(n AtomNode) error {
	var (
		v   T
		err error
	)

	if a.coerce != nil {
		v, err = a.coerce(n.Raw())
	} else {
		v, err = coerceAtom[T](n.Raw())
	}

	if err != nil {
		return fieldErr(a.key, fmt.Errorf("%w: %w", ErrCoercion, err))
	}

	a.value = v
	a.set = true

	return nil
}

// GoKind implements [AtomParam].
func (a *Atom[T]) GoKind() string { return atomTypeName[T]() }

// atomTypeName returns the placeholder token used by Stringify for an
// unset Atom[T]: the reflect kind name, e.g. "int64" for int64, "string"
// for string.
func atomTypeName[T AtomValue]() string {
	var zero T

	return reflect.TypeOf(zero).Kind().String()
}

// coerceAtom converts a raw document string into T using reflection over
// the closed [AtomValue] kind set. Numeric parsing and string escaping are
// explicitly out of this package's scope (see spec.md §1); this is the
// default, stdlib-only implementation, overridable per-Atom via
// [WithCoercion].
func coerceAtom[T AtomValue](raw string) (T, error) {
	var zero T

	rv := reflect.ValueOf(&zero).Elem()

	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, err
		}

		rv.SetBool(b)

	case reflect.String:
		rv.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return zero, err
		}

		rv.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return zero, err
		}

		rv.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return zero, err
		}

		rv.SetFloat(f)

	default:
		return zero, fmt.Errorf("unsupported atom kind %s", rv.Kind())
	}

	return zero, nil
}
