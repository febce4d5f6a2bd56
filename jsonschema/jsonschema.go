// Package jsonschema renders a paramset schema tree as a JSON Schema
// document, using [go.fenwick.dev/paramset.Walk] as its only entry point
// into the tree -- it is a second, independent consumer of the same
// traversal [paramset.Visitor] that [paramset.Table.PrintAllowedConfiguration]
// uses, proving the schema engine's output isn't tied to one renderer.
package jsonschema

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"go.fenwick.dev/paramset"
)

// goKindToJSONType maps an [paramset.AtomParam.GoKind] result to its JSON
// Schema primitive type.
var goKindToJSONType = map[string]string{
	"bool":    "boolean",
	"int":     "integer",
	"int8":    "integer",
	"int16":   "integer",
	"int32":   "integer",
	"int64":   "integer",
	"uint":    "integer",
	"uint8":   "integer",
	"uint16":  "integer",
	"uint32":  "integer",
	"uint64":  "integer",
	"float32": "number",
	"float64": "number",
	"string":  "string",
}

// Export walks root and returns the equivalent JSON Schema document. Every
// [paramset.Table] becomes an object schema, every [paramset.SequenceParam]
// and [paramset.TupleParam] becomes an array schema, and every
// [paramset.AtomParam] becomes a typed scalar schema. Comments become
// `description`, and members without a default (and not [Param.IsOptional])
// are listed in `required`.
func Export(root paramset.TableParam) *jsonschema.Schema {
	e := &exporter{}
	paramset.Walk(e, root)

	return e.result
}

// exporter implements [paramset.Visitor], building a [jsonschema.Schema]
// tree in lockstep with the traversal by keeping a stack of in-progress
// parent schemas mirroring the visitor's own call stack.
type exporter struct {
	stack  []*jsonschema.Schema
	result *jsonschema.Schema
}

func (e *exporter) BeforeAction(paramset.Param) bool { return true }

func (e *exporter) AfterAction(paramset.Param) {}

func (e *exporter) top() *jsonschema.Schema {
	if len(e.stack) == 0 {
		return nil
	}

	return e.stack[len(e.stack)-1]
}

func (e *exporter) attach(p paramset.Param, s *jsonschema.Schema) {
	s.Description = p.ParamComment()

	parent := e.top()
	if parent == nil {
		e.result = s
		return
	}

	switch {
	case parent.Properties != nil:
		parent.Properties[p.ParamName()] = s
		parent.PropertyOrder = append(parent.PropertyOrder, p.ParamName())

		if !p.HasDefault() && !p.IsOptional() {
			parent.Required = append(parent.Required, p.ParamName())
		}
	case parent.Type == "array":
		// Sequences are homogeneous, so the first element's schema speaks
		// for all of them. Tuples are heterogeneous; representing each
		// slot's distinct type needs a prefix-items construct this
		// renderer doesn't emit, so a tuple's Items reflects only its
		// first element (see DESIGN.md).
		if parent.Items == nil {
			parent.Items = s
		}
	default:
		panic(fmt.Errorf("%w: jsonschema export: parent schema is neither object nor array", paramset.ErrCantHappen))
	}
}

// falseSchema validates nothing; it marks a table closed to extra keys,
// matching [paramset.Table.Validate]'s own [paramset.ErrExtra] rule.
func falseSchema() *jsonschema.Schema { return &jsonschema.Schema{Not: &jsonschema.Schema{}} }

func (e *exporter) EnterTable(t paramset.TableParam) {
	s := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema),
		AdditionalProperties: falseSchema(),
	}

	e.attach(t, s)
	e.stack = append(e.stack, s)
}

func (e *exporter) ExitTable(paramset.TableParam) {
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *exporter) EnterSequence(s paramset.ElementsParam) {
	schema := &jsonschema.Schema{Type: "array"}
	e.attach(s, schema)
	e.stack = append(e.stack, schema)
}

func (e *exporter) ExitSequence(paramset.ElementsParam) {
	e.stack = e.stack[:len(e.stack)-1]
}

func (e *exporter) Atom(a paramset.AtomParam) {
	s := &jsonschema.Schema{Type: goKindToJSONType[a.GoKind()]}
	e.attach(a, s)
}
