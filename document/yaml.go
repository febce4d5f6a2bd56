package document

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"go.fenwick.dev/paramset"
)

// FromYAML parses r as a YAML document and returns its root mapping as a
// [Table]. Only the first document in a multi-document stream is used.
func FromYAML(r io.Reader) (*Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading yaml input: %w", err)
	}

	f, err := parser.ParseBytes(src, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing yaml document: %w", err)
	}

	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return NewTable(), nil
	}

	root := yamlNode(f.Docs[0].Body)

	tbl, ok := root.(*Table)
	if !ok {
		return nil, fmt.Errorf("%w: yaml document root is not a mapping", paramset.ErrWrongKind)
	}

	return tbl, nil
}

// yamlNode converts a single YAML AST node into the document tree shape its
// kind implies: mappings become [Table], sequences become [Sequence],
// everything else is a scalar [Value] using the node's literal source text.
func yamlNode(node ast.Node) paramset.Node {
	switch n := node.(type) {
	case *ast.MappingNode:
		return yamlTable(n.Values)
	case *ast.MappingValueNode:
		return yamlTable([]*ast.MappingValueNode{n})
	case *ast.SequenceNode:
		elems := make([]paramset.Node, len(n.Values))
		for i, v := range n.Values {
			elems[i] = yamlNode(v)
		}

		return NewSequence(elems...)
	default:
		return NewValue(node.String())
	}
}

func yamlTable(values []*ast.MappingValueNode) *Table {
	t := NewTable()
	for _, mvn := range values {
		t.Set(mvn.Key.String(), yamlNode(mvn.Value))
	}

	return t
}
