package querybuilder

import (
	"strconv"
	"strings"

	"github.com/wundergraph/graphql-browser/pkg/introspection"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

const typeNameField = "__typename"

// QueryNode is one selected field. Field carries the definition used to type
// the bound arguments. A non-empty NodeType wraps the children in an inline
// fragment on that type.
type QueryNode struct {
	FieldName string
	Args      pathspec.Arguments
	Field     introspection.FieldDef
	NodeType  string
	Children  []*QueryNode

	isNodeQuery bool
}


// QueryTree is the selection set of the query root.
type QueryTree struct {
	Children []*QueryNode
}

type variables struct {
	names  []string
	types  []string
	values map[string]interface{}
}

// add binds a fresh variable for every value, identical values included.
func (v *variables) add(value interface{}, typeDef introspection.TypeDef) string {
	name := "var" + strconv.Itoa(len(v.names))
	if v.values == nil {
		v.values = make(map[string]interface{})
	}
	v.names = append(v.names, name)
	v.types = append(v.types, typeDef.String())
	v.values[name] = value
	return name
}

// Serialize renders the query document and the values of its variables.
// vars is nil when no argument was bound.
func (t *QueryTree) Serialize() (queryStr string, vars map[string]interface{}, err error) {
	vs := &variables{}
	body := &strings.Builder{}
	if err := serializeSelectionSet(body, t.Children, vs); err != nil {
		return "", nil, err
	}

	out := &strings.Builder{}
	out.WriteString("query ")
	if len(vs.names) != 0 {
		out.WriteString("(")
		for i, name := range vs.names {
			if i != 0 {
				out.WriteString(", ")
			}
			out.WriteString("$")
			out.WriteString(name)
			out.WriteString(": ")
			out.WriteString(vs.types[i])
		}
		out.WriteString(") ")
	}
	out.WriteString(body.String())

	return out.String(), vs.values, nil
}

func serializeSelectionSet(out *strings.Builder, nodes []*QueryNode, vs *variables) error {
	out.WriteString("{ ")
	for i, node := range nodes {
		if i != 0 {
			out.WriteString(" ")
		}
		if err := node.serialize(out, vs); err != nil {
			return err
		}
	}
	out.WriteString(" }")
	return nil
}

func (n *QueryNode) serialize(out *strings.Builder, vs *variables) error {
	if n.isNodeQuery && n.NodeType == "" {
		return &MissingNodeTypeError{FieldName: n.FieldName}
	}

	out.WriteString(n.FieldName)

	if len(n.Args) != 0 {
		out.WriteString("(")
		for i, arg := range n.Args {
			argDef, ok := n.Field.Arg(arg.Name)
			if !ok {
				return &ArgNotFoundError{FieldName: n.FieldName, ArgumentName: arg.Name}
			}
			if i != 0 {
				out.WriteString(", ")
			}
			out.WriteString(arg.Name)
			out.WriteString(": $")
			out.WriteString(vs.add(arg.Value, argDef.Type))
		}
		out.WriteString(")")
	}

	if len(n.Children) == 0 {
		return nil
	}

	out.WriteString(" ")
	if n.NodeType == "" {
		return serializeSelectionSet(out, n.Children, vs)
	}

	out.WriteString("{ ... on ")
	out.WriteString(n.NodeType)
	out.WriteString(" ")
	if err := serializeSelectionSet(out, n.Children, vs); err != nil {
		return err
	}
	out.WriteString(" }")
	return nil
}
