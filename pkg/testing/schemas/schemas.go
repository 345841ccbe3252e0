// Package schemas provides introspection documents of small test schemas.
//
//	no_node             type Query { foo: String }
//	node                node(id: ID!): Node, interface Node, type MyType implements Node
//	node_of_wrong_type  node(id: ID!): String
//	query_builder       rootField(foo: ID!, bar: String): SimpleObject, input SimpleInput
//	                    (wrapped in a {"data": ...} response envelope)
//	configuration       type Object { field: String, nestedObject: Object }
//	library             libraries, books and authors with node support, enums,
//	                    input objects and a union
package schemas

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wundergraph/graphql-browser/pkg/introspection"
)

const (
	NoNode          = "no_node"
	Node            = "node"
	NodeOfWrongType = "node_of_wrong_type"
	QueryBuilder    = "query_builder"
	Configuration   = "configuration"
	Library         = "library"
)

//go:embed testdata/*.json
var documents embed.FS

func Bytes(t testing.TB, name string) []byte {
	t.Helper()

	content, err := documents.ReadFile("testdata/" + name + ".json")
	require.NoError(t, err)
	return content
}

func Load(t testing.TB, name string) *introspection.Introspection {
	t.Helper()

	schema, err := introspection.ParseBytes(Bytes(t, name))
	require.NoError(t, err)
	return schema
}
