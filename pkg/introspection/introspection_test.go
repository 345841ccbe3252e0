package introspection_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/graphql-browser/pkg/introspection"
	"github.com/wundergraph/graphql-browser/pkg/testing/schemas"
)

func named(kind introspection.TypeKind, name string) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: kind, Name: &name}
}

func nonNull(ofType *introspection.TypeRef) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.NON_NULL, OfType: ofType}
}

func list(ofType *introspection.TypeRef) *introspection.TypeRef {
	return &introspection.TypeRef{Kind: introspection.LIST, OfType: ofType}
}

func TestExtractTypeInformation(t *testing.T) {
	str := func() *introspection.TypeRef { return named(introspection.SCALAR, "String") }

	testCases := []struct {
		typeStr        string
		ref            *introspection.TypeRef
		isNullable     bool
		isList         bool
		isListNullable bool
	}{
		{typeStr: "String", ref: str(), isNullable: true, isList: false, isListNullable: true},
		{typeStr: "String!", ref: nonNull(str()), isNullable: false, isList: false, isListNullable: true},
		{typeStr: "[String]", ref: list(str()), isNullable: true, isList: true, isListNullable: true},
		{typeStr: "[String!]", ref: list(nonNull(str())), isNullable: false, isList: true, isListNullable: true},
		{typeStr: "[String]!", ref: nonNull(list(str())), isNullable: true, isList: true, isListNullable: false},
		{typeStr: "[String!]!", ref: nonNull(list(nonNull(str()))), isNullable: false, isList: true, isListNullable: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run("should flatten "+testCase.typeStr, func(t *testing.T) {
			typeDef := introspection.ExtractTypeInformation(*testCase.ref)
			assert.Equal(t, introspection.TypeDef{
				Name:           "String",
				Kind:           introspection.SCALAR,
				IsNullable:     testCase.isNullable,
				IsList:         testCase.isList,
				IsListNullable: testCase.isListNullable,
			}, typeDef)
		})

		t.Run("should render "+testCase.typeStr, func(t *testing.T) {
			assert.Equal(t, testCase.typeStr, introspection.ExtractTypeInformation(*testCase.ref).String())
		})
	}
}

func TestIntrospection_GetObjectByTypeName(t *testing.T) {
	schema := schemas.Load(t, schemas.Library)

	t.Run("should flatten fields in declaration order", func(t *testing.T) {
		book, err := schema.GetObjectByTypeName("Book")
		require.NoError(t, err)
		assert.Equal(t, "Book", book.Name)

		names := make([]string, 0, len(book.Fields))
		for _, field := range book.Fields {
			names = append(names, field.Name)
		}
		assert.Equal(t, []string{"id", "title", "pages", "available", "genre", "author", "library", "keywords", "genres", "excerpt", "related"}, names)

		author, ok := book.Field("author")
		require.True(t, ok)
		assert.Equal(t, introspection.TypeDef{Name: "Author", Kind: introspection.OBJECT, IsNullable: false, IsListNullable: true}, author.Type)
	})

	t.Run("should require arguments only for non-null arguments without default", func(t *testing.T) {
		root, err := schema.GetRootObject()
		require.NoError(t, err)

		books, _ := root.Field("books")
		assert.False(t, books.RequiresArguments)
		first, ok := books.Arg("first")
		require.True(t, ok)
		require.NotNil(t, first.DefaultValue)
		assert.Equal(t, "10", *first.DefaultValue)

		book, _ := root.Field("book")
		assert.True(t, book.RequiresArguments)

		search, _ := root.Field("search")
		assert.True(t, search.RequiresArguments)

		version, _ := root.Field("version")
		assert.False(t, version.RequiresArguments)
		assert.Len(t, version.Args, 0)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		first, err := schema.GetObjectByTypeName("Library")
		require.NoError(t, err)
		second, err := schema.GetObjectByTypeName("Library")
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("object defs differ (-first +second):\n%s", diff)
		}
	})

	t.Run("should fail for missing type", func(t *testing.T) {
		_, err := schema.GetObjectByTypeName("Missing")
		var typeNotFound *introspection.TypeNotFoundError
		require.True(t, errors.As(err, &typeNotFound))
		assert.Equal(t, "Missing", typeNotFound.TypeName)
	})

	t.Run("should fail for type of other kind", func(t *testing.T) {
		_, err := schema.GetObjectByTypeName("BookFilter")
		var typeNotFound *introspection.TypeNotFoundError
		assert.True(t, errors.As(err, &typeNotFound))
	})
}

func TestIntrospection_GetInputObjectByTypeName(t *testing.T) {
	schema := schemas.Load(t, schemas.QueryBuilder)

	input, err := schema.GetInputObjectByTypeName("SimpleInput")
	require.NoError(t, err)
	require.Len(t, input.InputFields, 3)

	assert.Equal(t, "String", input.InputFields[0].Type.String())
	assert.Equal(t, "[String]", input.InputFields[1].Type.String())
	assert.Equal(t, "[String!]!", input.InputFields[2].Type.String())

	_, err = schema.GetInputObjectByTypeName("SimpleObject")
	var typeNotFound *introspection.TypeNotFoundError
	assert.True(t, errors.As(err, &typeNotFound))
}

func TestIntrospection_SupportsNodeQuery(t *testing.T) {
	t.Run("should identify schemas that support the node query", func(t *testing.T) {
		assert.True(t, schemas.Load(t, schemas.Node).SupportsNodeQuery())
	})

	t.Run("should return false for node fields of wrong type", func(t *testing.T) {
		assert.False(t, schemas.Load(t, schemas.NodeOfWrongType).SupportsNodeQuery())
	})

	t.Run("should return false for schema without node field", func(t *testing.T) {
		assert.False(t, schemas.Load(t, schemas.NoNode).SupportsNodeQuery())
	})
}

func TestIntrospection_DoesNodeQuerySupportType(t *testing.T) {
	t.Run("should return true for supported type", func(t *testing.T) {
		assert.True(t, schemas.Load(t, schemas.Node).DoesNodeQuerySupportType("MyType"))
	})

	t.Run("should return false for unsupported type", func(t *testing.T) {
		assert.False(t, schemas.Load(t, schemas.Node).DoesNodeQuerySupportType("Query"))
	})

	t.Run("should return false for schema without node field", func(t *testing.T) {
		assert.False(t, schemas.Load(t, schemas.NoNode).DoesNodeQuerySupportType("MyType"))
	})
}

func TestParse(t *testing.T) {
	t.Run("should accept response envelope and bare document", func(t *testing.T) {
		wrapped, err := introspection.Parse(strings.NewReader(`{"data":{"__schema":{"queryType":{"name":"Query"},"types":[]}}}`))
		require.NoError(t, err)
		bare, err := introspection.Parse(strings.NewReader(`{"__schema":{"queryType":{"name":"Query"},"types":[]}}`))
		require.NoError(t, err)
		assert.Equal(t, wrapped.Data(), bare.Data())
	})

	t.Run("should reject documents without query type", func(t *testing.T) {
		_, err := introspection.Parse(strings.NewReader(`{"data":{}}`))
		assert.Error(t, err)
	})

	t.Run("should list enum values", func(t *testing.T) {
		assert.Equal(t, []string{"FICTION", "SCIENCE"}, schemas.Load(t, schemas.Library).EnumValues("Genre"))
	})
}
