package browser

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/graphql-browser/pkg/argform"
	"github.com/wundergraph/graphql-browser/pkg/configuration"
	"github.com/wundergraph/graphql-browser/pkg/graphql"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
	"github.com/wundergraph/graphql-browser/pkg/testing/schemas"
)

func strPtr(s string) *string {
	return &s
}

func values(t *testing.T, page *Page) map[string]*string {
	t.Helper()

	require.NotNil(t, page.Object)
	out := make(map[string]*string, len(page.Object.Fields))
	for _, field := range page.Object.Fields {
		out[field.Label] = field.Value
	}
	return out
}

func TestBrowser_Navigate(t *testing.T) {
	ctx := context.Background()

	t.Run("should render objects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), graphql.Request{Query: "query { library { id name tags __typename } }"}).
			Return(map[string]interface{}{
				"library": map[string]interface{}{"id": "TGli", "name": "Central", "tags": []interface{}{"old", "big"}, "__typename": "Library"},
			}, nil, nil)

		page, err := New(schemas.Load(t, schemas.Library), executor).Navigate(ctx, "/library")
		require.NoError(t, err)

		assert.Equal(t, ObjectPage, page.Kind)
		assert.Equal(t, "library", page.Path)
		assert.Equal(t, "Library", page.Object.TypeName)
		assert.Equal(t, "A public library.", page.Object.Description)
		assert.Equal(t, []Breadcrumb{{Label: "root", URLPath: ""}, {Label: "library", URLPath: "library"}}, page.Breadcrumbs)

		fields := values(t, page)
		assert.Equal(t, strPtr("Central"), fields["name"])
		assert.Equal(t, strPtr("old, big"), fields["tags"])
		assert.Nil(t, fields["address"])
		assert.Nil(t, fields["books"])
		assert.Equal(t, "library/address", page.Object.Fields[2].Link.URLPath)
	})

	t.Run("should resolve node types before building the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)

		nodeSpec := pathspec.New("node").WithArgs(pathspec.Arguments{{Name: "id", Value: "Qm9vazox"}})
		gomock.InOrder(
			executor.EXPECT().
				ResolveNodeType(gomock.Any(), graphql.Request{
					Query:     "query ($var0: ID!) { node(id: $var0) { __typename } }",
					Variables: map[string]interface{}{"var0": "Qm9vazox"},
				}).
				Return("Book", nil),
			executor.EXPECT().
				Execute(gomock.Any(), graphql.Request{
					Query:     "query ($var0: ID!) { node(id: $var0) { ... on Book { id title pages available genre keywords __typename } } }",
					Variables: map[string]interface{}{"var0": "Qm9vazox"},
				}).
				Return(map[string]interface{}{
					"node": map[string]interface{}{"id": "Qm9vazox", "title": "Go", "available": true, "__typename": "Book"},
				}, nil, nil),
		)

		page, err := New(schemas.Load(t, schemas.Library), executor).Navigate(ctx, pathspec.MakeURLPath([]pathspec.PathSpec{nodeSpec}))
		require.NoError(t, err)

		assert.Equal(t, "Book", page.Object.TypeName)
		assert.Equal(t, strPtr("Go"), values(t, page)["title"])
	})

	t.Run("should render lists as tables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)
		config := &configuration.Config{Views: []configuration.View{
			{ObjectName: "Book", Fields: []configuration.Field{
				{Path: []string{"title"}, DisplayName: strPtr("Title")},
				{Path: []string{"author"}, DisplayName: strPtr("Author")},
			}},
		}}
		executor.EXPECT().
			Execute(gomock.Any(), graphql.Request{Query: "query { library { books { title __typename } } }"}).
			Return(map[string]interface{}{
				"library": map[string]interface{}{
					"books": []interface{}{
						map[string]interface{}{"title": "Go", "__typename": "Book"},
						map[string]interface{}{"title": "Rust", "__typename": "Book"},
					},
				},
			}, nil, nil)

		page, err := New(schemas.Load(t, schemas.Library), executor, WithConfig(config)).Navigate(ctx, "library/books")
		require.NoError(t, err)

		assert.Equal(t, TablePage, page.Kind)
		assert.Equal(t, []string{"Title", "Author"}, page.Table.Headers)
		require.Len(t, page.Table.Rows, 2)
		assert.Equal(t, "library/books%5B1%5D/author", page.Table.Rows[1].Fields[1].Link.URLPath)
	})

	t.Run("should follow row links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), graphql.Request{Query: "query { library { books { author { id name __typename } } } }"}).
			Return(map[string]interface{}{
				"library": map[string]interface{}{
					"books": []interface{}{
						map[string]interface{}{"author": map[string]interface{}{"id": "1", "name": "Rob", "__typename": "Author"}},
						map[string]interface{}{"author": map[string]interface{}{"id": "2", "name": "Ken", "__typename": "Author"}},
					},
				},
			}, nil, nil)

		page, err := New(schemas.Load(t, schemas.Library), executor).Navigate(ctx, "library/books%5B1%5D/author")
		require.NoError(t, err)

		assert.Equal(t, "Author", page.Object.TypeName)
		assert.Equal(t, strPtr("Ken"), values(t, page)["name"])
	})

	t.Run("should render null locations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)
		responseErrors := graphql.ResponseErrors{{Message: "not found", Path: graphql.ErrorPath{"book"}}}
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any()).
			Return(map[string]interface{}{"book": nil}, responseErrors, nil)

		page, err := New(schemas.Load(t, schemas.Library), executor).Navigate(ctx, pathspec.MakeURLPath([]pathspec.PathSpec{
			pathspec.New("book").WithArgs(pathspec.Arguments{{Name: "isbn", Value: "0"}}),
		}))
		require.NoError(t, err)

		assert.Equal(t, NullPage, page.Kind)
		assert.Nil(t, page.Object)
		assert.Equal(t, responseErrors, page.Errors)
	})

	t.Run("should propagate executor errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)
		executorErr := errors.New("connection refused")
		executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, nil, executorErr)

		_, err := New(schemas.Load(t, schemas.Library), executor).Navigate(ctx, "library")
		assert.Equal(t, executorErr, err)
	})

	t.Run("should propagate node type resolution errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)
		resolveErr := errors.New("node not found")
		executor.EXPECT().ResolveNodeType(gomock.Any(), gomock.Any()).Return("", resolveErr)

		_, err := New(schemas.Load(t, schemas.Library), executor).Navigate(ctx, pathspec.MakeURLPath([]pathspec.PathSpec{
			pathspec.New("node").WithArgs(pathspec.Arguments{{Name: "id", Value: "x"}}),
		}))
		assert.Equal(t, resolveErr, err)
	})

	t.Run("should refuse malformed paths", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		_, err := New(schemas.Load(t, schemas.Library), NewMockExecutor(ctrl)).Navigate(ctx, "library%5Bx%5D")
		assert.True(t, errors.Is(err, pathspec.ErrMalformedPathSpec))
	})
}

func TestBrowser_ValidateConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	schema := schemas.Load(t, schemas.Library)

	assert.Equal(t, []string{}, New(schema, NewMockExecutor(ctrl)).ValidateConfig())

	config := &configuration.Config{Views: []configuration.View{{ObjectName: "Shelf"}}}
	assert.Equal(t, []string{"Type `Shelf` does not exist."}, New(schema, NewMockExecutor(ctrl), WithConfig(config)).ValidateConfig())
}

func TestBrowser_ArgumentForm(t *testing.T) {
	ctx := context.Background()

	t.Run("should describe the arguments of the last step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		browser := New(schemas.Load(t, schemas.Library), NewMockExecutor(ctrl))

		form, err := browser.ArgumentForm(ctx, []pathspec.PathSpec{pathspec.New("books")})
		require.NoError(t, err)

		assert.Equal(t, "books", form.FieldName)
		require.Len(t, form.Inputs, 2)
		assert.Equal(t, "first", form.Inputs[0].Name)
		assert.Equal(t, "genre", form.Inputs[1].Name)
	})

	t.Run("should resolve the node type of deeper paths", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		executor := NewMockExecutor(ctrl)
		executor.EXPECT().
			ResolveNodeType(gomock.Any(), gomock.Any()).
			Return("Book", nil)

		form, err := New(schemas.Load(t, schemas.Library), executor).ArgumentForm(ctx, []pathspec.PathSpec{
			pathspec.New("node").WithArgs(pathspec.Arguments{{Name: "id", Value: "Qm9vazox"}}),
			pathspec.New("excerpt"),
		})
		require.NoError(t, err)

		require.Len(t, form.Inputs, 1)
		assert.Equal(t, "length", form.Inputs[0].Name)
		assert.True(t, form.Inputs[0].Required)
	})
}

func TestBrowser_ApplyArguments(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	browser := New(schemas.Load(t, schemas.Library), NewMockExecutor(ctrl))

	t.Run("should bind the entered values to the last step", func(t *testing.T) {
		pathSpecs, err := browser.ApplyArguments(ctx, []pathspec.PathSpec{pathspec.New("book")}, map[string]string{"isbn": " 978-3 "})
		require.NoError(t, err)

		assert.Equal(t, `book%28%7B%22isbn%22:%22978-3%22%7D%29`, pathspec.MakeURLPath(pathSpecs))
	})

	t.Run("should keep the parent steps", func(t *testing.T) {
		parent := []pathspec.PathSpec{pathspec.New("books").WithArrayIndex(0), pathspec.New("excerpt")}

		pathSpecs, err := browser.ApplyArguments(ctx, parent, map[string]string{"length": "20"})
		require.NoError(t, err)

		require.Len(t, pathSpecs, 2)
		assert.Equal(t, "books[0]", pathSpecs[0].String())
		assert.Equal(t, `excerpt({"length":20})`, pathSpecs[1].String())
		assert.Nil(t, parent[1].Args)
	})

	t.Run("should report missing required values", func(t *testing.T) {
		_, err := browser.ApplyArguments(ctx, []pathspec.PathSpec{pathspec.New("book")}, nil)

		var missing *argform.MissingValueError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "isbn", missing.Path)
	})
}
