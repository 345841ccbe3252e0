// Package browser resolves a location of the object graph to a rendered page.
//
// One navigation parses the path, resolves the concrete type of a node
// lookup when the path starts with one, builds and executes the query and
// projects the returned data through the view of the target object.
package browser

//go:generate mockgen -self_package github.com/wundergraph/graphql-browser/pkg/browser -destination executor_mock_test.go -package browser . Executor

import (
	"context"

	"github.com/jensneuse/abstractlogger"

	"github.com/wundergraph/graphql-browser/pkg/argform"
	"github.com/wundergraph/graphql-browser/pkg/configuration"
	"github.com/wundergraph/graphql-browser/pkg/dataprocessor"
	"github.com/wundergraph/graphql-browser/pkg/graphql"
	"github.com/wundergraph/graphql-browser/pkg/introspection"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
	"github.com/wundergraph/graphql-browser/pkg/querybuilder"
)

// Executor runs requests against the browsed endpoint.
type Executor interface {
	Execute(ctx context.Context, request graphql.Request) (data interface{}, responseErrors graphql.ResponseErrors, err error)
	ResolveNodeType(ctx context.Context, request graphql.Request) (string, error)
}

type Browser struct {
	schema       *introspection.Introspection
	executor     Executor
	config       *configuration.Config
	queryBuilder *querybuilder.QueryBuilder
	log          abstractlogger.Logger
}

type Option func(browser *Browser)

func WithConfig(config *configuration.Config) Option {
	return func(browser *Browser) {
		browser.config = config
	}
}

func WithLogger(log abstractlogger.Logger) Option {
	return func(browser *Browser) {
		browser.log = log
	}
}

func New(schema *introspection.Introspection, executor Executor, options ...Option) *Browser {
	browser := &Browser{
		schema:   schema,
		executor: executor,
		log:      abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(browser)
	}
	browser.queryBuilder = querybuilder.New(schema, querybuilder.WithLogger(browser.log))
	return browser
}

func (b *Browser) Schema() *introspection.Introspection {
	return b.schema
}

func (b *Browser) Config() *configuration.Config {
	return b.config
}

// ValidateConfig reports the problems of the view configuration.
func (b *Browser) ValidateConfig() []string {
	if b.config == nil {
		return []string{}
	}
	return configuration.Validate(b.config, b.schema)
}

// BuildQuery builds the query for pathSpecs. An empty nodeType is resolved
// through the executor when the path starts with a node lookup.
func (b *Browser) BuildQuery(ctx context.Context, pathSpecs []pathspec.PathSpec, nodeType string) (*querybuilder.FullQuery, error) {
	nodeType, err := b.resolveNodeType(ctx, pathSpecs, nodeType)
	if err != nil {
		return nil, err
	}
	return b.queryBuilder.MakeFullQuery(pathSpecs, nodeType, b.config)
}

func (b *Browser) resolveNodeType(ctx context.Context, pathSpecs []pathspec.PathSpec, nodeType string) (string, error) {
	if nodeType != "" || !b.queryBuilder.NeedsNodeType(pathSpecs) {
		return nodeType, nil
	}

	request, err := b.queryBuilder.MakeNodeTypeQuery(pathSpecs[0])
	if err != nil {
		return "", err
	}
	nodeType, err = b.executor.ResolveNodeType(ctx, request)
	if err != nil {
		return "", err
	}

	b.log.Debug("Browser.resolveNodeType",
		abstractlogger.String("node", pathSpecs[0].String()),
		abstractlogger.String("nodeType", nodeType),
	)
	return nodeType, nil
}

// ArgumentForm describes the arguments of the field selected by the last
// step of pathSpecs, typically the path of a link.
func (b *Browser) ArgumentForm(ctx context.Context, pathSpecs []pathspec.PathSpec) (*argform.Form, error) {
	var nodeType string
	if len(pathSpecs) > 1 {
		var err error
		if nodeType, err = b.resolveNodeType(ctx, pathSpecs, ""); err != nil {
			return nil, err
		}
	}

	field, err := b.queryBuilder.ResolveField(pathSpecs, nodeType)
	if err != nil {
		return nil, err
	}
	return argform.Build(b.schema, field)
}

// ApplyArguments binds the values entered into the argument form of the last
// step and returns the resulting path.
func (b *Browser) ApplyArguments(ctx context.Context, pathSpecs []pathspec.PathSpec, values argform.Values) ([]pathspec.PathSpec, error) {
	form, err := b.ArgumentForm(ctx, pathSpecs)
	if err != nil {
		return nil, err
	}

	args, err := form.Arguments(values)
	if err != nil {
		return nil, err
	}

	last := len(pathSpecs) - 1
	return pathspec.Append(pathspec.Parent(pathSpecs), pathSpecs[last].WithArgs(args)), nil
}

// Navigate renders the page at urlPath, a path as produced by
// pathspec.MakeURLPath.
func (b *Browser) Navigate(ctx context.Context, urlPath string) (*Page, error) {
	pathSpecs, err := pathspec.ParseURLPath(urlPath)
	if err != nil {
		return nil, err
	}
	return b.NavigatePath(ctx, pathSpecs)
}

func (b *Browser) NavigatePath(ctx context.Context, pathSpecs []pathspec.PathSpec) (*Page, error) {
	query, err := b.BuildQuery(ctx, pathSpecs, "")
	if err != nil {
		return nil, err
	}

	data, responseErrors, err := b.executor.Execute(ctx, query.Request)
	if err != nil {
		b.log.Error("Browser.NavigatePath",
			abstractlogger.String("path", pathspec.MakeURLPath(pathSpecs)),
			abstractlogger.Error(err),
		)
		return nil, err
	}

	target, err := dataprocessor.Walk(data, pathSpecs)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Path:        pathspec.MakeURLPath(pathSpecs),
		PathSpecs:   pathSpecs,
		Breadcrumbs: breadcrumbs(pathSpecs),
		Request:     query.Request,
		Errors:      responseErrors,
	}

	switch value := target.(type) {
	case nil:
		page.Kind = NullPage
	case map[string]interface{}:
		page.Kind = ObjectPage
		page.Object, err = dataprocessor.MakeObject(query.TargetObject, value, query.View, pathSpecs)
	case []interface{}:
		page.Kind = TablePage
		page.Table, err = dataprocessor.MakeTable(query.TargetObject, value, query.View, pathSpecs)
	default:
		err = &dataprocessor.TargetDataNotFoundError{
			Step:      len(pathSpecs) - 1,
			FieldName: query.TargetObject.Name,
			Reason:    "expected an object or a list",
		}
	}
	if err != nil {
		return nil, err
	}

	return page, nil
}
