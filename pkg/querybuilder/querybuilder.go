// Package querybuilder turns a path of field selections into a single
// GraphQL query document fetching the object at the end of the path.
package querybuilder

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/wundergraph/graphql-browser/pkg/configuration"
	"github.com/wundergraph/graphql-browser/pkg/graphql"
	"github.com/wundergraph/graphql-browser/pkg/introspection"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

type QueryBuilder struct {
	introspection *introspection.Introspection
	log           abstractlogger.Logger
}

type Option func(builder *QueryBuilder)

func WithLogger(log abstractlogger.Logger) Option {
	return func(builder *QueryBuilder) {
		builder.log = log
	}
}

func New(schema *introspection.Introspection, options ...Option) *QueryBuilder {
	builder := &QueryBuilder{
		introspection: schema,
		log:           abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// FullQuery is the request fetching a path together with the object type
// found at its end and the view used to select its fields.
type FullQuery struct {
	Request      graphql.Request
	TargetObject introspection.ObjectDef
	View         configuration.View
}

// IncludeFieldInQuery reports whether a view field is fetched directly.
// Fields needing arguments or a selection set are reached by navigating.
func IncludeFieldInQuery(field introspection.FieldDef) bool {
	if field.RequiresArguments {
		return false
	}
	if field.Type.IsComposite() {
		return false
	}
	if field.Type.IsList && field.Type.Kind != introspection.SCALAR {
		return false
	}
	return true
}

// NeedsNodeType is true when the path starts with the node lookup, whose
// concrete type must be resolved before MakeFullQuery can be called.
func (q *QueryBuilder) NeedsNodeType(pathSpecs []pathspec.PathSpec) bool {
	return len(pathSpecs) != 0 && q.introspection.IsNodeQuery(pathSpecs[0].FieldName)
}

// MakeFullQuery builds the query fetching the object at the end of pathSpecs.
// nodeType is the concrete type of the node lookup and is ignored for paths
// not starting with one.
func (q *QueryBuilder) MakeFullQuery(pathSpecs []pathspec.PathSpec, nodeType string, config *configuration.Config) (*FullQuery, error) {
	tree := &QueryTree{}

	object, err := q.introspection.GetRootObject()
	if err != nil {
		return nil, err
	}

	children := &tree.Children
	for i, spec := range pathSpecs {
		field, typeName, isNodeQuery, err := q.resolveStep(object, i, spec, nodeType)
		if err != nil {
			return nil, err
		}

		node := &QueryNode{
			FieldName:   spec.FieldName,
			Args:        spec.Args,
			Field:       field,
			isNodeQuery: isNodeQuery,
		}
		if isNodeQuery {
			node.NodeType = nodeType
		}

		*children = append(*children, node)
		children = &node.Children

		object, err = q.introspection.GetObjectByTypeName(typeName)
		if err != nil {
			return nil, err
		}
	}

	view := config.ResolveView(object)
	for _, viewField := range view.Fields {
		if err := q.addViewField(children, object, viewField.Path); err != nil {
			return nil, err
		}
	}
	*children = append(*children, &QueryNode{FieldName: typeNameField})

	request, err := q.serialize(tree)
	if err != nil {
		return nil, err
	}

	q.log.Debug("QueryBuilder.MakeFullQuery",
		abstractlogger.String("path", pathspec.MakeURLPath(pathSpecs)),
		abstractlogger.String("query", request.Query),
		abstractlogger.Int("variables", len(request.Variables)),
	)

	return &FullQuery{
		Request:      request,
		TargetObject: object,
		View:         view,
	}, nil
}

// ResolveField returns the definition of the field selected by the last step
// of pathSpecs. nodeType is only needed when a node lookup precedes it.
func (q *QueryBuilder) ResolveField(pathSpecs []pathspec.PathSpec, nodeType string) (introspection.FieldDef, error) {
	if len(pathSpecs) == 0 {
		return introspection.FieldDef{}, pathspec.ErrMalformedPathSpec
	}

	object, err := q.introspection.GetRootObject()
	if err != nil {
		return introspection.FieldDef{}, err
	}

	last := len(pathSpecs) - 1
	for i, spec := range pathSpecs[:last] {
		_, typeName, _, err := q.resolveStep(object, i, spec, nodeType)
		if err != nil {
			return introspection.FieldDef{}, err
		}
		object, err = q.introspection.GetObjectByTypeName(typeName)
		if err != nil {
			return introspection.FieldDef{}, err
		}
	}

	field, ok := object.Field(pathSpecs[last].FieldName)
	if !ok {
		return introspection.FieldDef{}, &FieldNotFoundError{ObjectName: object.Name, FieldName: pathSpecs[last].FieldName}
	}
	return field, nil
}

// resolveStep looks up the field selected by step i below object and the
// name of the type it leads to.
func (q *QueryBuilder) resolveStep(object introspection.ObjectDef, i int, spec pathspec.PathSpec, nodeType string) (field introspection.FieldDef, typeName string, isNodeQuery bool, err error) {
	field, ok := object.Field(spec.FieldName)
	if !ok {
		return field, "", false, &FieldNotFoundError{ObjectName: object.Name, FieldName: spec.FieldName}
	}

	if i != 0 || !q.introspection.IsNodeQuery(spec.FieldName) {
		return field, field.Type.Name, false, nil
	}
	if nodeType == "" {
		return field, "", false, &MissingNodeTypeError{FieldName: spec.FieldName}
	}
	if !q.introspection.DoesNodeQuerySupportType(nodeType) {
		return field, "", false, &UnsupportedNodeTypeError{TypeName: nodeType}
	}
	return field, nodeType, true, nil
}

// MakeNodeTypeQuery builds the query asking for the concrete type behind a
// node lookup step.
func (q *QueryBuilder) MakeNodeTypeQuery(spec pathspec.PathSpec) (graphql.Request, error) {
	object, err := q.introspection.GetRootObject()
	if err != nil {
		return graphql.Request{}, err
	}
	field, ok := object.Field(spec.FieldName)
	if !ok || !q.introspection.IsNodeQuery(spec.FieldName) {
		return graphql.Request{}, &FieldNotFoundError{ObjectName: object.Name, FieldName: spec.FieldName}
	}

	tree := &QueryTree{
		Children: []*QueryNode{
			{
				FieldName: spec.FieldName,
				Args:      spec.Args,
				Field:     field,
				Children:  []*QueryNode{{FieldName: typeNameField}},
			},
		},
	}

	return q.serialize(tree)
}

// addViewField selects the field at path below object. Intermediate segments
// become nested selections shared between paths with a common prefix.
// Segments that cannot carry a nested selection are skipped.
func (q *QueryBuilder) addViewField(children *[]*QueryNode, object introspection.ObjectDef, path []string) error {
	if len(path) == 0 {
		return nil
	}

	field, ok := object.Field(path[0])
	if !ok {
		return &FieldNotFoundError{ObjectName: object.Name, FieldName: path[0]}
	}

	existing := findNode(*children, field.Name)

	if len(path) == 1 {
		if existing == nil && IncludeFieldInQuery(field) {
			*children = append(*children, &QueryNode{FieldName: field.Name, Field: field})
		}
		return nil
	}

	if field.Type.Kind != introspection.OBJECT || field.Type.IsList || field.RequiresArguments {
		return nil
	}

	nested, err := q.introspection.GetObjectByTypeName(field.Type.Name)
	if err != nil {
		return err
	}

	if existing != nil {
		return q.addViewField(&existing.Children, nested, path[1:])
	}

	node := &QueryNode{FieldName: field.Name, Field: field}
	if err := q.addViewField(&node.Children, nested, path[1:]); err != nil {
		return err
	}
	if len(node.Children) != 0 {
		*children = append(*children, node)
	}
	return nil
}

func (q *QueryBuilder) serialize(tree *QueryTree) (graphql.Request, error) {
	queryStr, vars, err := tree.Serialize()
	if err != nil {
		return graphql.Request{}, err
	}

	if _, err := parser.ParseQuery(&ast.Source{Input: queryStr}); err != nil {
		return graphql.Request{}, &QuerySyntaxError{Query: queryStr, Err: err}
	}

	return graphql.Request{
		Query:     queryStr,
		Variables: vars,
	}, nil
}

func findNode(nodes []*QueryNode, fieldName string) *QueryNode {
	for _, node := range nodes {
		if node.FieldName == fieldName {
			return node
		}
	}
	return nil
}
