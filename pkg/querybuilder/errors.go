package querybuilder

import "fmt"

// FieldNotFoundError is returned when a path step or a configured view names
// a field the current object does not have.
type FieldNotFoundError struct {
	ObjectName string
	FieldName  string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field `%s.%s` not found", e.ObjectName, e.FieldName)
}

// ArgNotFoundError is returned when a path step binds an argument the field
// does not declare.
type ArgNotFoundError struct {
	FieldName    string
	ArgumentName string
}

func (e *ArgNotFoundError) Error() string {
	return fmt.Sprintf("argument `%s` not found on field `%s`", e.ArgumentName, e.FieldName)
}

// MissingNodeTypeError is returned when a node lookup is built before the
// concrete type of the node is known.
type MissingNodeTypeError struct {
	FieldName string
}

func (e *MissingNodeTypeError) Error() string {
	return fmt.Sprintf("concrete type of node query `%s` has not been resolved", e.FieldName)
}

// UnsupportedNodeTypeError is returned when the resolved node type does not
// implement the Node interface.
type UnsupportedNodeTypeError struct {
	TypeName string
}

func (e *UnsupportedNodeTypeError) Error() string {
	return fmt.Sprintf("type `%s` is not supported by the node query", e.TypeName)
}

// QuerySyntaxError is returned when a built query does not parse.
type QuerySyntaxError struct {
	Query string
	Err   error
}

func (e *QuerySyntaxError) Error() string {
	return fmt.Sprintf("built invalid query %q: %v", e.Query, e.Err)
}

func (e *QuerySyntaxError) Unwrap() error {
	return e.Err
}
