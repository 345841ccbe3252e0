package introspection

import "fmt"

// TypeNotFoundError is returned when the schema declares no type of the
// requested kind and name.
type TypeNotFoundError struct {
	TypeName string
	Kind     TypeKind
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type `%s` of kind %s not found", e.TypeName, e.Kind)
}
