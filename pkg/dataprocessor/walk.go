package dataprocessor

import (
	"fmt"

	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

// Walk follows pathSpecs through decoded response data and returns the value
// at the end: an object for a detail view, a list for a table or nil when the
// server returned null for the last step.
func Walk(data interface{}, pathSpecs []pathspec.PathSpec) (interface{}, error) {
	current := data
	for i, spec := range pathSpecs {
		object, ok := current.(map[string]interface{})
		if !ok {
			return nil, &TargetDataNotFoundError{
				Step:      i,
				FieldName: spec.FieldName,
				Reason:    fmt.Sprintf("expected an object, got %s", describe(current)),
			}
		}

		value, ok := object[spec.FieldName]
		if !ok {
			return nil, &TargetDataNotFoundError{Step: i, FieldName: spec.FieldName, Reason: "key is missing"}
		}

		if spec.ArrayIndex != nil {
			list, ok := value.([]interface{})
			if !ok {
				return nil, &TargetDataNotFoundError{
					Step:      i,
					FieldName: spec.FieldName,
					Reason:    fmt.Sprintf("expected a list, got %s", describe(value)),
				}
			}
			index := *spec.ArrayIndex
			if index < 0 || index >= len(list) {
				return nil, &TargetDataNotFoundError{
					Step:      i,
					FieldName: spec.FieldName,
					Reason:    fmt.Sprintf("index %d out of range for list of length %d", index, len(list)),
				}
			}
			value = list[index]
		}

		current = value
	}

	return current, nil
}

func describe(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "an object"
	case []interface{}:
		return "a list"
	default:
		return "a scalar"
	}
}
