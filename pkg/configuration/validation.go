package configuration

import (
	"fmt"

	"github.com/wundergraph/graphql-browser/pkg/introspection"
)

// Validate cross-checks every configured view against the schema. It never
// fails, an empty result means the configuration is valid.
func Validate(config *Config, schema *introspection.Introspection) []string {
	report := make([]string, 0)
	if config == nil {
		return report
	}

	seen := make(map[string]bool, len(config.Views))
	for _, view := range config.Views {
		if seen[view.ObjectName] {
			report = append(report, fmt.Sprintf("Type `%s` has more than one view.", view.ObjectName))
		}
		seen[view.ObjectName] = true

		object, err := schema.GetObjectByTypeName(view.ObjectName)
		if err != nil {
			report = append(report, fmt.Sprintf("Type `%s` does not exist.", view.ObjectName))
			continue
		}

		for _, field := range view.Fields {
			if message := validateField(schema, object, field); message != "" {
				report = append(report, message)
			}
		}
	}

	return report
}

func validateField(schema *introspection.Introspection, object introspection.ObjectDef, field Field) string {
	if len(field.Path) == 0 {
		return fmt.Sprintf("A field for `%s` has an empty path.", object.Name)
	}

	current := object
	for i, segment := range field.Path {
		fieldDef, ok := current.Field(segment)
		if !ok {
			return fmt.Sprintf("Field `%s.%s` does not exist.", object.Name, field.DottedPath())
		}
		if i == len(field.Path)-1 {
			break
		}

		// intermediate segments must lead to a single object fetched without arguments
		if fieldDef.Type.Kind != introspection.OBJECT || fieldDef.Type.IsList || fieldDef.RequiresArguments {
			return fmt.Sprintf("Field `%s.%s` does not point to a valid field.", object.Name, field.DottedPath())
		}
		next, err := schema.GetObjectByTypeName(fieldDef.Type.Name)
		if err != nil {
			return fmt.Sprintf("Field `%s.%s` does not point to a valid field.", object.Name, field.DottedPath())
		}
		current = next
	}

	return ""
}
