// Package argform describes the inputs needed to supply arguments to a field
// and turns the values entered for them into path arguments.
//
// A Form holds no state. The entered values are owned by the caller and
// passed in as Values, keyed by the dotted path of each input.
package argform

import (
	"github.com/wundergraph/graphql-browser/pkg/introspection"
)

type InputKind string

const (
	// ScalarInput takes a single scalar value.
	ScalarInput InputKind = "SCALAR"
	// EnumInput takes one of EnumValues.
	EnumInput InputKind = "ENUM"
	// ObjectInput groups the inputs of an input object.
	ObjectInput InputKind = "INPUT_OBJECT"
	// JSONInput takes a JSON document, used for lists and recursive input objects.
	JSONInput InputKind = "JSON"
)

type Input struct {
	Name         string                `json:"name"`
	Path         string                `json:"path"`
	Description  string                `json:"description,omitempty"`
	Kind         InputKind             `json:"kind"`
	Type         introspection.TypeDef `json:"type"`
	TypeString   string                `json:"typeString"`
	Required     bool                  `json:"required"`
	DefaultValue *string               `json:"defaultValue,omitempty"`
	EnumValues   []string              `json:"enumValues,omitempty"`
	Fields       []Input               `json:"fields,omitempty"`
}

type Form struct {
	FieldName string  `json:"fieldName"`
	Inputs    []Input `json:"inputs"`
}

// Values maps the dotted path of an input to the text entered for it.
// An empty or missing entry means no value.
type Values map[string]string

// Build describes the inputs of every argument of field.
func Build(schema *introspection.Introspection, field introspection.FieldDef) (*Form, error) {
	builder := &formBuilder{schema: schema, visiting: make(map[string]bool)}

	inputs := make([]Input, 0, len(field.Args))
	for _, arg := range field.Args {
		input, err := builder.input(arg, "")
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	return &Form{FieldName: field.Name, Inputs: inputs}, nil
}

type formBuilder struct {
	schema   *introspection.Introspection
	visiting map[string]bool
}

func (b *formBuilder) input(def introspection.ArgumentDef, parentPath string) (Input, error) {
	path := def.Name
	if parentPath != "" {
		path = parentPath + "." + def.Name
	}

	input := Input{
		Name:         def.Name,
		Path:         path,
		Description:  def.Description,
		Type:         def.Type,
		TypeString:   def.Type.String(),
		Required:     def.IsRequired(),
		DefaultValue: def.DefaultValue,
	}

	switch {
	case def.Type.IsList:
		input.Kind = JSONInput
	case def.Type.Kind == introspection.ENUM:
		input.Kind = EnumInput
		input.EnumValues = b.schema.EnumValues(def.Type.Name)
	case def.Type.Kind == introspection.INPUT_OBJECT:
		if b.visiting[def.Type.Name] {
			input.Kind = JSONInput
			return input, nil
		}
		inputObject, err := b.schema.GetInputObjectByTypeName(def.Type.Name)
		if err != nil {
			return Input{}, err
		}

		b.visiting[def.Type.Name] = true
		defer delete(b.visiting, def.Type.Name)

		input.Kind = ObjectInput
		input.Fields = make([]Input, 0, len(inputObject.InputFields))
		for _, inputField := range inputObject.InputFields {
			field, err := b.input(inputField, path)
			if err != nil {
				return Input{}, err
			}
			input.Fields = append(input.Fields, field)
		}
	default:
		input.Kind = ScalarInput
	}

	return input, nil
}

// Defaults returns the form state holding the default value of every scalar
// and enum input that declares one.
func (f *Form) Defaults() Values {
	values := Values{}
	collectDefaults(f.Inputs, values)
	return values
}

func collectDefaults(inputs []Input, values Values) {
	for _, input := range inputs {
		if input.Kind == ObjectInput {
			collectDefaults(input.Fields, values)
			continue
		}
		if input.DefaultValue != nil {
			values[input.Path] = defaultText(*input.DefaultValue)
		}
	}
}
