package introspection

// TypeDef is a flattened TypeRef. IsNullable describes the innermost element,
// IsListNullable the list container and is only meaningful when IsList is set.
type TypeDef struct {
	Name           string   `json:"name"`
	Kind           TypeKind `json:"kind"`
	IsNullable     bool     `json:"isNullable"`
	IsList         bool     `json:"isList"`
	IsListNullable bool     `json:"isListNullable"`
}

// String renders the type the way it is declared in a variable definition,
// e.g. "ID!", "[String]" or "[String!]!".
func (t TypeDef) String() string {
	typeStr := t.Name
	if !t.IsNullable {
		typeStr = typeStr + "!"
	}
	if t.IsList {
		typeStr = "[" + typeStr + "]"
	}
	if !t.IsListNullable {
		typeStr = typeStr + "!"
	}
	return typeStr
}

// IsComposite is true for types that need a selection set when queried.
func (t TypeDef) IsComposite() bool {
	switch t.Kind {
	case OBJECT, INTERFACE, UNION:
		return true
	default:
		return false
	}
}

type ArgumentDef struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Type         TypeDef `json:"type"`
	DefaultValue *string `json:"defaultValue,omitempty"`
}

// IsRequired is true for non-null arguments without a default value.
func (a ArgumentDef) IsRequired() bool {
	return !a.Type.IsNullable && a.DefaultValue == nil
}

type InputFieldDef = ArgumentDef

type FieldDef struct {
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Type              TypeDef       `json:"type"`
	Args              []ArgumentDef `json:"args"`
	RequiresArguments bool          `json:"requiresArguments"`
}

func (f FieldDef) Arg(name string) (ArgumentDef, bool) {
	for i := range f.Args {
		if f.Args[i].Name == name {
			return f.Args[i], true
		}
	}
	return ArgumentDef{}, false
}

// ObjectDef keeps the fields in schema declaration order.
type ObjectDef struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Fields      []FieldDef `json:"fields"`
}

func (o ObjectDef) Field(name string) (FieldDef, bool) {
	for i := range o.Fields {
		if o.Fields[i].Name == name {
			return o.Fields[i], true
		}
	}
	return FieldDef{}, false
}

type InputObjectDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputFields []InputFieldDef `json:"inputFields"`
}

func (o InputObjectDef) InputField(name string) (InputFieldDef, bool) {
	for i := range o.InputFields {
		if o.InputFields[i].Name == name {
			return o.InputFields[i], true
		}
	}
	return InputFieldDef{}, false
}

type wrapping int

const (
	terminalType wrapping = iota
	listType
)

// ExtractTypeInformation flattens the LIST/NON_NULL wrapper chain of ref.
func ExtractTypeInformation(ref TypeRef) TypeDef {
	typeDef, _ := extractTypeInformation(ref)
	return typeDef
}

// extractTypeInformation returns the flattened type and whether the layer
// just below the current one is the named type or a list. A NON_NULL right
// above the named type marks the items, a NON_NULL above a list marks the list.
func extractTypeInformation(ref TypeRef) (TypeDef, wrapping) {
	if (ref.Kind != LIST && ref.Kind != NON_NULL) || ref.OfType == nil {
		typeDef := TypeDef{
			Kind:           ref.Kind,
			IsNullable:     true,
			IsListNullable: true,
		}
		if ref.Name != nil {
			typeDef.Name = *ref.Name
		}
		return typeDef, terminalType
	}

	typeDef, wrapped := extractTypeInformation(*ref.OfType)

	switch ref.Kind {
	case NON_NULL:
		if wrapped == terminalType {
			typeDef.IsNullable = false
		} else {
			typeDef.IsListNullable = false
		}
	case LIST:
		typeDef.IsList = true
		wrapped = listType
	}

	return typeDef, wrapped
}

func newFieldDef(field Field) FieldDef {
	args := make([]ArgumentDef, 0, len(field.Args))
	requiresArguments := false
	for _, arg := range field.Args {
		argDef := newArgumentDef(arg)
		if argDef.IsRequired() {
			requiresArguments = true
		}
		args = append(args, argDef)
	}

	return FieldDef{
		Name:              field.Name,
		Description:       field.Description,
		Type:              ExtractTypeInformation(field.Type),
		Args:              args,
		RequiresArguments: requiresArguments,
	}
}

func newArgumentDef(value InputValue) ArgumentDef {
	var defaultValue *string
	if value.DefaultValue != nil {
		v := *value.DefaultValue
		defaultValue = &v
	}
	return ArgumentDef{
		Name:         value.Name,
		Description:  value.Description,
		Type:         ExtractTypeInformation(value.Type),
		DefaultValue: defaultValue,
	}
}
