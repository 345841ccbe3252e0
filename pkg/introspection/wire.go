package introspection

// Data is the result of the standard introspection query, i.e. the content
// of the "data" key of the response.
type Data struct {
	Schema Schema `json:"__schema"`
}

type Schema struct {
	QueryType        FullType    `json:"queryType"`
	MutationType     *FullType   `json:"mutationType"`
	SubscriptionType *FullType   `json:"subscriptionType"`
	Types            []*FullType `json:"types"`
	Directives       []Directive `json:"directives"`
}

func (s *Schema) TypeNames() (query, mutation, subscription string) {
	query = s.QueryType.Name

	if s.MutationType != nil {
		mutation = s.MutationType.Name
	}
	if s.SubscriptionType != nil {
		subscription = s.SubscriptionType.Name
	}
	return
}

// typeByKindAndName returns the first declared type with the given kind and name.
func (s *Schema) typeByKindAndName(kind TypeKind, name string) *FullType {
	for _, fullType := range s.Types {
		if fullType != nil && fullType.Kind == kind && fullType.Name == name {
			return fullType
		}
	}
	return nil
}

type FullType struct {
	Kind        TypeKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// not empty for TypeKind OBJECT and INTERFACE only
	Fields []Field `json:"fields,omitempty"`
	// not empty for TypeKind INPUT_OBJECT only
	InputFields []InputValue `json:"inputFields,omitempty"`
	// not empty for TypeKind OBJECT only
	Interfaces []TypeRef `json:"interfaces,omitempty"`
	// not empty for TypeKind ENUM only
	EnumValues []EnumValue `json:"enumValues,omitempty"`
	// not empty for TypeKind INTERFACE and UNION only
	PossibleTypes []TypeRef `json:"possibleTypes,omitempty"`
}

type TypeKind string

const (
	SCALAR       TypeKind = "SCALAR"
	LIST         TypeKind = "LIST"
	NON_NULL     TypeKind = "NON_NULL"
	OBJECT       TypeKind = "OBJECT"
	ENUM         TypeKind = "ENUM"
	INTERFACE    TypeKind = "INTERFACE"
	UNION        TypeKind = "UNION"
	INPUT_OBJECT TypeKind = "INPUT_OBJECT"
)

// TypeRef is the recursive wire representation of a type: a named type
// wrapped in any number of LIST and NON_NULL layers.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Args              []InputValue `json:"args"`
	Type              TypeRef      `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated"`
	DeprecationReason *string      `json:"deprecationReason"`
}

type EnumValue struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

type InputValue struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         TypeRef `json:"type"`
	DefaultValue *string `json:"defaultValue"`
}

type Directive struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Locations   []string     `json:"locations"`
	Args        []InputValue `json:"args"`
}

// Query is the standard introspection query. The TypeRef fragment unwraps
// nine levels of LIST and NON_NULL wrappers.
const Query = `query IntrospectionQuery {
  __schema {
    queryType { name }
    mutationType { name }
    subscriptionType { name }
    types {
      ...FullType
    }
    directives {
      name
      description
      locations
      args {
        ...InputValue
      }
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: true) {
    name
    description
    args {
      ...InputValue
    }
    type {
      ...TypeRef
    }
    isDeprecated
    deprecationReason
  }
  inputFields {
    ...InputValue
  }
  interfaces {
    ...TypeRef
  }
  enumValues(includeDeprecated: true) {
    name
    description
    isDeprecated
    deprecationReason
  }
  possibleTypes {
    ...TypeRef
  }
}

fragment InputValue on __InputValue {
  name
  description
  type { ...TypeRef }
  defaultValue
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
                ofType {
                  kind
                  name
                }
              }
            }
          }
        }
      }
    }
  }
}`
