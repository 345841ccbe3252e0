// Package introspection turns a GraphQL introspection document into a
// flattened, queryable type model.
//
// The Introspection wrapper owns the decoded document and is never mutated
// after construction. ObjectDefs are derived on every lookup.
package introspection

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

const (
	nodeFieldName     = "node"
	nodeInterfaceName = "Node"
)

type Introspection struct {
	data *Data
}

func New(data *Data) *Introspection {
	return &Introspection{data: data}
}

// Parse reads either a bare introspection result ({"__schema": ...}) or a
// complete GraphQL response ({"data": {"__schema": ...}}).
func Parse(reader io.Reader) (*Introspection, error) {
	input, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return ParseBytes(input)
}

func ParseBytes(input []byte) (*Introspection, error) {
	if data := gjson.GetBytes(input, "data"); data.IsObject() && data.Get("__schema").Exists() {
		input = []byte(data.Raw)
	}

	if !gjson.GetBytes(input, "__schema.queryType.name").Exists() {
		return nil, fmt.Errorf("failed to parse introspection json: missing __schema.queryType")
	}

	var data Data
	if err := json.Unmarshal(input, &data); err != nil {
		return nil, fmt.Errorf("failed to parse introspection json: %w", err)
	}

	return New(&data), nil
}

func (i *Introspection) Data() *Data {
	return i.data
}

func (i *Introspection) GetRootObject() (ObjectDef, error) {
	return i.GetObjectByTypeName(i.data.Schema.QueryType.Name)
}

func (i *Introspection) GetObjectByTypeName(typeName string) (ObjectDef, error) {
	objectType := i.data.Schema.typeByKindAndName(OBJECT, typeName)
	if objectType == nil {
		return ObjectDef{}, &TypeNotFoundError{TypeName: typeName, Kind: OBJECT}
	}

	fields := make([]FieldDef, 0, len(objectType.Fields))
	for _, field := range objectType.Fields {
		fields = append(fields, newFieldDef(field))
	}

	return ObjectDef{
		Name:        objectType.Name,
		Description: objectType.Description,
		Fields:      fields,
	}, nil
}

func (i *Introspection) GetInputObjectByTypeName(typeName string) (InputObjectDef, error) {
	inputObjectType := i.data.Schema.typeByKindAndName(INPUT_OBJECT, typeName)
	if inputObjectType == nil {
		return InputObjectDef{}, &TypeNotFoundError{TypeName: typeName, Kind: INPUT_OBJECT}
	}

	inputFields := make([]InputFieldDef, 0, len(inputObjectType.InputFields))
	for _, inputField := range inputObjectType.InputFields {
		inputFields = append(inputFields, newArgumentDef(inputField))
	}

	return InputObjectDef{
		Name:        inputObjectType.Name,
		Description: inputObjectType.Description,
		InputFields: inputFields,
	}, nil
}

// EnumValues returns the value names of an ENUM type, or nil when there is none.
func (i *Introspection) EnumValues(typeName string) []string {
	enumType := i.data.Schema.typeByKindAndName(ENUM, typeName)
	if enumType == nil {
		return nil
	}
	values := make([]string, 0, len(enumType.EnumValues))
	for _, value := range enumType.EnumValues {
		values = append(values, value.Name)
	}
	return values
}

// SupportsNodeQuery is true when the root object has a "node" field
// returning the "Node" type.
func (i *Introspection) SupportsNodeQuery() bool {
	rootObject, err := i.GetRootObject()
	if err != nil {
		return false
	}
	nodeField, ok := rootObject.Field(nodeFieldName)
	return ok && nodeField.Type.Name == nodeInterfaceName
}

// DoesNodeQuerySupportType is true when typeName is a possible type of the
// "Node" interface and the schema supports node queries.
func (i *Introspection) DoesNodeQuerySupportType(typeName string) bool {
	if !i.SupportsNodeQuery() {
		return false
	}

	for _, dataType := range i.data.Schema.Types {
		if dataType == nil || dataType.Kind != INTERFACE || dataType.Name != nodeInterfaceName {
			continue
		}
		for _, possibleType := range dataType.PossibleTypes {
			if possibleType.Name != nil && *possibleType.Name == typeName {
				return true
			}
		}
	}

	return false
}

// IsNodeQuery is true when fieldName is the root node lookup of a schema
// supporting node queries.
func (i *Introspection) IsNodeQuery(fieldName string) bool {
	return fieldName == nodeFieldName && i.SupportsNodeQuery()
}
