// Package dataprocessor turns response data into what a browser displays:
// labelled field values of an object, tables for lists and links for the
// fields that have to be navigated to.
package dataprocessor

import (
	"github.com/wundergraph/graphql-browser/pkg/configuration"
	"github.com/wundergraph/graphql-browser/pkg/introspection"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

const typeNameKey = "__typename"

// DisplayField is one configured field of an object. Value is nil when the
// data does not contain the field, which means it was not fetched and has to
// be navigated to. Link is set in exactly that case.
type DisplayField struct {
	Label       string                 `json:"label"`
	Value       *string                `json:"value"`
	FieldDef    introspection.FieldDef `json:"fieldDef"`
	FieldConfig configuration.Field    `json:"fieldConfig"`
	Link        *Link                  `json:"link,omitempty"`
}

// Link points at the location a not yet fetched field is displayed at.
// Fields requiring arguments need values for Args before they can be followed.
type Link struct {
	PathSpecs         []pathspec.PathSpec         `json:"pathSpecs"`
	URLPath           string                      `json:"urlPath"`
	Args              []introspection.ArgumentDef `json:"args"`
	RequiresArguments bool                        `json:"requiresArguments"`
}

func newLink(pathSpecs []pathspec.PathSpec, field introspection.FieldDef) *Link {
	return &Link{
		PathSpecs:         pathSpecs,
		URLPath:           pathspec.MakeURLPath(pathSpecs),
		Args:              field.Args,
		RequiresArguments: field.RequiresArguments,
	}
}

// GetDisplayFields projects data through view. The view must belong to def.
func GetDisplayFields(def introspection.ObjectDef, data map[string]interface{}, view configuration.View) ([]DisplayField, error) {
	if def.Name != view.ObjectName {
		return nil, ErrViewObjectMismatch
	}

	displayFields := make([]DisplayField, 0, len(view.Fields))
	for _, fieldConfig := range view.Fields {
		if len(fieldConfig.Path) == 0 {
			return nil, &FieldDefNotFoundError{ObjectName: def.Name}
		}
		fieldDef, ok := def.Field(fieldConfig.Path[0])
		if !ok {
			return nil, &FieldDefNotFoundError{ObjectName: def.Name, FieldName: fieldConfig.Path[0]}
		}

		displayField := DisplayField{
			Label:       fieldConfig.Label(fieldDef.Name),
			FieldDef:    fieldDef,
			FieldConfig: fieldConfig,
		}
		if value, ok := resolveValue(data, fieldConfig.Path); ok {
			str := Stringify(value)
			displayField.Value = &str
		}

		displayFields = append(displayFields, displayField)
	}

	return displayFields, nil
}

// resolveValue walks path through data. It reports false when a key on the
// way is absent. A null on the way resolves to null.
func resolveValue(data map[string]interface{}, path []string) (interface{}, bool) {
	var current interface{} = data
	for _, segment := range path {
		if current == nil {
			return nil, true
		}
		object, ok := current.(map[string]interface{})
		if !ok {
			return current, true
		}
		current, ok = object[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Object is the detail view of a single object.
type Object struct {
	TypeName    string         `json:"typeName"`
	Description string         `json:"description,omitempty"`
	Fields      []DisplayField `json:"fields"`
}

// MakeObject projects an object found at parentSpecs. Fields that were not
// fetched link to parentSpecs extended by the field.
func MakeObject(def introspection.ObjectDef, data map[string]interface{}, view configuration.View, parentSpecs []pathspec.PathSpec) (*Object, error) {
	displayFields, err := GetDisplayFields(def, data, view)
	if err != nil {
		return nil, err
	}

	for i := range displayFields {
		if displayFields[i].Value != nil {
			continue
		}
		fieldDef := displayFields[i].FieldDef
		displayFields[i].Link = newLink(pathspec.Append(parentSpecs, pathspec.New(fieldDef.Name)), fieldDef)
	}

	return &Object{
		TypeName:    def.Name,
		Description: def.Description,
		Fields:      displayFields,
	}, nil
}
