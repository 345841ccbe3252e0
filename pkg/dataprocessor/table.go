package dataprocessor

import (
	"fmt"

	"github.com/wundergraph/graphql-browser/pkg/configuration"
	"github.com/wundergraph/graphql-browser/pkg/introspection"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

// Table is the list view of objects of one type. A table without rows
// stands for an empty list.
type Table struct {
	TypeName string   `json:"typeName"`
	Headers  []string `json:"headers"`
	Rows     []Row    `json:"rows"`
}

// Row is one list element. Fields is empty for null elements.
type Row struct {
	Index  int            `json:"index"`
	IsNull bool           `json:"isNull,omitempty"`
	Fields []DisplayField `json:"fields"`
}

// MakeTable projects the list found at parentSpecs. Links of a row re-enter
// the list at the row's index before descending into the field.
func MakeTable(def introspection.ObjectDef, rows []interface{}, view configuration.View, parentSpecs []pathspec.PathSpec) (*Table, error) {
	if def.Name != view.ObjectName {
		return nil, ErrViewObjectMismatch
	}

	typeNames := make(map[string]struct{})
	for _, row := range rows {
		object, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		if typeName, ok := object[typeNameKey].(string); ok {
			typeNames[typeName] = struct{}{}
		}
	}
	if len(typeNames) > 1 {
		return nil, ErrHeterogeneousList
	}

	headers := make([]string, 0, len(view.Fields))
	for _, fieldConfig := range view.Fields {
		fallback := ""
		if len(fieldConfig.Path) != 0 {
			fallback = fieldConfig.Path[0]
		}
		headers = append(headers, fieldConfig.Label(fallback))
	}

	table := &Table{
		TypeName: def.Name,
		Headers:  headers,
		Rows:     make([]Row, 0, len(rows)),
	}

	for i, row := range rows {
		if row == nil {
			table.Rows = append(table.Rows, Row{Index: i, IsNull: true})
			continue
		}
		object, ok := row.(map[string]interface{})
		if !ok {
			return nil, &TargetDataNotFoundError{
				Step:      len(parentSpecs) - 1,
				FieldName: lastFieldName(parentSpecs),
				Reason:    fmt.Sprintf("expected list element %d to be an object, got %s", i, describe(row)),
			}
		}

		displayFields, err := GetDisplayFields(def, object, view)
		if err != nil {
			return nil, err
		}

		rowSpecs := rowPathSpecs(parentSpecs, i)
		for j := range displayFields {
			if displayFields[j].Value != nil {
				continue
			}
			fieldDef := displayFields[j].FieldDef
			displayFields[j].Link = newLink(pathspec.Append(rowSpecs, pathspec.New(fieldDef.Name)), fieldDef)
		}

		table.Rows = append(table.Rows, Row{Index: i, Fields: displayFields})
	}

	return table, nil
}

// rowPathSpecs points the last step of parentSpecs at row index.
func rowPathSpecs(parentSpecs []pathspec.PathSpec, index int) []pathspec.PathSpec {
	if len(parentSpecs) == 0 {
		return nil
	}
	last := parentSpecs[len(parentSpecs)-1]
	return pathspec.Append(pathspec.Parent(parentSpecs), last.WithArrayIndex(index))
}

func lastFieldName(pathSpecs []pathspec.PathSpec) string {
	if len(pathSpecs) == 0 {
		return ""
	}
	return pathSpecs[len(pathSpecs)-1].FieldName
}
