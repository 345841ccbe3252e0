// Package configuration declares which fields of an object type are shown
// and under which label.
package configuration

import (
	"strings"

	"github.com/wundergraph/graphql-browser/pkg/introspection"
)

type Config struct {
	Views []View `json:"views" yaml:"views"`
}

type View struct {
	ObjectName string  `json:"objectName" yaml:"objectName"`
	Fields     []Field `json:"fields" yaml:"fields"`
}

// Field points at a value of an object. Path walks through non-list object
// fields and ends at the displayed field.
type Field struct {
	Path        []string `json:"path" yaml:"path"`
	DisplayName *string  `json:"displayName" yaml:"displayName"`
}

func (f Field) DottedPath() string {
	return strings.Join(f.Path, ".")
}

// Label returns the display name, falling back to fallback.
func (f Field) Label(fallback string) string {
	if f.DisplayName != nil {
		return *f.DisplayName
	}
	return fallback
}

// ViewFor returns the first view configured for objectName.
func (c *Config) ViewFor(objectName string) (View, bool) {
	if c == nil {
		return View{}, false
	}
	for _, view := range c.Views {
		if view.ObjectName == objectName {
			return view, true
		}
	}
	return View{}, false
}

// ResolveView returns the configured view of the object or its identity view.
func (c *Config) ResolveView(object introspection.ObjectDef) View {
	if view, ok := c.ViewFor(object.Name); ok {
		return view
	}
	return IdentityView(object)
}

// IdentityView exposes every field of the object under its own name.
func IdentityView(object introspection.ObjectDef) View {
	fields := make([]Field, 0, len(object.Fields))
	for _, field := range object.Fields {
		name := field.Name
		fields = append(fields, Field{Path: []string{name}, DisplayName: &name})
	}
	return View{ObjectName: object.Name, Fields: fields}
}
