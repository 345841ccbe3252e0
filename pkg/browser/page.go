package browser

import (
	"github.com/wundergraph/graphql-browser/pkg/dataprocessor"
	"github.com/wundergraph/graphql-browser/pkg/graphql"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

type PageKind string

const (
	ObjectPage PageKind = "object"
	TablePage  PageKind = "table"
	// NullPage is a location the server returned null for.
	NullPage PageKind = "null"
)

// Page is everything needed to render one location.
type Page struct {
	Kind        PageKind               `json:"kind"`
	Path        string                 `json:"path"`
	PathSpecs   []pathspec.PathSpec    `json:"pathSpecs"`
	Breadcrumbs []Breadcrumb           `json:"breadcrumbs"`
	Request     graphql.Request        `json:"request"`
	Object      *dataprocessor.Object  `json:"object,omitempty"`
	Table       *dataprocessor.Table   `json:"table,omitempty"`
	Errors      graphql.ResponseErrors `json:"errors,omitempty"`
}

// Breadcrumb links to one ancestor of a page, the root included.
type Breadcrumb struct {
	Label   string `json:"label"`
	URLPath string `json:"urlPath"`
}

func breadcrumbs(pathSpecs []pathspec.PathSpec) []Breadcrumb {
	crumbs := make([]Breadcrumb, 0, len(pathSpecs)+1)
	crumbs = append(crumbs, Breadcrumb{Label: "root", URLPath: ""})
	for i := range pathSpecs {
		crumbs = append(crumbs, Breadcrumb{
			Label:   pathSpecs[i].String(),
			URLPath: pathspec.MakeURLPath(pathSpecs[:i+1]),
		})
	}
	return crumbs
}
