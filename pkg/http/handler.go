package http

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/wundergraph/graphql-browser/pkg/browser"
)

const (
	queryRoute  = "/query"
	browseRoute = "/browse"
	viewsRoute  = "/views"
	formRoute   = "/form"
	followRoute = "/follow"
)

func NewBrowserHTTPHandler(b *browser.Browser, logger *zap.Logger) http.Handler {
	return &BrowserHTTPRequestHandler{
		log:     logger,
		browser: b,
	}
}

type BrowserHTTPRequestHandler struct {
	log     *zap.Logger
	browser *browser.Browser
}

func (g *BrowserHTTPRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// the escaped path keeps "/" inside encoded steps apart from separators
	path := r.URL.EscapedPath()
	switch {
	case path == viewsRoute:
		g.handleViews(w, r)
	case hasRoute(path, queryRoute):
		g.handleQuery(w, r, strings.TrimPrefix(path, queryRoute))
	case hasRoute(path, browseRoute):
		g.handleBrowse(w, r, strings.TrimPrefix(path, browseRoute))
	case hasRoute(path, formRoute):
		g.handleForm(w, r, strings.TrimPrefix(path, formRoute))
	case hasRoute(path, followRoute):
		g.handleFollow(w, r, strings.TrimPrefix(path, followRoute))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func hasRoute(path, route string) bool {
	return path == route || strings.HasPrefix(path, route+"/")
}
