// Package http exposes a browser as a JSON API.
//
//	GET /query/<path>?nodeType=<type>  the request built for a location
//	GET /browse/<path>                 the rendered page of a location
//	GET /views                         diagnostics of the view configuration
//	GET /form/<path>                   the argument form of the last step
//	GET /follow/<path>?<input>=<value> the path with the entered arguments bound
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/wundergraph/graphql-browser/pkg/argform"
	"github.com/wundergraph/graphql-browser/pkg/configuration"
	"github.com/wundergraph/graphql-browser/pkg/dataprocessor"
	"github.com/wundergraph/graphql-browser/pkg/graphql"
	"github.com/wundergraph/graphql-browser/pkg/graphqlclient"
	"github.com/wundergraph/graphql-browser/pkg/introspection"
	"github.com/wundergraph/graphql-browser/pkg/pathspec"
	"github.com/wundergraph/graphql-browser/pkg/querybuilder"
)

const (
	httpHeaderContentType string = "Content-Type"

	httpContentTypeApplicationJson string = "application/json"
)

type queryResponse struct {
	Request      graphql.Request         `json:"request"`
	TargetObject introspection.ObjectDef `json:"targetObject"`
	View         configuration.View      `json:"view"`
}

type followResponse struct {
	Path      string              `json:"path"`
	PathSpecs []pathspec.PathSpec `json:"pathSpecs"`
}

type viewsResponse struct {
	Diagnostics []string `json:"diagnostics"`
}

func (g *BrowserHTTPRequestHandler) handleQuery(w http.ResponseWriter, r *http.Request, urlPath string) {
	pathSpecs, err := pathspec.ParseURLPath(urlPath)
	if err != nil {
		g.writeError(w, "BrowserHTTPRequestHandler.handleQuery", err)
		return
	}

	query, err := g.browser.BuildQuery(r.Context(), pathSpecs, r.URL.Query().Get("nodeType"))
	if err != nil {
		g.writeError(w, "BrowserHTTPRequestHandler.handleQuery", err)
		return
	}

	g.writeJSON(w, http.StatusOK, queryResponse{
		Request:      query.Request,
		TargetObject: query.TargetObject,
		View:         query.View,
	})
}

func (g *BrowserHTTPRequestHandler) handleBrowse(w http.ResponseWriter, r *http.Request, urlPath string) {
	page, err := g.browser.Navigate(r.Context(), urlPath)
	if err != nil {
		g.writeError(w, "BrowserHTTPRequestHandler.handleBrowse", err)
		return
	}

	g.writeJSON(w, http.StatusOK, page)
}

func (g *BrowserHTTPRequestHandler) handleForm(w http.ResponseWriter, r *http.Request, urlPath string) {
	pathSpecs, err := pathspec.ParseURLPath(urlPath)
	if err != nil {
		g.writeError(w, "BrowserHTTPRequestHandler.handleForm", err)
		return
	}

	form, err := g.browser.ArgumentForm(r.Context(), pathSpecs)
	if err != nil {
		g.writeError(w, "BrowserHTTPRequestHandler.handleForm", err)
		return
	}

	g.writeJSON(w, http.StatusOK, form)
}

// handleFollow reads the form values from the query string, keyed by input path.
func (g *BrowserHTTPRequestHandler) handleFollow(w http.ResponseWriter, r *http.Request, urlPath string) {
	pathSpecs, err := pathspec.ParseURLPath(urlPath)
	if err != nil {
		g.writeError(w, "BrowserHTTPRequestHandler.handleFollow", err)
		return
	}

	values := argform.Values{}
	for key := range r.URL.Query() {
		values[key] = r.URL.Query().Get(key)
	}

	pathSpecs, err = g.browser.ApplyArguments(r.Context(), pathSpecs, values)
	if err != nil {
		g.writeError(w, "BrowserHTTPRequestHandler.handleFollow", err)
		return
	}

	g.writeJSON(w, http.StatusOK, followResponse{
		Path:      pathspec.MakeURLPath(pathSpecs),
		PathSpecs: pathSpecs,
	})
}

func (g *BrowserHTTPRequestHandler) handleViews(w http.ResponseWriter, _ *http.Request) {
	g.writeJSON(w, http.StatusOK, viewsResponse{Diagnostics: g.browser.ValidateConfig()})
}

func (g *BrowserHTTPRequestHandler) writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		g.log.Error("BrowserHTTPRequestHandler.writeJSON",
			zap.Error(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add(httpHeaderContentType, httpContentTypeApplicationJson)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError answers with the errors of err in a GraphQL error response.
func (g *BrowserHTTPRequestHandler) writeError(w http.ResponseWriter, operation string, err error) {
	status := statusCode(err)
	if status >= http.StatusInternalServerError {
		g.log.Error(operation,
			zap.Error(err),
			zap.Int("status", status),
		)
	} else {
		g.log.Debug(operation,
			zap.Error(err),
			zap.Int("status", status),
		)
	}

	w.Header().Add(httpHeaderContentType, httpContentTypeApplicationJson)
	w.WriteHeader(status)
	_, _ = graphql.ResponseErrorsFromError(err).WriteResponse(w)
}

func statusCode(err error) int {
	var (
		fieldNotFound       *querybuilder.FieldNotFoundError
		argNotFound         *querybuilder.ArgNotFoundError
		missingNodeType     *querybuilder.MissingNodeTypeError
		unsupportedNodeType *querybuilder.UnsupportedNodeTypeError
		typeNotFound        *introspection.TypeNotFoundError
		missingValue        *argform.MissingValueError
		invalidValue        *argform.InvalidValueError
		targetDataNotFound  *dataprocessor.TargetDataNotFoundError
		responseErrors      graphql.ResponseErrors
		upstreamStatus      *graphqlclient.StatusError
	)

	switch {
	case errors.Is(err, pathspec.ErrMalformedPathSpec),
		errors.As(err, &fieldNotFound),
		errors.As(err, &argNotFound),
		errors.As(err, &missingNodeType),
		errors.As(err, &unsupportedNodeType),
		errors.As(err, &typeNotFound),
		errors.As(err, &missingValue),
		errors.As(err, &invalidValue):
		return http.StatusBadRequest
	case errors.Is(err, graphqlclient.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.As(err, &targetDataNotFound),
		errors.As(err, &responseErrors),
		errors.As(err, &upstreamStatus):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
