// Package graphqlclient executes requests against a GraphQL endpoint over
// HTTP. It is the network side of the browser: it fetches and memoizes the
// introspection of a schema, resolves node types and runs built queries.
package graphqlclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/buger/jsonparser"
	"github.com/jensneuse/abstractlogger"
	"github.com/tidwall/gjson"
	"go.uber.org/atomic"

	"github.com/wundergraph/graphql-browser/pkg/graphql"
	"github.com/wundergraph/graphql-browser/pkg/introspection"
)

type Client struct {
	endpoint           string
	headers            http.Header
	httpClient         *http.Client
	introspectionCache *IntrospectionCache
	log                abstractlogger.Logger
	requestSeq         *atomic.Uint64
}

type Option func(client *Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

// WithHeaders adds headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(client *Client) {
		for key, value := range headers {
			client.headers.Set(key, value)
		}
	}
}

func WithIntrospectionCache(cache *IntrospectionCache) Option {
	return func(client *Client) {
		client.introspectionCache = cache
	}
}

func WithLogger(log abstractlogger.Logger) Option {
	return func(client *Client) {
		client.log = log
	}
}

func New(endpoint string, options ...Option) *Client {
	client := &Client{
		endpoint:   endpoint,
		headers:    http.Header{},
		httpClient: DefaultNetHttpClient,
		log:        abstractlogger.NoopLogger,
		requestSeq: atomic.NewUint64(0),
	}
	for _, option := range options {
		option(client)
	}
	if client.introspectionCache == nil {
		client.introspectionCache, _ = NewIntrospectionCache(DefaultIntrospectionCacheSize)
	}
	return client
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Do sends request and returns the response as reported by the server. A
// response with errors is not an error of Do.
func (c *Client) Do(ctx context.Context, request graphql.Request) (*graphql.Response, error) {
	seq := c.requestSeq.Inc()

	body, err := requestBody(request)
	if err != nil {
		return nil, err
	}

	c.log.Debug("Client.Do",
		abstractlogger.Any("request", seq),
		abstractlogger.String("endpoint", c.endpoint),
		abstractlogger.String("query", request.Query),
	)

	statusCode, responseBody, err := c.post(ctx, body)
	if err != nil {
		c.log.Error("Client.Do",
			abstractlogger.Any("request", seq),
			abstractlogger.Error(err),
		)
		return nil, err
	}

	response, parseErr := parseResponse(responseBody)
	if statusCode < 200 || statusCode > 299 {
		if parseErr == nil && response.HasErrors() {
			return response, nil
		}
		c.log.Error("Client.Do",
			abstractlogger.Any("request", seq),
			abstractlogger.Int("status", statusCode),
		)
		return nil, &StatusError{StatusCode: statusCode, Body: string(responseBody)}
	}
	if parseErr != nil {
		return nil, fmt.Errorf("decoding response: %w", parseErr)
	}

	c.log.Debug("Client.Do",
		abstractlogger.Any("request", seq),
		abstractlogger.Int("status", statusCode),
		abstractlogger.Int("errors", len(response.Errors)),
	)

	return response, nil
}

// parseResponse splits a response body into its data and errors.
func parseResponse(body []byte) (*graphql.Response, error) {
	response := &graphql.Response{}

	data, dataType, _, err := jsonparser.Get(body, "data")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
	case err != nil:
		return nil, err
	case dataType != jsonparser.Null:
		response.Data = append(json.RawMessage(nil), data...)
	}

	responseErrors, _, _, err := jsonparser.Get(body, "errors")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(responseErrors, &response.Errors); err != nil {
			return nil, err
		}
	}

	if response.Data == nil && !response.HasErrors() && !gjson.ValidBytes(body) {
		return nil, errors.New("response is not valid JSON")
	}

	return response, nil
}

// Execute runs request and decodes its data. Errors reported next to data
// are returned with the data, a response without data fails with its errors.
func (c *Client) Execute(ctx context.Context, request graphql.Request) (data interface{}, responseErrors graphql.ResponseErrors, err error) {
	response, err := c.Do(ctx, request)
	if err != nil {
		return nil, nil, err
	}
	if response.Data == nil && response.HasErrors() {
		return nil, nil, response.Errors
	}

	data, err = response.DecodeData()
	if err != nil {
		return nil, nil, err
	}
	return data, response.Errors, nil
}

// Introspect fetches the schema of the endpoint once per cache.
func (c *Client) Introspect(ctx context.Context) (*introspection.Introspection, error) {
	key := cacheKey(c.endpoint, c.headers)
	if schema, ok := c.introspectionCache.get(key); ok {
		return schema, nil
	}

	response, err := c.Do(ctx, graphql.Request{Query: introspection.Query})
	if err != nil {
		return nil, err
	}
	if response.HasErrors() {
		return nil, response.Errors
	}

	schema, err := introspection.ParseBytes(response.Data)
	if err != nil {
		return nil, err
	}

	c.introspectionCache.add(key, schema)
	c.log.Debug("Client.Introspect",
		abstractlogger.String("endpoint", c.endpoint),
		abstractlogger.Int("types", len(schema.Data().Schema.Types)),
	)
	return schema, nil
}

// ResolveNodeType runs a node type query and returns the __typename of the node.
func (c *Client) ResolveNodeType(ctx context.Context, request graphql.Request) (string, error) {
	response, err := c.Do(ctx, request)
	if err != nil {
		return "", err
	}
	if response.HasErrors() {
		return "", response.Errors
	}

	typeName := gjson.GetBytes(response.Data, "node.__typename")
	if typeName.Type != gjson.String || typeName.Str == "" {
		return "", ErrNodeNotFound
	}
	return typeName.Str, nil
}

func (c *Client) IntrospectionCacheStats() CacheStats {
	return c.introspectionCache.Stats()
}
