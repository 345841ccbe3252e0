package graphqlclient

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/tidwall/sjson"

	"github.com/wundergraph/graphql-browser/pkg/graphql"
)

const (
	ContentEncodingHeader = "Content-Encoding"
	AcceptEncodingHeader  = "Accept-Encoding"
	AcceptHeader          = "Accept"
	ContentTypeHeader     = "Content-Type"

	EncodingGzip    = "gzip"
	EncodingDeflate = "deflate"
	EncodingBrotli  = "br"

	ContentTypeJSON = "application/json"
)

var DefaultNetHttpClient = &http.Client{
	Timeout: time.Second * 10,
	Transport: &http.Transport{
		MaxIdleConnsPerHost: 1024,
	},
}

// requestBody renders the POST body. Variables are left out when the query
// declares none.
func requestBody(request graphql.Request) (body []byte, err error) {
	body = []byte(`{}`)
	if request.OperationName != "" {
		body, err = sjson.SetBytes(body, "operationName", request.OperationName)
		if err != nil {
			return nil, err
		}
	}
	body, err = sjson.SetBytes(body, "query", request.Query)
	if err != nil {
		return nil, err
	}
	if request.Variables == nil {
		return body, nil
	}
	return sjson.SetBytes(body, "variables", request.Variables)
}

func (c *Client) post(ctx context.Context, body []byte) (statusCode int, responseBody []byte, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}

	for key, values := range c.headers {
		for _, value := range values {
			if value == "" {
				continue
			}
			request.Header.Add(key, value)
		}
	}

	request.Header.Add(AcceptHeader, ContentTypeJSON)
	request.Header.Add(ContentTypeHeader, ContentTypeJSON)
	request.Header.Set(AcceptEncodingHeader, EncodingGzip)
	request.Header.Add(AcceptEncodingHeader, EncodingDeflate)
	request.Header.Add(AcceptEncodingHeader, EncodingBrotli)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, nil, err
	}
	defer response.Body.Close()

	respReader, err := respBodyReader(response)
	if err != nil {
		return response.StatusCode, nil, err
	}
	defer respReader.Close()

	responseBody, err = io.ReadAll(respReader)
	return response.StatusCode, responseBody, err
}

func respBodyReader(resp *http.Response) (io.ReadCloser, error) {
	switch resp.Header.Get(ContentEncodingHeader) {
	case EncodingGzip:
		return gzip.NewReader(resp.Body)
	case EncodingDeflate:
		return flate.NewReader(resp.Body), nil
	case EncodingBrotli:
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}
