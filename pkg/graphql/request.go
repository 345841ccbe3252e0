// Package graphql holds the request and response types exchanged with a
// GraphQL server.
package graphql

import (
	"encoding/json"
	"io"
)

// Request is a query document with its bound variables. Variables is nil,
// not empty, when the query declares no variables.
type Request struct {
	OperationName string                 `json:"operationName,omitempty"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
}

func UnmarshalRequest(reader io.Reader) (*Request, error) {
	var request Request
	if err := json.NewDecoder(reader).Decode(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r Request) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
