package graphql

import (
	"errors"
	"fmt"
	"io"
)

// ResponseErrors are the errors reported by a GraphQL server.
type ResponseErrors []ResponseError

func (r ResponseErrors) Error() string {
	if len(r) == 0 {
		return "response contains no errors"
	}
	return fmt.Sprintf("response contains %d error(s): %s", len(r), r[0].Message)
}

func (r ResponseErrors) WriteResponse(writer io.Writer) (n int, err error) {
	response := Response{
		Errors: r,
	}

	responseBytes, err := response.Marshal()
	if err != nil {
		return 0, err
	}

	return writer.Write(responseBytes)
}

func (r ResponseErrors) Count() int {
	return len(r)
}

type ResponseError struct {
	Message   string          `json:"message"`
	Locations []ErrorLocation `json:"locations,omitempty"`
	Path      ErrorPath       `json:"path,omitempty"`
}

func (r ResponseError) Error() string {
	return r.Message
}

// ResponseErrorsFromError turns any error into an error list, keeping
// ResponseErrors found in the chain.
func ResponseErrorsFromError(err error) ResponseErrors {
	var responseErrors ResponseErrors
	if errors.As(err, &responseErrors) {
		return responseErrors
	}
	return ResponseErrors{{Message: err.Error()}}
}

type ErrorPath []interface{}

type ErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}
