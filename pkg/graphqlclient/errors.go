package graphqlclient

import (
	"errors"
	"fmt"
)

var ErrNodeNotFound = errors.New("node not found")

// StatusError is returned for non-2xx responses that carry no GraphQL errors.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}
