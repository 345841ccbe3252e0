package dataprocessor

import (
	"errors"
	"fmt"
)

var (
	ErrViewObjectMismatch = errors.New("view doesn't match object type")
	ErrHeterogeneousList  = errors.New("list contains objects of different types")
)

// TargetDataNotFoundError is returned when response data does not have the
// shape the path it was fetched for implies.
type TargetDataNotFoundError struct {
	Step      int
	FieldName string
	Reason    string
}

func (e *TargetDataNotFoundError) Error() string {
	return fmt.Sprintf("target data not found at step %d (%s): %s", e.Step, e.FieldName, e.Reason)
}

// FieldDefNotFoundError is returned when a view field starts with a field the
// object does not define. Views are validated up front, so this points at a
// view that was used without validation.
type FieldDefNotFoundError struct {
	ObjectName string
	FieldName  string
}

func (e *FieldDefNotFoundError) Error() string {
	return fmt.Sprintf("field `%s.%s` not found", e.ObjectName, e.FieldName)
}
