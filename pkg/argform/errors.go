package argform

import "fmt"

// MissingValueError is returned when a required input has no value.
type MissingValueError struct {
	Path string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for required input `%s`", e.Path)
}

// InvalidValueError is returned when a value cannot be coerced to the type of
// its input.
type InvalidValueError struct {
	Path  string
	Value string
	Type  string
	Err   error
}

func (e *InvalidValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value %q for input `%s` of type %s: %v", e.Value, e.Path, e.Type, e.Err)
	}
	return fmt.Sprintf("invalid value %q for input `%s` of type %s", e.Value, e.Path, e.Type)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
