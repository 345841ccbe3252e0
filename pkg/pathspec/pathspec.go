// Package pathspec addresses a location in a GraphQL object graph.
//
// A path is an ordered list of steps, read from the query root to the target.
// Every step names a field, optionally binds arguments and optionally selects
// a row of a list. Paths serialize to a compact string form used in URLs:
//
//	path := step ('/' step)*
//	step := fieldName [ '(' json-object ')' ] [ '[' integer ']' ]
//
// Each step is percent-encoded before the steps are joined.
package pathspec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

var ErrMalformedPathSpec = errors.New("malformed path spec")

// Argument is a single argument binding. Value is any JSON compatible value.
type Argument struct {
	Name  string
	Value interface{}
}

// Arguments keeps bindings in the order they were declared.
// The order decides the numbering of query variables.
type Arguments []Argument

func (a Arguments) Get(name string) (value interface{}, ok bool) {
	for i := range a {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return nil, false
}

func (a Arguments) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(a))
	for i := range a {
		out[a[i].Name] = a[i].Value
	}
	return out
}

// MarshalJSON writes the arguments as a JSON object in declaration order.
func (a Arguments) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i := range a {
		if i != 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(a[i].Name)
		if err != nil {
			return nil, err
		}
		value, err := encodeJSON(a[i].Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object and keeps the key order of the document.
func (a *Arguments) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	if len(data) == 0 || data[0] != '{' || !json.Valid(data) {
		return fmt.Errorf("arguments must be a JSON object")
	}

	args := Arguments{}
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		decoded, err := decodeValue(value, dataType)
		if err != nil {
			return err
		}
		args = append(args, Argument{Name: string(key), Value: decoded})
		return nil
	})
	if err != nil {
		return err
	}

	*a = args
	return nil
}

func decodeValue(raw []byte, dataType jsonparser.ValueType) (interface{}, error) {
	switch dataType {
	case jsonparser.String:
		return jsonparser.ParseString(raw)
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(raw)
	case jsonparser.Number:
		return json.Number(raw), nil
	default:
		var out interface{}
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber()
		if err := decoder.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func encodeJSON(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// PathSpec is one navigation step.
type PathSpec struct {
	FieldName  string    `json:"fieldName"`
	// Args is nil when no arguments are bound at this step.
	Args       Arguments `json:"args,omitempty"`
	// ArrayIndex is only meaningful when the field resolves to a list.
	ArrayIndex *int      `json:"arrayIndex,omitempty"`
}

func New(fieldName string) PathSpec {
	return PathSpec{FieldName: fieldName}
}

func (p PathSpec) WithArgs(args Arguments) PathSpec {
	p.Args = args
	return p
}

func (p PathSpec) WithArrayIndex(index int) PathSpec {
	p.ArrayIndex = &index
	return p
}

func (p PathSpec) String() string {
	str := p.FieldName

	if len(p.Args) > 0 {
		args, err := p.Args.MarshalJSON()
		if err == nil {
			str = str + "(" + string(args) + ")"
		}
	}
	if p.ArrayIndex != nil {
		str = str + "[" + strconv.Itoa(*p.ArrayIndex) + "]"
	}

	return str
}

// Parse is the inverse of PathSpec.String.
func Parse(str string) (PathSpec, error) {
	var spec PathSpec

	if strings.HasSuffix(str, "]") {
		open := strings.LastIndex(str, "[")
		if open == -1 {
			return PathSpec{}, fmt.Errorf("%w: unbalanced brackets in %q", ErrMalformedPathSpec, str)
		}
		index, err := strconv.Atoi(str[open+1 : len(str)-1])
		if err != nil || index < 0 {
			return PathSpec{}, fmt.Errorf("%w: invalid array index in %q", ErrMalformedPathSpec, str)
		}
		spec.ArrayIndex = &index
		str = str[:open]
	}

	if strings.HasSuffix(str, ")") {
		open := strings.Index(str, "(")
		if open == -1 {
			return PathSpec{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrMalformedPathSpec, str)
		}
		var args Arguments
		if err := args.UnmarshalJSON([]byte(str[open+1 : len(str)-1])); err != nil {
			return PathSpec{}, fmt.Errorf("%w: invalid arguments in %q: %v", ErrMalformedPathSpec, str, err)
		}
		if args == nil {
			args = Arguments{}
		}
		spec.Args = args
		str = str[:open]
	}

	if str == "" {
		return PathSpec{}, fmt.Errorf("%w: missing field name", ErrMalformedPathSpec)
	}
	if strings.ContainsAny(str, "()[]") {
		return PathSpec{}, fmt.Errorf("%w: unexpected bracket in field name %q", ErrMalformedPathSpec, str)
	}

	spec.FieldName = str
	return spec, nil
}

// MakeURLPath serializes a full path. An empty path is the query root.
func MakeURLPath(specs []PathSpec) string {
	parts := make([]string, len(specs))
	for i := range specs {
		parts[i] = url.PathEscape(specs[i].String())
	}
	return strings.Join(parts, "/")
}

// ParseURLPath is the inverse of MakeURLPath. Leading and trailing slashes are ignored.
func ParseURLPath(path string) ([]PathSpec, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, nil
	}

	parts := strings.Split(path, "/")
	specs := make([]PathSpec, 0, len(parts))
	for _, part := range parts {
		decoded, err := url.PathUnescape(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPathSpec, err)
		}
		spec, err := Parse(decoded)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Parent returns every step but the last one.
func Parent(specs []PathSpec) []PathSpec {
	if len(specs) == 0 {
		return nil
	}
	return specs[:len(specs)-1]
}

// Append returns a fresh path, never sharing the backing array of specs.
func Append(specs []PathSpec, next ...PathSpec) []PathSpec {
	out := make([]PathSpec, 0, len(specs)+len(next))
	out = append(out, specs...)
	return append(out, next...)
}
