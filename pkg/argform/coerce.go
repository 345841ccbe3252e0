package argform

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/wundergraph/graphql-browser/pkg/pathspec"
)

var errNotInEnum = errors.New("not a value of the enum")

// Arguments coerces values to the types of the inputs. Inputs without a value
// are left out, which lets the server apply declared defaults.
func (f *Form) Arguments(values Values) (pathspec.Arguments, error) {
	args := pathspec.Arguments{}
	for _, input := range f.Inputs {
		value, ok, err := input.coerce(values)
		if err != nil {
			return nil, err
		}
		if ok {
			args = append(args, pathspec.Argument{Name: input.Name, Value: value})
		}
	}
	return args, nil
}

func (i Input) coerce(values Values) (interface{}, bool, error) {
	if i.Kind == ObjectInput {
		return i.coerceObject(values)
	}

	text := strings.TrimSpace(values[i.Path])
	if text == "" {
		if i.Required {
			return nil, false, &MissingValueError{Path: i.Path}
		}
		return nil, false, nil
	}

	value, err := i.coerceText(text)
	if err != nil {
		return nil, false, &InvalidValueError{Path: i.Path, Value: text, Type: i.TypeString, Err: err}
	}
	return value, true, nil
}

// coerceObject leaves out optional input objects without any value and
// reports the missing fields of required ones.
func (i Input) coerceObject(values Values) (interface{}, bool, error) {
	object := make(map[string]interface{}, len(i.Fields))
	var missing error
	for _, field := range i.Fields {
		value, ok, err := field.coerce(values)
		var missingValue *MissingValueError
		if errors.As(err, &missingValue) {
			if missing == nil {
				missing = err
			}
			continue
		}
		if err != nil {
			return nil, false, err
		}
		if ok {
			object[field.Name] = value
		}
	}

	if len(object) == 0 && !i.Required {
		return nil, false, nil
	}
	if missing != nil {
		return nil, false, missing
	}
	return object, true, nil
}

func (i Input) coerceText(text string) (interface{}, error) {
	switch i.Kind {
	case JSONInput:
		return decodeJSON(text, i.Type.IsList)
	case EnumInput:
		for _, enumValue := range i.EnumValues {
			if enumValue == text {
				return text, nil
			}
		}
		return nil, errNotInEnum
	}

	switch i.Type.Name {
	case "Int":
		if _, err := strconv.ParseInt(text, 10, 32); err != nil {
			return nil, err
		}
		return json.Number(text), nil
	case "Float":
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return nil, err
		}
		return json.Number(text), nil
	case "Boolean":
		return strconv.ParseBool(text)
	default:
		return text, nil
	}
}

func decodeJSON(text string, expectList bool) (interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err == nil {
		return nil, errors.New("unexpected content after JSON value")
	}

	if _, isList := value.([]interface{}); expectList && !isList {
		return nil, errors.New("expected a JSON list")
	}
	return value, nil
}

// defaultText turns a GraphQL literal default value into form text. String
// literals lose their quotes, everything else is kept as written.
func defaultText(literal string) string {
	if strings.HasPrefix(literal, `"`) {
		if unquoted, err := strconv.Unquote(literal); err == nil {
			return unquoted
		}
	}
	return literal
}

