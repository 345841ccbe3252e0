package dataprocessor

import (
	"encoding/json"
	"strconv"
	"strings"
)

const unsupportedType = "(unsupported type)"

// Stringify renders a scalar response value for display. JSON null becomes
// the empty string, lists of scalars are joined with ", ".
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if !isScalar(item) {
				return unsupportedType
			}
			items = append(items, Stringify(item))
		}
		return strings.Join(items, ", ")
	default:
		return unsupportedType
	}
}

func isScalar(value interface{}) bool {
	switch value.(type) {
	case nil, string, json.Number, float64, int, int64, bool:
		return true
	default:
		return false
	}
}
